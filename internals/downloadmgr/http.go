package downloadmgr

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz/lzma"
)

var defaultClient = http.Client{
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   20 * time.Second,
		ResponseHeaderTimeout: 60 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	},
}

// Item is a URL, target pair with optional properties that will be downloaded
// using http(s)
type Item struct {
	URL    string
	Target string
	// Sha1 is checked after the download and used to skip existing files
	Sha1 string
	// LZMA decompresses the body while writing it. Sha1 is the sum of the decompressed file
	LZMA bool
}

// NewItem creates a Item to be queued that will download the file using HTTP(S)
func NewItem(URL string, Target string, sha1 string) *Item {
	if URL == "" {
		panic("Download URL can not be empty")
	}
	if Target == "" {
		panic("Target can not be empty")
	}
	return &Item{URL: URL, Target: Target, Sha1: sha1}
}

// Fetch downloads the item to its target. root is the installation root, the
// target has to be inside of it. An existing target is kept if it has the expected sha1
// (or if there is no sha1 to check against). Returns true if the file was written.
func Fetch(ctx context.Context, client *http.Client, item *Item, root string) (bool, error) {
	if root != "" {
		if err := CheckInside(root, item.Target); err != nil {
			return false, err
		}
	}

	if fileExists(item.Target) {
		if item.Sha1 == "" {
			return false, nil
		}
		if actual, err := Sha1File(item.Target); err == nil && actual == item.Sha1 {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(item.Target), os.ModePerm); err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", item.URL, nil)
	if err != nil {
		return false, err
	}

	if client == nil {
		client = &defaultClient
	}

	res, err := client.Do(req)
	if err != nil {
		return false, errors.Wrapf(merrors.ErrTransport, "fetching %s: %s", item.URL, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return false, errors.Wrapf(merrors.ErrTransport, "invalid status code: %s from %s", res.Status, item.URL)
	}

	var body io.Reader = res.Body
	if item.LZMA {
		body, err = lzma.NewReader(res.Body)
		if err != nil {
			return false, errors.Wrapf(err, "reading lzma stream from %s", item.URL)
		}
	}

	actual, tmpName, err := writeTemp(item.Target, body)
	if err != nil {
		return false, errors.Wrapf(err, "downloading %s", item.URL)
	}

	if item.Sha1 != "" && actual != item.Sha1 {
		os.Remove(tmpName)
		return false, &merrors.ChecksumError{
			URL:      item.URL,
			Path:     item.Target,
			Expected: item.Sha1,
			Actual:   actual,
		}
	}

	if err := os.Rename(tmpName, item.Target); err != nil {
		os.Remove(tmpName)
		return false, err
	}
	return true, nil
}

// writeTemp streams r into a temp file next to target and returns its sha1 sum
func writeTemp(target string, r io.Reader) (sum string, name string, err error) {
	dest, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".*.tmp")
	if err != nil {
		return "", "", err
	}
	name = dest.Name()

	hasher := sha1.New()
	_, err = io.Copy(io.MultiWriter(dest, hasher), r)
	if err == nil {
		err = dest.Sync()
	}
	if closeErr := dest.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(name)
		return "", "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), name, nil
}

func fileExists(p string) bool {
	stat, err := os.Stat(p)
	return err == nil && stat.Mode().IsRegular()
}
