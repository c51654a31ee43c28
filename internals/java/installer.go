package java

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/minepkg/mclaunch/internals/cache"
	"github.com/minepkg/mclaunch/internals/downloadmgr"
	"github.com/minepkg/mclaunch/internals/merrors"
	"github.com/minepkg/mclaunch/internals/platform"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Observer receives progress updates while a runtime is installed
type Observer interface {
	SetStatus(status string)
	SetMax(max int)
	SetProgress(progress int)
}

type nopObserver struct{}

func (nopObserver) SetStatus(string) {}
func (nopObserver) SetMax(int)       {}
func (nopObserver) SetProgress(int)  {}

// Installer installs the java runtimes mojang provides into {root}/runtime
type Installer struct {
	root     string
	http     *http.Client
	cache    *cache.ResponseCache
	platform platform.Info

	// IndexURL defaults to DefaultIndexURL
	IndexURL string
	Logger   *log.Logger
	Observer Observer
}

// NewInstaller returns an installer for the installation root. responses can be shared with other users
func NewInstaller(root string, client *http.Client, responses *cache.ResponseCache) *Installer {
	if client == nil {
		client = http.DefaultClient
	}
	if responses == nil {
		responses = cache.New(client)
	}
	return &Installer{
		root:     root,
		http:     client,
		cache:    responses,
		platform: platform.Current(),
		IndexURL: DefaultIndexURL,
		Logger:   log.Default().WithPrefix("java"),
		Observer: nopObserver{},
	}
}

// SetHTTPClient replaces the default http client with the given one
func (i *Installer) SetHTTPClient(c *http.Client) {
	i.http = c
}

// SetPlatform overwrites the detected platform
func (i *Installer) SetPlatform(p platform.Info) {
	i.platform = p
}

// Runtime returns the runtime component for the current platform. It might not be installed
func (i *Installer) Runtime(component string) *Java {
	return &Java{
		Component: component,
		dir:       filepath.Join(i.root, "runtime", component, i.platform.RuntimeKey()),
		os:        i.platform.OS,
	}
}

// Executable returns the java binary of an installed runtime component
func (i *Installer) Executable(component string) (string, error) {
	j := i.Runtime(component)
	if !j.Installed() {
		return "", errors.Wrapf(merrors.ErrNotFound, "java runtime %s is not installed", component)
	}
	return j.Bin(), nil
}

// ListComponents returns the runtime components available for this platform
func (i *Installer) ListComponents(ctx context.Context) ([]string, error) {
	index, err := i.index(ctx)
	if err != nil {
		return nil, err
	}
	components := maps.Keys(index[i.platform.RuntimeKey()])
	slices.Sort(components)
	return components, nil
}

// Information returns name and release date of the version that would be installed
func (i *Installer) Information(ctx context.Context, component string) (*Information, error) {
	entry, err := i.entry(ctx, component)
	if err != nil {
		return nil, err
	}
	return &Information{Name: entry.Version.Name, Released: entry.Version.Released}, nil
}

// Install downloads the runtime component. Missing components are an error (merrors.ErrNotFound)
func (i *Installer) Install(ctx context.Context, component string) error {
	entry, err := i.entry(ctx, component)
	if err != nil {
		return err
	}

	manifest, err := i.fileManifest(ctx, entry)
	if err != nil {
		return err
	}

	j := i.Runtime(component)
	home := j.Home()

	paths := maps.Keys(manifest.Files)
	slices.Sort(paths)

	i.Observer.SetStatus("Installing java runtime " + component)
	i.Observer.SetMax(len(paths))

	ledger := make([]string, 0, len(paths))
	for n, rel := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		file := manifest.Files[rel]
		target := filepath.Join(home, filepath.FromSlash(rel))
		if err := downloadmgr.CheckInside(i.root, target); err != nil {
			return err
		}

		switch file.Type {
		case TypeDirectory:
			if err := os.MkdirAll(target, os.ModePerm); err != nil {
				return err
			}
		case TypeFile:
			line, err := i.installFile(ctx, rel, target, file)
			if err != nil {
				return err
			}
			ledger = append(ledger, line)
		case TypeLink:
			if err := i.installLink(target, file.Target); err != nil {
				return err
			}
		default:
			i.Logger.Warn("skipping unknown runtime file type", "path", rel, "type", file.Type)
		}

		i.Observer.SetProgress(n + 1)
	}

	if err := os.WriteFile(j.versionFile(), []byte(entry.Version.Name), 0644); err != nil {
		return err
	}
	ledgerContent := strings.Join(ledger, "\n")
	if len(ledger) != 0 {
		ledgerContent += "\n"
	}
	if err := os.WriteFile(j.ledgerFile(), []byte(ledgerContent), 0644); err != nil {
		return err
	}

	i.Logger.Info("installed java runtime", "component", component, "version", entry.Version.Name)
	return nil
}

func (i *Installer) installFile(ctx context.Context, rel string, target string, file ManifestFile) (string, error) {
	if file.Downloads == nil || file.Downloads.Raw == nil {
		return "", &merrors.SchemaError{Source: rel, Field: "downloads.raw"}
	}
	raw := file.Downloads.Raw

	// the lzma variant is smaller but has to match the sha1 of the raw file
	item := &downloadmgr.Item{URL: raw.URL, Target: target, Sha1: raw.Sha1}
	if file.Downloads.LZMA != nil {
		item.URL = file.Downloads.LZMA.URL
		item.LZMA = true
	}

	if _, err := downloadmgr.Fetch(ctx, i.http, item, i.root); err != nil {
		return "", err
	}

	if file.Executable && runtime.GOOS != "windows" {
		if err := os.Chmod(target, 0755); err != nil {
			return "", err
		}
	}

	stat, err := os.Stat(target)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s /#// %s %d", rel, raw.Sha1, stat.ModTime().UnixNano()), nil
}

// installLink creates link pointing to target (relative to the directory of link)
func (i *Installer) installLink(link string, target string) error {
	relTarget := filepath.FromSlash(target)
	// Join would turn "/etc/passwd" into a path below the link
	if filepath.IsAbs(relTarget) || strings.HasPrefix(target, "/") || filepath.VolumeName(relTarget) != "" {
		return errors.Wrapf(merrors.ErrPathEscape, "link target %s is absolute", target)
	}
	resolved := filepath.Join(filepath.Dir(link), relTarget)
	if err := downloadmgr.CheckInside(i.root, resolved); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(link), os.ModePerm); err != nil {
		return err
	}
	if _, err := os.Lstat(link); err == nil {
		if err := os.Remove(link); err != nil {
			return err
		}
	}
	return os.Symlink(relTarget, link)
}

func (i *Installer) index(ctx context.Context) (RuntimeIndex, error) {
	body, err := i.cache.Get(ctx, i.IndexURL)
	if err != nil {
		return nil, err
	}
	index := RuntimeIndex{}
	if err := json.Unmarshal(body, &index); err != nil {
		return nil, &merrors.SchemaError{Source: i.IndexURL, Field: "runtimes", Err: err}
	}
	return index, nil
}

func (i *Installer) entry(ctx context.Context, component string) (*RuntimeEntry, error) {
	index, err := i.index(ctx)
	if err != nil {
		return nil, err
	}
	key := i.platform.RuntimeKey()
	entries := index[key][component]
	if len(entries) == 0 {
		return nil, errors.Wrapf(merrors.ErrNotFound, "java runtime %s for %s", component, key)
	}
	return &entries[0], nil
}

func (i *Installer) fileManifest(ctx context.Context, entry *RuntimeEntry) (*FileManifest, error) {
	body, err := i.cache.Get(ctx, entry.Manifest.URL)
	if err != nil {
		return nil, err
	}
	if entry.Manifest.Sha1 != "" {
		sum := sha1.Sum(body)
		if actual := hex.EncodeToString(sum[:]); actual != entry.Manifest.Sha1 {
			return nil, &merrors.ChecksumError{
				URL:      entry.Manifest.URL,
				Path:     "runtime manifest",
				Expected: entry.Manifest.Sha1,
				Actual:   actual,
			}
		}
	}

	manifest := &FileManifest{}
	if err := json.Unmarshal(body, manifest); err != nil {
		return nil, &merrors.SchemaError{Source: entry.Manifest.URL, Field: "files", Err: err}
	}
	return manifest, nil
}
