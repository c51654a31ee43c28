package downloadmgr

import (
	"crypto/sha1"
	"encoding/hex"
	"io"
	"os"
)

// Sha1File returns the hex encoded sha1 sum of the file
func Sha1File(p string) (string, error) {
	src, err := os.Open(p)
	if err != nil {
		return "", err
	}
	defer src.Close()

	hasher := sha1.New()
	// probably io error during hashing
	if _, err := io.Copy(hasher, src); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
