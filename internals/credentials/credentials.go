// Package credentials persists the player identity that is passed to the game.
// The system keyring is used when available, a file in the config dir otherwise.
package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/pkg/errors"
	"github.com/zalando/go-keyring"
)

var (
	authService = "mclaunch"
	authUser    = "launch_auth_data"
	authFile    = "credentials.json"
)

// Store stores the identity used to launch
type Store struct {
	globalDir     string
	NoKeyRingMode bool
	Auth          *minecraft.StaticAuth
}

// New creates a new store and loads existing credentials
func New(globalDir string) (*Store, error) {
	store := &Store{globalDir: globalDir}
	if err := store.Find(); err != nil {
		return nil, err
	}
	return store, nil
}

// Find tries to find existing credentials
func (s *Store) Find() error {
	raw, err := keyring.Get(authService, authUser)
	switch err {
	case nil:
		return s.parse([]byte(raw))
	case keyring.ErrNotFound:
		// no credentials (yet) is fine
		return nil
	default:
		// no keyring on this system (headless linux for example)
		s.NoKeyRingMode = true
		return s.findFromFile()
	}
}

// SetAuth sets `Auth` and persists it
func (s *Store) SetAuth(auth *minecraft.StaticAuth) error {
	s.Auth = auth

	authJSONBlob, err := json.Marshal(s.Auth)
	if err != nil {
		return err
	}
	if s.NoKeyRingMode {
		return s.writeCredentialFile(authJSONBlob)
	}
	return keyring.Set(authService, authUser, string(authJSONBlob))
}

// Clear removes the stored credentials
func (s *Store) Clear() error {
	s.Auth = nil
	if s.NoKeyRingMode {
		err := os.Remove(filepath.Join(s.globalDir, authFile))
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	err := keyring.Delete(authService, authUser)
	if err == keyring.ErrNotFound {
		return nil
	}
	return err
}

func (s *Store) parse(raw []byte) error {
	auth := &minecraft.StaticAuth{}
	if err := json.Unmarshal(raw, auth); err != nil {
		return errors.Wrap(err, "stored credentials are invalid")
	}
	s.Auth = auth
	return nil
}

// findFromFile is the same as Find but reads from a plain file instead
func (s *Store) findFromFile() error {
	raw, err := os.ReadFile(filepath.Join(s.globalDir, authFile))
	switch {
	case err == nil:
		return s.parse(raw)
	case os.IsNotExist(err):
		// no file is fine
		return nil
	default:
		// everything else is not
		return err
	}
}

// writeCredentialFile writes the credentials to the config dir
func (s *Store) writeCredentialFile(content []byte) error {
	if err := os.MkdirAll(s.globalDir, os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.globalDir, authFile), content, 0600)
}
