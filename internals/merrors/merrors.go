// Package merrors contains the error kinds shared by the resolver, the installer
// and the download code. Callers match them with errors.Is / errors.As.
package merrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned if a version, library or runtime component is neither
	// available locally nor remotely
	ErrNotFound = errors.New("not found")
	// ErrSchema is returned for malformed manifests or manifests missing a required field
	ErrSchema = errors.New("invalid manifest")
	// ErrRecursionLimit is returned if a manifest inherits from too many parents (or itself)
	ErrRecursionLimit = errors.New("inheritance is cyclic or too deep")
	// ErrPathEscape is returned if a path would end up outside the installation root
	ErrPathEscape = errors.New("path is outside of the installation directory")
	// ErrTransport is returned for network failures and unexpected http status codes
	ErrTransport = errors.New("transport error")
)

// ChecksumError is returned when a downloaded (or already existing) file
// does not match the expected sha1 sum
type ChecksumError struct {
	URL      string
	Path     string
	Expected string
	Actual   string
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf(
		"checksum mismatch for %s (from %s)\n\texpected \"%s\"\n\tbut actually is \"%s\"",
		e.Path,
		e.URL,
		e.Expected,
		e.Actual,
	)
}

// SchemaError describes which field of a manifest is invalid
type SchemaError struct {
	// Source is usually the manifest file or version id
	Source string
	Field  string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: field %q is invalid: %s", e.Source, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: field %q is missing", e.Source, e.Field)
}

// Is makes every SchemaError match ErrSchema
func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

func (e *SchemaError) Unwrap() error { return e.Err }
