package java

import "context"

// Locator finds a java executable for a runtime component.
// Local installations outside of the runtime directory can be found by other implementations
type Locator interface {
	Locate(ctx context.Context, component string) (string, error)
}

// Locate returns the executable of an installed runtime component
func (i *Installer) Locate(ctx context.Context, component string) (string, error) {
	return i.Executable(component)
}

var _ Locator = (*Installer)(nil)
