package launcher

import (
	"context"
	"errors"

	"github.com/minepkg/mclaunch/internals/merrors"
)

// Java returns the java executable to launch with. The runtime is installed if needed.
// An empty string means the manifest decides
func (l *Launcher) Java(ctx context.Context) (string, error) {
	if l.java != "" {
		return l.java, nil
	}

	switch {
	case l.UseSystemJava:
		l.java = "java"
	case l.JavaComponent != "":
		// java version overwritten
		installer := *l.Instance.Java
		bin, err := installer.Executable(l.JavaComponent)
		if errors.Is(err, merrors.ErrNotFound) {
			s := NewMaybeSpinner(!l.NonInteractive)
			installer.Observer = s
			s.Start()
			err = installer.Install(ctx, l.JavaComponent)
			s.Stop()
			if err != nil {
				return "", err
			}
			bin, err = installer.Executable(l.JavaComponent)
		}
		if err != nil {
			return "", err
		}
		l.java = bin
	}

	return l.java, nil
}
