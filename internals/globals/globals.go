// Package globals holds state shared by all cli commands. It is set up by the root command
package globals

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/minepkg/mclaunch/internals/credentials"
	"github.com/minepkg/mclaunch/internals/ownhttp"
)

var (
	// GlobalDir is the mclaunch config directory
	GlobalDir string
	// Credentials are the stored player credentials. nil until the root command ran
	Credentials *credentials.Store
	HTTPClient  = ownhttp.New()
	Logger      = log.NewWithOptions(os.Stderr, log.Options{Prefix: "mclaunch"})
)
