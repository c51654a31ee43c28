package main

import (
	"net/http"

	"github.com/minepkg/mclaunch/cmd"
	"github.com/minepkg/mclaunch/internals/ownhttp"
)

// set by goreleaser
var version string

func main() {
	if version != "" {
		ownhttp.Version = version
		cmd.Version = version
	}

	// replace default http client
	http.DefaultClient = ownhttp.New()

	cmd.Execute()
}
