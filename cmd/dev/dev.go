// Package dev contains maintenance commands
package dev

import "github.com/spf13/cobra"

// SubCmd is the dev command
var SubCmd = &cobra.Command{
	Use:   "dev",
	Short: "Maintenance commands",
}
