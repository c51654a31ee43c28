package config

import (
	"fmt"
	"strings"

	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func init() {
	cmd := commands.New(&cobra.Command{
		Use:   "get [key]",
		Short: "Gets a global config value. Prints all values without a key",
		Args:  cobra.MaximumNArgs(1),
	}, &getRunner{})

	SubCmd.AddCommand(cmd.Command)
}

type getRunner struct{}

func (i *getRunner) RunE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		keys := maps.Keys(config)
		slices.Sort(keys)
		for _, key := range keys {
			fmt.Printf("  %s: %v\n", key, viper.Get(key))
		}
		return nil
	}

	key := strings.ToLower(args[0])
	entry, ok := config[key]
	if !ok {
		return unknownKey(key)
	}

	fmt.Printf("  %s: %v\n", key, viper.Get(key))
	fmt.Printf("  %s\n", entry.help)

	return nil
}

func unknownKey(key string) error {
	keys := maps.Keys(config)
	slices.Sort(keys)
	return &commands.CliError{
		Text:        fmt.Sprintf("config key \"%s\" does not exist", key),
		Suggestions: []string{"Available keys: " + strings.Join(keys, ", ")},
	}
}
