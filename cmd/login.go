package cmd

import (
	"fmt"
	"regexp"

	"github.com/jwalton/gchalk"
	"github.com/minepkg/mclaunch/internals/commands"
	"github.com/minepkg/mclaunch/internals/credentials"
	"github.com/minepkg/mclaunch/internals/globals"
	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/spf13/cobra"
)

var playerNameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,16}$`)

func init() {
	runner := &loginRunner{}
	cmd := commands.New(&cobra.Command{
		Use:   "login <player name>",
		Short: "Sets the player identity used to launch",
		Long: `Stores the player name, uuid and access token that are passed to Minecraft.
The identity is saved in the system keyring (or a file in the config directory if there is none).
Without an access token the game can only be played offline.`,
		Args: cobra.ExactArgs(1),
	}, runner)

	cmd.Flags().StringVar(&runner.uuid, "uuid", "", "Player uuid")
	cmd.Flags().StringVar(&runner.token, "token", "", "Access token")
	cmd.Flags().BoolVar(&runner.logout, "logout", false, "Remove the stored identity instead")

	rootCmd.AddCommand(cmd.Command)
}

type loginRunner struct {
	uuid   string
	token  string
	logout bool
}

func (l *loginRunner) RunE(cmd *cobra.Command, args []string) error {
	store := globals.Credentials
	if store == nil {
		var err error
		if store, err = credentials.New(globals.GlobalDir); err != nil {
			return err
		}
	}

	if l.logout {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Removed the stored identity")
		return nil
	}

	name := args[0]
	if !playerNameRegex.MatchString(name) {
		return &commands.CliError{
			Text:        fmt.Sprintf("%q is not a valid player name", name),
			Suggestions: []string{"Player names have 3 to 16 characters: letters, numbers and _"},
		}
	}

	auth := &minecraft.StaticAuth{
		PlayerName:  name,
		UUID:        l.uuid,
		AccessToken: l.token,
	}
	if err := store.SetAuth(auth); err != nil {
		return err
	}

	fmt.Println(commands.Emoji("👤 ") + "Launching as " + gchalk.Bold(name))
	if store.NoKeyRingMode {
		fmt.Println(gchalk.Gray("No keyring found, the identity was saved in " + globals.GlobalDir))
	}
	return nil
}
