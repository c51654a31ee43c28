package launcher

import (
	"fmt"
	"math"
	"strconv"

	"github.com/minepkg/mclaunch/internals/minecraft"
	"github.com/pbnjay/memory"
	"github.com/spf13/cobra"
)

// LaunchFlags are cli flags used to customize the launch command
type LaunchFlags struct {
	Java      string
	Ram       int
	Width     int
	Height    int
	Demo      bool
	Server    string
	Port      int
	Logging   bool
	NoMulti   bool
	NoChat    bool
	GameDir   string
	JVMArgs   []string
	QuickPlay struct {
		Path         string
		Singleplayer string
		Multiplayer  string
		Realms       string
	}
}

// CmdLaunchFlags registers the launch flags on cmd
func CmdLaunchFlags(cmd *cobra.Command) *LaunchFlags {
	flags := LaunchFlags{}
	f := cmd.Flags()
	f.StringVar(&flags.Java, "java", "", "Overwrite the Java runtime. Examples: java-runtime-gamma, jre-legacy, system")
	f.IntVar(&flags.Ram, "ram", 0, "Amount of RAM in MiB to use (0 picks a value based on the system memory)")
	f.IntVar(&flags.Width, "width", 0, "Width of the game window")
	f.IntVar(&flags.Height, "height", 0, "Height of the game window")
	f.BoolVar(&flags.Demo, "demo", false, "Start in demo mode")
	f.StringVar(&flags.Server, "server", "", "Join this server after startup")
	f.IntVar(&flags.Port, "port", 0, "Port of the server to join")
	f.BoolVar(&flags.Logging, "logging", false, "Use the log4j configuration of the version")
	f.BoolVar(&flags.NoMulti, "disable-multiplayer", false, "Disable multiplayer")
	f.BoolVar(&flags.NoChat, "disable-chat", false, "Disable the chat")
	f.StringVar(&flags.GameDir, "game-dir", "", "Directory for saves, mods and options (defaults to the installation directory)")
	f.StringSliceVar(&flags.JVMArgs, "jvm-arg", nil, "Additional JVM argument (can be used multiple times)")
	f.StringVar(&flags.QuickPlay.Path, "quick-play-path", "", "Quick play log file (relative to the game directory)")
	f.StringVar(&flags.QuickPlay.Singleplayer, "quick-play-singleplayer", "", "Start this singleplayer world")
	f.StringVar(&flags.QuickPlay.Multiplayer, "quick-play-multiplayer", "", "Join this server using quick play")
	f.StringVar(&flags.QuickPlay.Realms, "quick-play-realms", "", "Join this realm")

	return &flags
}

// Apply sets the java overwrites on the launcher
func (l *Launcher) Apply(o *LaunchFlags) {
	if o.Java == "system" {
		l.UseSystemJava = true
	} else {
		l.JavaComponent = o.Java
	}
}

// Options returns the launch options for the flags
func (o *LaunchFlags) Options() *minecraft.LaunchOptions {
	opts := &minecraft.LaunchOptions{
		JVMArguments:          append([]string{MaxRamArgument(o.Ram)}, o.JVMArgs...),
		GameDirectory:         o.GameDir,
		Demo:                  o.Demo,
		Server:                o.Server,
		EnableLoggingConfig:   o.Logging,
		DisableMultiplayer:    o.NoMulti,
		DisableChat:           o.NoChat,
		QuickPlayPath:         o.QuickPlay.Path,
		QuickPlaySingleplayer: o.QuickPlay.Singleplayer,
		QuickPlayMultiplayer:  o.QuickPlay.Multiplayer,
		QuickPlayRealms:       o.QuickPlay.Realms,
	}
	if o.Port != 0 {
		opts.Port = strconv.Itoa(o.Port)
	}
	if o.Width != 0 || o.Height != 0 {
		opts.CustomResolution = true
		if o.Width != 0 {
			opts.ResolutionWidth = strconv.Itoa(o.Width)
		}
		if o.Height != 0 {
			opts.ResolutionHeight = strconv.Itoa(o.Height)
		}
	}
	return opts
}

// MaxRamArgument returns the -Xmx argument. 0 determines the amount by available system ram
func MaxRamArgument(ramMiB int) string {
	if ramMiB == 0 {
		ramMiB = defaultRamMiB(float64(memory.TotalMemory()) / 1024 / 1024)
	}
	return fmt.Sprintf("-Xmx%dM", ramMiB)
}

func defaultRamMiB(sysMemMiB float64) int {
	// 2GiB is enough for vanilla
	maxRamMiB := 2048.0
	// unknown system memory
	if sysMemMiB <= 0 {
		return int(maxRamMiB)
	}

	// we take 1/4 of the system memory if that is more
	maxRamMiB = math.Max(maxRamMiB, sysMemMiB/4)
	// but not more than 85% of the memory
	maxRamMiB = math.Min(maxRamMiB, sysMemMiB*0.85)
	// and never more than 8GiB, the garbage collector does not like big heaps
	return int(math.Min(maxRamMiB, 8192))
}
