package minecraft

// LaunchOptions are supplied by the caller to customize the generated launch command.
// They are never modified by this package, use Clone before setting defaults.
type LaunchOptions struct {
	// Username, UUID and Token identify the player. See [LaunchAuthData]
	Username string
	UUID     string
	Token    string

	// ExecutablePath overwrites the java binary used to launch
	ExecutablePath string
	// DefaultExecutablePath is used if the manifest does not require a specific runtime
	DefaultExecutablePath string
	// JVMArguments are added right after the executable
	JVMArguments []string

	LauncherName    string
	LauncherVersion string

	// GameDirectory contains saves, mods, etc. Defaults to the installation root
	GameDirectory string
	// NativesDirectory defaults to versions/{id}/natives
	NativesDirectory string

	// Demo launches the client in demo mode
	Demo bool

	CustomResolution bool
	ResolutionWidth  string
	ResolutionHeight string

	// Server (and optionally Port) to connect to after startup
	Server string
	Port   string

	EnableLoggingConfig bool
	DisableMultiplayer  bool
	DisableChat         bool

	QuickPlayPath         string
	QuickPlaySingleplayer string
	QuickPlayMultiplayer  string
	QuickPlayRealms       string
}

// Clone returns a deep copy of the options
func (o *LaunchOptions) Clone() *LaunchOptions {
	if o == nil {
		return &LaunchOptions{}
	}
	clone := *o
	if o.JVMArguments != nil {
		clone.JVMArguments = append([]string(nil), o.JVMArguments...)
	}
	return &clone
}

// SetAuth copies the player identity from the given auth data
func (o *LaunchOptions) SetAuth(auth LaunchAuthData) {
	o.Username = auth.GetPlayerName()
	o.UUID = auth.GetUUID()
	o.Token = auth.GetAccessToken()
}
