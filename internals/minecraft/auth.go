package minecraft

// LaunchAuthData is an interface defining the data required to authenticate.
// It is implemented by whatever identity provider the caller uses.
type LaunchAuthData interface {
	// GetAccessToken returns the access token (strictly required)
	GetAccessToken() string
	// GetUUID returns the users UUID (strictly required)
	GetUUID() string
	// GetPlayerName returns the users player name (the one that also appears in game)
	GetPlayerName() string
}

// StaticAuth is LaunchAuthData with fixed values
type StaticAuth struct {
	PlayerName  string `json:"playerName"`
	UUID        string `json:"uuid"`
	AccessToken string `json:"accessToken"`
}

func (s *StaticAuth) GetAccessToken() string { return s.AccessToken }
func (s *StaticAuth) GetUUID() string        { return s.UUID }
func (s *StaticAuth) GetPlayerName() string  { return s.PlayerName }
