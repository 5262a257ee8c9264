package config

const (
	defaultBaseURL     = "https://api.mollie.com"
	defaultAuthURL     = "https://my.mollie.com/oauth2/authorize"
	defaultTokenURL    = "https://api.mollie.com/oauth2/tokens"
	defaultRedirectURL = "http://localhost:5000/callback"
	defaultTokenPath   = "~/.config/molliectl/token.json"
	defaultTimeout     = 15
	defaultFormat      = "table"
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL:        defaultBaseURL,
			TimeoutSeconds: defaultTimeout,
		},
		OAuth: OAuth{
			AuthURL:     defaultAuthURL,
			TokenURL:    defaultTokenURL,
			RedirectURL: defaultRedirectURL,
			TokenPath:   defaultTokenPath,
		},
		Output: Output{
			Format: defaultFormat,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
