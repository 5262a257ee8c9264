package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// API contains credentials and connection settings for the Mollie API.
type API struct {
	// Key is a website API key (test_... or live_...).
	Key string `toml:"key"`
	// AccessToken is an organization access token (access_...).
	AccessToken string `toml:"access_token"`
	BaseURL     string `toml:"base_url"`
	// Testmode adds testmode=true to requests made with an access token
	// or OAuth credentials.
	Testmode       bool `toml:"testmode"`
	TimeoutSeconds int  `toml:"timeout_seconds"`
}

// OAuth contains the registered app credentials and endpoints for the
// OAuth2 authorization flow.
type OAuth struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	RedirectURL  string `toml:"redirect_url"`
	AuthURL      string `toml:"auth_url"`
	TokenURL     string `toml:"token_url"`
	TokenPath    string `toml:"token_path"`
}

// Output contains result rendering settings.
type Output struct {
	Format string `toml:"format"`
}

// Logging contains configuration for diagnostic log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for molliectl.
type Config struct {
	API     API     `toml:"api"`
	OAuth   OAuth   `toml:"oauth"`
	Output  Output  `toml:"output"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/molliectl/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has environment fallbacks applied and all path fields expanded.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	return defaultPath, false, nil
}

// normalize trims values, applies environment fallbacks, and expands the
// token path.
func (c *Config) normalize() error {
	c.API.Key = strings.TrimSpace(c.API.Key)
	c.API.AccessToken = strings.TrimSpace(c.API.AccessToken)
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	c.OAuth.ClientID = strings.TrimSpace(c.OAuth.ClientID)
	c.OAuth.ClientSecret = strings.TrimSpace(c.OAuth.ClientSecret)
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))

	if c.API.Key == "" {
		c.API.Key = strings.TrimSpace(os.Getenv("MOLLIE_API_KEY"))
	}
	if c.API.AccessToken == "" {
		c.API.AccessToken = strings.TrimSpace(os.Getenv("MOLLIE_ACCESS_TOKEN"))
	}
	if c.OAuth.ClientID == "" {
		c.OAuth.ClientID = strings.TrimSpace(os.Getenv("MOLLIE_CLIENT_ID"))
	}
	if c.OAuth.ClientSecret == "" {
		c.OAuth.ClientSecret = strings.TrimSpace(os.Getenv("MOLLIE_CLIENT_SECRET"))
	}
	if !c.API.Testmode {
		c.API.Testmode = envBool("MOLLIE_TESTMODE")
	}
	if c.Output.Format == "" {
		c.Output.Format = strings.ToLower(strings.TrimSpace(os.Getenv("MOLLIE_FORMAT")))
	}
	if c.Output.Format == "" {
		c.Output.Format = defaultFormat
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = defaultTimeout
	}

	tokenPath, err := ExpandPath(c.OAuth.TokenPath)
	if err != nil {
		return fmt.Errorf("expand token path: %w", err)
	}
	c.OAuth.TokenPath = tokenPath
	return nil
}

func envBool(name string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// ExpandPath expands a leading tilde and returns an absolute path.
func ExpandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is empty")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// CreateSample writes the embedded sample configuration to target.
func CreateSample(target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(target, []byte(sampleConfig), 0o600); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
