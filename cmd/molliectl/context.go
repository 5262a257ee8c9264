package main

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"molliectl/internal/config"
	"molliectl/internal/logging"
	"molliectl/internal/mollie"
	"molliectl/internal/oauth"
	"molliectl/internal/render"
)

// commandContext carries lazily resolved configuration and wiring shared
// by every command.
type commandContext struct {
	configFlag   *string
	formatFlag   *string
	testmodeFlag *bool

	configOnce sync.Once
	config     *config.Config
	logger     *slog.Logger
	configErr  error
}

func newCommandContext(configFlag, formatFlag *string, testmodeFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		formatFlag:   formatFlag,
		testmodeFlag: testmodeFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.testmodeFlag != nil && *c.testmodeFlag {
			cfg.API.Testmode = true
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.logger = logger
	})
	return c.config, c.configErr
}

// formatMode resolves the output format from the flag, falling back to the
// configured (or environment) default.
func (c *commandContext) formatMode() (render.FormatMode, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return 0, err
	}
	value := cfg.Output.Format
	if c.formatFlag != nil && strings.TrimSpace(*c.formatFlag) != "" {
		value = *c.formatFlag
	}
	return render.ParseFormat(value)
}

// newClient builds an API client from the configured credentials. An API
// key wins over an access token; OAuth is the fallback.
func (c *commandContext) newClient(ctx context.Context) (*mollie.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second}
	opts := []mollie.Option{
		mollie.WithBaseURL(cfg.API.BaseURL),
		mollie.WithHTTPClient(httpClient),
		mollie.WithLogger(c.logger),
	}

	switch {
	case cfg.API.Key != "":
		return mollie.NewWithAPIKey(cfg.API.Key, opts...)
	case cfg.API.AccessToken != "":
		return mollie.NewWithAccessToken(cfg.API.AccessToken, cfg.API.Testmode, opts...)
	default:
		manager, err := c.oauthManager()
		if err != nil {
			return nil, err
		}
		source, err := manager.TokenSource(ctx)
		if err != nil {
			return nil, err
		}
		return mollie.NewWithTokenSource(source, cfg.API.Testmode, opts...)
	}
}

func (c *commandContext) oauthManager() (*oauth.Manager, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return oauth.NewManager(cfg, oauth.WithLogger(c.logger))
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
