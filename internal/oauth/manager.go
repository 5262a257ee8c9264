package oauth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"molliectl/internal/config"
)

// ErrNotAuthorized is returned when no OAuth token has been stored yet.
var ErrNotAuthorized = errors.New("oauth authorization required; run `molliectl auth login`")

// scopes lists the read permissions molliectl requests; the CLI never
// mutates resources.
var scopes = []string{
	"payments.read",
	"refunds.read",
	"customers.read",
	"orders.read",
	"profiles.read",
	"organizations.read",
	"onboarding.read",
	"invoices.read",
	"settlements.read",
	"subscriptions.read",
	"mandates.read",
	"shipments.read",
}

// Option customises Manager construction.
type Option func(*Manager)

// WithStore injects a custom persistence layer.
func WithStore(store Store) Option {
	return func(m *Manager) {
		if store != nil {
			m.store = store
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Manager drives the authorization-code flow and owns token persistence.
type Manager struct {
	conf   oauth2.Config
	store  Store
	logger *slog.Logger
}

// NewManager builds a Manager using the provided configuration.
func NewManager(cfg *config.Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	mgr := &Manager{
		conf: oauth2.Config{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			RedirectURL:  cfg.OAuth.RedirectURL,
			Scopes:       scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.OAuth.AuthURL,
				TokenURL: cfg.OAuth.TokenURL,
			},
		},
		store:  NewFileStore(cfg.OAuth.TokenPath),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(mgr)
	}
	return mgr, nil
}

// Login runs the authorization-code flow: it starts the local callback
// listener, reports the authorization URL through notify, waits for the
// redirect (bounded by ctx), exchanges the code, and persists the token.
func (m *Manager) Login(ctx context.Context, notify func(authURL string)) (*oauth2.Token, error) {
	if m.conf.ClientID == "" || m.conf.ClientSecret == "" || m.conf.RedirectURL == "" {
		return nil, errors.New("oauth authorization requires client_id, client_secret, and redirect_url")
	}

	state := uuid.NewString()
	server, err := startCallbackServer(m.conf.RedirectURL, state)
	if err != nil {
		return nil, err
	}
	defer server.shutdown()

	authURL := m.conf.AuthCodeURL(state)
	if notify != nil {
		notify(authURL)
	}
	m.logger.Info("waiting for oauth callback", slog.String("listen", server.addr()))

	code, err := server.wait(ctx)
	if err != nil {
		return nil, err
	}

	token, err := m.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	if err := m.store.Save(token); err != nil {
		return nil, err
	}
	m.logger.Info("oauth token stored")
	return token, nil
}

// TokenSource returns a refreshing token source backed by the stored
// token. Refreshed tokens are written back to the store.
func (m *Manager) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	token, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrNotAuthorized
	}
	return &persistingSource{
		base:   m.conf.TokenSource(ctx, token),
		store:  m.store,
		last:   token.AccessToken,
		logger: m.logger,
	}, nil
}

// Status returns the stored token, or nil when not authorized.
func (m *Manager) Status() (*oauth2.Token, error) {
	return m.store.Load()
}

// Logout discards the stored token.
func (m *Manager) Logout() error {
	return m.store.Clear()
}

// persistingSource saves tokens back to the store whenever the underlying
// source hands out a new one.
type persistingSource struct {
	mu     sync.Mutex
	base   oauth2.TokenSource
	store  Store
	last   string
	logger *slog.Logger
}

func (s *persistingSource) Token() (*oauth2.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.base.Token()
	if err != nil {
		return nil, err
	}
	if token.AccessToken != s.last {
		if err := s.store.Save(token); err != nil {
			return nil, err
		}
		s.last = token.AccessToken
		s.logger.Debug("refreshed oauth token persisted")
	}
	return token, nil
}
