package oauth_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"molliectl/internal/config"
	"molliectl/internal/oauth"
)

func newTokenEndpoint(t *testing.T, accessToken string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("token endpoint expects POST, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":%q,"token_type":"bearer","refresh_token":"refresh_1","expires_in":3600}`, accessToken)
	}))
}

func managerConfig(t *testing.T, tokenURL string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.OAuth.ClientID = "app_123"
	cfg.OAuth.ClientSecret = "secret_456"
	cfg.OAuth.TokenURL = tokenURL
	cfg.OAuth.AuthURL = "https://auth.example.test/authorize"
	cfg.OAuth.TokenPath = filepath.Join(t.TempDir(), "token.json")
	return &cfg
}

// reservePort grabs a free local port for the redirect listener.
func reservePort(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("reserve port: %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()
	return addr
}

func TestLoginExchangesCodeAndStoresToken(t *testing.T) {
	tokenEndpoint := newTokenEndpoint(t, "access_fresh")
	t.Cleanup(tokenEndpoint.Close)

	cfg := managerConfig(t, tokenEndpoint.URL)
	redirectAddr := reservePort(t)
	cfg.OAuth.RedirectURL = "http://" + redirectAddr + "/callback"

	manager, err := oauth.NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Play the provider: once the authorization URL is announced, redirect
	// the "browser" straight back with a code and the same state.
	notify := func(authURL string) {
		parsed, err := url.Parse(authURL)
		if err != nil {
			t.Errorf("authorization url should parse: %v", err)
			return
		}
		state := parsed.Query().Get("state")
		go func() {
			resp, err := http.Get(cfg.OAuth.RedirectURL + "?code=auth_code_1&state=" + url.QueryEscape(state))
			if err == nil {
				resp.Body.Close()
			}
		}()
	}

	token, err := manager.Login(ctx, notify)
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if token.AccessToken != "access_fresh" {
		t.Fatalf("unexpected access token %q", token.AccessToken)
	}

	stored, err := oauth.NewFileStore(cfg.OAuth.TokenPath).Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if stored == nil || stored.AccessToken != "access_fresh" {
		t.Fatalf("token should be persisted after login, got %+v", stored)
	}
}

func TestLoginRequiresClientCredentials(t *testing.T) {
	cfg := managerConfig(t, "https://api.example.test/tokens")
	cfg.OAuth.ClientID = ""

	manager, err := oauth.NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}
	if _, err := manager.Login(context.Background(), nil); err == nil {
		t.Fatal("expected error without client credentials")
	}
}

func TestTokenSourceRequiresStoredToken(t *testing.T) {
	manager, err := oauth.NewManager(managerConfig(t, "https://api.example.test/tokens"))
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}
	if _, err := manager.TokenSource(context.Background()); !errors.Is(err, oauth.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
}

func TestTokenSourceRefreshPersistsNewToken(t *testing.T) {
	tokenEndpoint := newTokenEndpoint(t, "access_refreshed")
	t.Cleanup(tokenEndpoint.Close)

	cfg := managerConfig(t, tokenEndpoint.URL)
	store := oauth.NewFileStore(cfg.OAuth.TokenPath)
	expired := &oauth2.Token{
		AccessToken:  "access_stale",
		RefreshToken: "refresh_0",
		TokenType:    "bearer",
		Expiry:       time.Now().Add(-time.Hour),
	}
	if err := store.Save(expired); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	manager, err := oauth.NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}
	source, err := manager.TokenSource(context.Background())
	if err != nil {
		t.Fatalf("TokenSource returned error: %v", err)
	}

	token, err := source.Token()
	if err != nil {
		t.Fatalf("Token returned error: %v", err)
	}
	if token.AccessToken != "access_refreshed" {
		t.Fatalf("expected refreshed token, got %q", token.AccessToken)
	}

	stored, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if stored.AccessToken != "access_refreshed" {
		t.Fatalf("refreshed token should be written back, got %q", stored.AccessToken)
	}
}

func TestStatusAndLogout(t *testing.T) {
	cfg := managerConfig(t, "https://api.example.test/tokens")
	manager, err := oauth.NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	token, err := manager.Status()
	if err != nil || token != nil {
		t.Fatalf("fresh manager should have no token, token=%v err=%v", token, err)
	}

	store := oauth.NewFileStore(cfg.OAuth.TokenPath)
	if err := store.Save(&oauth2.Token{AccessToken: "access_abc"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if token, err = manager.Status(); err != nil || token == nil {
		t.Fatalf("Status should report the stored token, token=%v err=%v", token, err)
	}

	if err := manager.Logout(); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if token, err = manager.Status(); err != nil || token != nil {
		t.Fatalf("Logout should clear the token, token=%v err=%v", token, err)
	}
}
