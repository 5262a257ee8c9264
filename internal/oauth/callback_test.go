package oauth

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestCallbackDeliversCode(t *testing.T) {
	server, err := startCallbackServer("http://127.0.0.1:0/callback", "state123")
	if err != nil {
		t.Fatalf("startCallbackServer returned error: %v", err)
	}
	t.Cleanup(server.shutdown)

	resp, err := http.Get("http://" + server.addr() + "/callback?code=abc&state=state123")
	if err != nil {
		t.Fatalf("callback request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "Authorization successful") {
		t.Fatalf("unexpected body %q", body)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	code, err := server.wait(ctx)
	if err != nil {
		t.Fatalf("wait returned error: %v", err)
	}
	if code != "abc" {
		t.Fatalf("code = %q, want abc", code)
	}
}

func TestCallbackRejectsStateMismatch(t *testing.T) {
	server, err := startCallbackServer("http://127.0.0.1:0/callback", "expected")
	if err != nil {
		t.Fatalf("startCallbackServer returned error: %v", err)
	}
	t.Cleanup(server.shutdown)

	resp, err := http.Get("http://" + server.addr() + "/callback?code=abc&state=forged")
	if err != nil {
		t.Fatalf("callback request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for forged state, got %d", resp.StatusCode)
	}

	// The forged request must not satisfy the pending wait.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := server.wait(ctx); err == nil {
		t.Fatal("wait should still be pending after a forged callback")
	}
}

func TestCallbackReportsProviderError(t *testing.T) {
	server, err := startCallbackServer("http://127.0.0.1:0/callback", "state123")
	if err != nil {
		t.Fatalf("startCallbackServer returned error: %v", err)
	}
	t.Cleanup(server.shutdown)

	resp, err := http.Get("http://" + server.addr() + "/callback?state=state123&error=access_denied&error_description=user+refused")
	if err != nil {
		t.Fatalf("callback request failed: %v", err)
	}
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err = server.wait(ctx)
	if err == nil || !strings.Contains(err.Error(), "user refused") {
		t.Fatalf("expected refusal error with description, got %v", err)
	}
}

func TestCallbackRejectsRedirectURLWithoutHost(t *testing.T) {
	if _, err := startCallbackServer("/callback", "state"); err == nil {
		t.Fatal("expected error for redirect url without host")
	}
}
