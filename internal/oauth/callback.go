package oauth

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
)

const successPage = `<h1>Authorization successful</h1>
<p>You can close this window and return to molliectl.</p>
`

type callbackResult struct {
	code string
	err  error
}

// callbackServer is the short-lived local listener that captures the
// authorization-code redirect.
type callbackServer struct {
	listener net.Listener
	srv      *http.Server
	results  chan callbackResult
}

func startCallbackServer(redirectURL, state string) (*callbackServer, error) {
	parsed, err := url.Parse(redirectURL)
	if err != nil {
		return nil, fmt.Errorf("parse redirect url: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("redirect url %q has no host", redirectURL)
	}
	path := parsed.Path
	if path == "" {
		path = "/"
	}

	listener, err := net.Listen("tcp", parsed.Host)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", parsed.Host, err)
	}

	results := make(chan callbackResult, 1)

	router := chi.NewRouter()
	router.Get(path, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}
		if errCode := query.Get("error"); errCode != "" {
			detail := query.Get("error_description")
			if detail == "" {
				detail = errCode
			}
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprintf(w, "<h1>Authorization failed</h1><p>%s</p>\n", detail)
			deliver(results, callbackResult{err: fmt.Errorf("authorization refused: %s", detail)})
			return
		}
		code := query.Get("code")
		if code == "" {
			http.Error(w, "missing authorization code", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, successPage)
		deliver(results, callbackResult{code: code})
	})

	srv := &http.Server{Handler: router}
	go func() { _ = srv.Serve(listener) }()

	return &callbackServer{listener: listener, srv: srv, results: results}, nil
}

// deliver pushes the first result only; repeat hits on the callback URL
// are answered but ignored.
func deliver(results chan callbackResult, result callbackResult) {
	select {
	case results <- result:
	default:
	}
}

func (s *callbackServer) addr() string {
	return s.listener.Addr().String()
}

// wait blocks until the redirect arrives or the context expires.
func (s *callbackServer) wait(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("waiting for oauth callback: %w", ctx.Err())
	case result := <-s.results:
		return result.code, result.err
	}
}

func (s *callbackServer) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.srv.Shutdown(ctx)
}
