package mollie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://api.mollie.com"

// Client provides read access to the Mollie v2 REST API.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	bearer      func(ctx context.Context) (string, error)
	testmode    bool
	descriptors []Descriptor
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the API base URL (used in tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimSpace(baseURL); trimmed != "" {
			c.baseURL = strings.TrimRight(trimmed, "/")
		}
	}
}

// WithLogger attaches a structured logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewWithAPIKey creates a client authenticating with a website API key.
func NewWithAPIKey(key string, opts ...Option) (*Client, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrNoCredentials
	}
	if !strings.HasPrefix(key, "test_") && !strings.HasPrefix(key, "live_") {
		return nil, errors.New("api key must start with test_ or live_")
	}
	static := key
	return newClient(func(context.Context) (string, error) { return static, nil }, false, opts...)
}

// NewWithAccessToken creates a client authenticating with an organization
// access token. Testmode adds testmode=true to every request.
func NewWithAccessToken(token string, testmode bool, opts ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrNoCredentials
	}
	if !strings.HasPrefix(token, "access_") {
		return nil, errors.New("access token must start with access_")
	}
	static := token
	return newClient(func(context.Context) (string, error) { return static, nil }, testmode, opts...)
}

// NewWithTokenSource creates a client that draws bearer tokens from an
// OAuth2 token source, refreshing as needed.
func NewWithTokenSource(source oauth2.TokenSource, testmode bool, opts ...Option) (*Client, error) {
	if source == nil {
		return nil, ErrNoCredentials
	}
	bearer := func(context.Context) (string, error) {
		tok, err := source.Token()
		if err != nil {
			return "", fmt.Errorf("obtain oauth token: %w", err)
		}
		return tok.AccessToken, nil
	}
	return newClient(bearer, testmode, opts...)
}

func newClient(bearer func(ctx context.Context) (string, error), testmode bool, opts ...Option) (*Client, error) {
	client := &Client{
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
		bearer:      bearer,
		testmode:    testmode,
		descriptors: SupportedResources(),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Descriptors returns the supported resource types in stable order.
func (c *Client) Descriptors() []Descriptor {
	out := make([]Descriptor, len(c.descriptors))
	copy(out, c.descriptors)
	return out
}

func (c *Client) descriptor(name string) (Descriptor, bool) {
	for _, d := range c.descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Get fetches a single record of the named resource type by ID.
func (c *Client) Get(ctx context.Context, resourceType, id string) (Record, error) {
	desc, ok := c.descriptor(resourceType)
	if !ok || !desc.SupportsGet {
		return nil, fmt.Errorf("%w: resource %q does not support getting single objects", ErrNotSupported, resourceType)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("resource id must not be empty")
	}

	endpoint, err := url.Parse(c.baseURL + "/v2/" + resourceType + "/" + url.PathEscape(id))
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	c.applyQuery(endpoint, nil)

	var record Record
	if err := c.do(ctx, endpoint, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// List fetches up to limit records of the named resource type, preserving
// the API's ordering.
func (c *Client) List(ctx context.Context, resourceType string, limit int) ([]Record, error) {
	desc, ok := c.descriptor(resourceType)
	if !ok || !desc.SupportsList {
		return nil, fmt.Errorf("%w: resource %q does not support listing", ErrNotSupported, resourceType)
	}

	endpoint, err := url.Parse(c.baseURL + "/v2/" + resourceType)
	if err != nil {
		return nil, fmt.Errorf("parse api url: %w", err)
	}
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	c.applyQuery(endpoint, params)

	var payload struct {
		Count    int                 `json:"count"`
		Embedded map[string][]Record `json:"_embedded"`
	}
	if err := c.do(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return payload.Embedded[resourceType], nil
}

func (c *Client) applyQuery(endpoint *url.URL, params url.Values) {
	if params == nil {
		params = url.Values{}
	}
	if c.testmode {
		params.Set("testmode", "true")
	}
	endpoint.RawQuery = params.Encode()
}

func (c *Client) do(ctx context.Context, endpoint *url.URL, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	token, err := c.bearer(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("mollie api request",
		slog.String("path", endpoint.Path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", latency))

	if resp.StatusCode >= 400 {
		apiErr := &APIError{Status: resp.StatusCode}
		// The error body is best effort; the status code alone is enough.
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		if apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode api response: %w", err)
	}
	return nil
}
