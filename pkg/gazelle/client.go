// Package gazelle implements a client for the GazelleGames JSON API.
//
// Every call goes through a shared pipeline: the endpoint URL is assembled
// from an action name and a parameter map (absent values are omitted, never
// sent empty), the call waits on a rolling 5-calls-per-10s limiter, and the
// response envelope is unwrapped into the typed payload or an *APIError.
package gazelle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/racoon-plane-thief/ggn-console-downloader/internal/request"
	"github.com/rs/zerolog"
	"github.com/valyala/fastjson"
)

const (
	DefaultAPIURL      = "https://gazellegames.net/api.php"
	DefaultTorrentsURL = "https://gazellegames.net/torrents.php"

	// The site allows 5 API calls in any rolling 10 second window.
	rateLimitCalls  = 5
	rateLimitWindow = 10 * time.Second

	requestTimeout = 10 * time.Second
)

type Option func(*Client)

func WithAPIURL(u string) Option {
	return func(c *Client) {
		c.apiURL = strings.TrimSuffix(u, "?")
	}
}

func WithTorrentsURL(u string) Option {
	return func(c *Client) {
		c.torrentsURL = strings.TrimSuffix(u, "?")
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimiter replaces the default 5/10s sliding window, e.g. with a
// request.ParseRateLimit token bucket from config.
func WithRateLimiter(rl request.Limiter) Option {
	return func(c *Client) {
		c.limiter = rl
	}
}

func WithProxy(proxyURL string) Option {
	return func(c *Client) {
		c.proxy = proxyURL
	}
}

// WithHeader adds an extra header sent on every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.extraHeaders[key] = value
	}
}

// Client talks to the GGn API. The token is fixed for the client's lifetime.
type Client struct {
	token       string
	apiURL      string
	torrentsURL string
	proxy       string
	client      *request.Client
	limiter     request.Limiter
	logger      zerolog.Logger

	extraHeaders map[string]string

	// session user, fetched lazily at most once per client
	userMu sync.Mutex
	user   *QuickUser
}

func New(token string, opts ...Option) *Client {
	c := &Client{
		token:        strings.TrimSpace(token),
		apiURL:       DefaultAPIURL,
		torrentsURL:  DefaultTorrentsURL,
		extraHeaders: map[string]string{},
		logger:       zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.limiter == nil {
		c.limiter = request.NewSlidingWindow(rateLimitCalls, rateLimitWindow)
	}

	headers := map[string]string{
		"Accept":       "application/json",
		"Content-Type": "application/json",
		"X-API-Key":    c.token,
	}
	for k, v := range c.extraHeaders {
		headers[k] = v
	}

	c.client = request.New(
		request.WithTimeout(requestTimeout),
		request.WithRateLimiter(c.limiter),
		request.WithHeaders(headers),
		request.WithLogger(c.logger),
		request.WithProxy(c.proxy),
	)
	return c
}

// WaitLimiter exposes the client's rate limiter to callers that transfer
// bytes outside the client, so those transfers share the same budget.
func (c *Client) WaitLimiter(ctx context.Context) error {
	return c.client.WaitLimiter(ctx)
}

type callOptions struct {
	// overrideURL replaces the JSON API base; used by the torrent download
	// path which lives on torrents.php.
	overrideURL string
	// dry constructs and returns the endpoint URL without any network I/O.
	dry bool
}

// callResult is the outcome of one pipeline call. Endpoint is always set.
// Exactly one of Body and Response is set on a real (non-dry) call: Body for
// JSON responses, Response (with an unconsumed body) for everything else.
type callResult struct {
	Endpoint string
	Body     json.RawMessage
	Response *http.Response
}

// endpoint assembles the request URL. url.Values encodes keys sorted, so the
// same action and parameters always produce the same URL.
func (c *Client) endpoint(action string, params Params, overrideURL string) string {
	base := c.apiURL
	if overrideURL != "" {
		base = overrideURL
	}
	if action == "" {
		return base
	}
	values := url.Values{}
	values.Set("request", action)
	for key, value := range params {
		values.Set(key, value)
	}
	return base + "?" + values.Encode()
}

func (c *Client) call(ctx context.Context, action string, params Params, opts callOptions) (*callResult, error) {
	endpoint := c.endpoint(action, params, opts.overrideURL)
	if opts.dry {
		return &callResult{Endpoint: endpoint}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", action, err)
	}

	c.logger.Trace().Msgf("GET %s", endpoint)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", action, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &APIError{Action: action, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		// Binary payload (torrent file download); the caller owns the body.
		return &callResult{Endpoint: endpoint, Response: resp}, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", action, err)
	}

	v, err := fastjson.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", action, err)
	}
	if status := string(v.GetStringBytes("status")); status != "success" {
		return nil, &APIError{Action: action, StatusCode: resp.StatusCode, Body: string(body)}
	}

	response := v.Get("response")
	if response == nil {
		return &callResult{Endpoint: endpoint, Body: json.RawMessage("null")}, nil
	}
	return &callResult{Endpoint: endpoint, Body: response.MarshalTo(nil)}, nil
}

func isJSON(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(mediaType) == "application/json"
}

// Do performs a JSON API call and returns the raw "response" payload.
func (c *Client) Do(ctx context.Context, action string, params Params) (json.RawMessage, error) {
	res, err := c.call(ctx, action, params, callOptions{})
	if err != nil {
		return nil, err
	}
	if res.Response != nil {
		res.Response.Body.Close()
		return nil, fmt.Errorf("unexpected non-json response from %s", action)
	}
	return res.Body, nil
}

// DryURL returns the endpoint URL a call would hit, without network I/O.
func (c *Client) DryURL(action string, params Params) string {
	return c.endpoint(action, params, "")
}

// doJSON performs a call and decodes the response payload into out.
func (c *Client) doJSON(ctx context.Context, action string, params Params, out any) error {
	raw, err := c.Do(ctx, action, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", action, err)
	}
	return nil
}
