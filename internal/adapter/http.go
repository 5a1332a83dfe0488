package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/go-querystring/query"

	"github.com/MKhiriev/go-tieba/internal/config"
	"github.com/MKhiriev/go-tieba/internal/logger"
	"github.com/MKhiriev/go-tieba/internal/store"
	"github.com/MKhiriev/go-tieba/internal/utils"
)

const (
	// CacheBustParam is the query parameter added to every GET request.
	CacheBustParam = "_t"
	// RequestIDHeader carries a per-call identifier for log correlation.
	RequestIDHeader = "X-Request-ID"

	defaultRequestTimeout = 10 * time.Second
)

// Client is the HTTP client core. It is safe for concurrent use.
type Client struct {
	client *utils.HTTPClient
	tokens store.TokenReader
	ids    *utils.UUIDGenerator

	handlerMu sync.RWMutex
	handler   ErrorHandler

	lastStamp atomic.Int64
	now       func() time.Time

	logger *logger.Logger
}

// NewHTTPClient constructs the HTTP client core. It normalises and validates
// the base URL from cfg.HTTPAddress joined with cfg.APIBasePath, configures
// the request timeout (10s when unset) and registers the request
// interceptor. tokens is consulted on every request for the bearer token.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPClient(cfg config.ClientAdapter, tokens store.TokenReader, log *logger.Logger) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	baseURL += normalizeBasePath(cfg.APIBasePath)

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	c := &Client{
		client:  utils.NewHTTPClient(baseURL, timeout),
		tokens:  tokens,
		ids:     utils.NewUUIDGenerator(),
		handler: nopErrorHandler{},
		now:     time.Now,
		logger:  log,
	}
	c.client.
		SetHeader("Content-Type", "application/json").
		OnBeforeRequest(c.interceptRequest)

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// normalizeBasePath turns "api", "/api/" and "/api" into "/api"; "" and "/"
// become "".
func normalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

// BaseURL returns the resolved base URL every path is relative to.
func (c *Client) BaseURL() string {
	return c.client.BaseURL
}

// SetErrorHandler installs the handler run on every failed call. A nil h
// disables effects.
func (c *Client) SetErrorHandler(h ErrorHandler) {
	if h == nil {
		h = nopErrorHandler{}
	}
	c.handlerMu.Lock()
	c.handler = h
	c.handlerMu.Unlock()
}

func (c *Client) errorHandler() ErrorHandler {
	c.handlerMu.RLock()
	defer c.handlerMu.RUnlock()
	return c.handler
}

// RequestOption customises a single call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	query   url.Values
	params  any
	form    *Form
	headers map[string]string
	silent  bool
}

func (o *requestOptions) handler(c *Client) ErrorHandler {
	if o.silent {
		return nopErrorHandler{}
	}
	return c.errorHandler()
}

// WithQuery merges q into the request query string.
func WithQuery(q url.Values) RequestOption {
	return func(o *requestOptions) {
		if o.query == nil {
			o.query = url.Values{}
		}
		for k, vs := range q {
			for _, v := range vs {
				o.query.Add(k, v)
			}
		}
	}
}

// WithParams encodes a struct with `url` tags into the query string.
func WithParams(params any) RequestOption {
	return func(o *requestOptions) {
		o.params = params
	}
}

// WithMultipart sends form as multipart/form-data instead of a JSON payload.
func WithMultipart(form *Form) RequestOption {
	return func(o *requestOptions) {
		o.form = form
	}
}

// WithHeader sets a request header.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithoutErrorHandler keeps the installed [ErrorHandler] out of this call.
// The error is still returned and logged; use it for best-effort calls
// whose failure must not reach the user.
func WithoutErrorHandler() RequestOption {
	return func(o *requestOptions) {
		o.silent = true
	}
}

// Do performs method on path, relative to the base URL. payload, when
// non-nil, is sent as the JSON body; out, when non-nil, receives the decoded
// JSON response payload.
//
// Failed calls return an [*APIError] after the installed [ErrorHandler] has
// run. Calls cancelled by the caller's context are returned without running
// the handler.
func (c *Client) Do(ctx context.Context, method, path string, payload, out any, opts ...RequestOption) error {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	req := c.client.R().SetContext(ctx)

	if o.params != nil {
		values, err := query.Values(o.params)
		if err != nil {
			return fmt.Errorf("error encoding query params: %w", err)
		}
		req.SetQueryParamsFromValues(values)
	}
	if len(o.query) > 0 {
		req.SetQueryParamsFromValues(o.query)
	}
	for k, v := range o.headers {
		req.SetHeader(k, v)
	}

	switch {
	case o.form != nil:
		o.form.apply(req)
	case payload != nil:
		req.SetBody(payload)
	}

	start := c.now()
	resp, err := req.Execute(method, path)
	requestID := req.Header.Get(RequestIDHeader)

	if err != nil {
		apiErr := &APIError{
			Kind:      KindNetwork,
			Method:    method,
			Path:      path,
			RequestID: requestID,
			Err:       err,
		}
		c.logger.Warn().Err(err).
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Dur("duration", c.now().Sub(start)).
			Msg("request failed without response")

		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return apiErr
		}
		o.handler(c).HandleError(ctx, apiErr)
		return apiErr
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Str("request_id", requestID).
		Dur("duration", c.now().Sub(start)).
		Msg("request completed")

	if !isSuccess(resp.StatusCode()) {
		body := resp.Body()
		apiErr := &APIError{
			Kind:      Classify(resp.StatusCode()),
			Status:    resp.StatusCode(),
			Message:   errorMessage(body),
			Body:      body,
			Method:    method,
			Path:      path,
			RequestID: requestID,
		}
		c.logger.Warn().
			Str("method", method).
			Str("path", path).
			Int("status", apiErr.Status).
			Str("kind", apiErr.Kind.String()).
			Str("request_id", requestID).
			Msg("request failed")

		o.handler(c).HandleError(ctx, apiErr)
		return apiErr
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}
	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrDecodeResponse, method, path, err)
	}

	return nil
}

// Get is Do with GET and no payload.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post is Do with POST.
func (c *Client) Post(ctx context.Context, path string, payload, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPost, path, payload, out, opts...)
}

// Put is Do with PUT.
func (c *Client) Put(ctx context.Context, path string, payload, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodPut, path, payload, out, opts...)
}

// Delete is Do with DELETE.
func (c *Client) Delete(ctx context.Context, path string, payload, out any, opts ...RequestOption) error {
	return c.Do(ctx, http.MethodDelete, path, payload, out, opts...)
}

// interceptRequest runs before resty's own middlewares. It never fails the
// request: a token read error is logged and the call proceeds without
// Authorization.
func (c *Client) interceptRequest(_ *resty.Client, req *resty.Request) error {
	ctx := req.Context()

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Msg("error reading access token, sending request without it")
		}
		if token = strings.TrimSpace(token); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}

	if req.Method == http.MethodGet {
		req.SetQueryParam(CacheBustParam, strconv.FormatInt(c.nextStamp(), 10))
	}

	if req.Header.Get(RequestIDHeader) == "" {
		req.SetHeader(RequestIDHeader, c.ids.Generate())
	}

	return nil
}

// nextStamp returns the current unix time in milliseconds, bumped so that
// every value handed out by this client is strictly greater than the
// previous one.
func (c *Client) nextStamp() int64 {
	now := c.now().UnixMilli()
	for {
		last := c.lastStamp.Load()
		next := now
		if next <= last {
			next = last + 1
		}
		if c.lastStamp.CompareAndSwap(last, next) {
			return next
		}
	}
}
