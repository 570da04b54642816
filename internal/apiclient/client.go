// Package apiclient is the portal's REST client for the exam backend.
//
// Every request passes through one request interceptor (an Authorizer that
// attaches a bearer token) and one response interceptor (HTTP 401 clears the
// rejected credential and triggers a reload to the login page). Resource
// wrappers are thin: one backend call each, errors returned unchanged.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/exam-portal/internal/config"
	"github.com/spec-kit/exam-portal/internal/domain"
)

const maxErrorBody = 4 << 10

// Authorizer decorates an outgoing request, typically with a bearer token.
type Authorizer func(ctx context.Context, req *http.Request)

// UnauthorizedHandler runs when the backend answers 401. token is the bearer
// token the rejected request carried, empty if it had none.
type UnauthorizedHandler func(ctx context.Context, token string)

// Client talks to the backend's API root.
type Client struct {
	baseURL        string
	http           *http.Client
	authorize      Authorizer
	onUnauthorized UnauthorizedHandler
	logger         *zap.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithAuthorizer sets the request interceptor.
func WithAuthorizer(a Authorizer) Option {
	return func(c *Client) { c.authorize = a }
}

// WithUnauthorizedHandler sets the 401 response interceptor.
func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(c *Client) { c.onUnauthorized = h }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// New builds a client for cfg's API base URL.
func New(cfg config.BackendConfig, opts ...Option) *Client {
	c := &Client{
		baseURL: cfg.APIBaseURL(),
		http:    &http.Client{Timeout: cfg.Timeout()},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root requests are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.authorize != nil {
		c.authorize(ctx, req)
	}
	return req, nil
}

// send performs the request and applies the response interceptor. The
// caller owns the returned body on success.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("backend request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	c.logger.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	defer resp.Body.Close()
	apiErr := decodeError(resp)
	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil && !skipsRejection(ctx) {
		c.onUnauthorized(ctx, bearerToken(req))
	}
	return nil, apiErr
}

func bearerToken(req *http.Request) string {
	token, ok := strings.CutPrefix(req.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func decodeError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := &APIError{Status: resp.StatusCode, Body: raw}

	var env struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &env); err == nil {
		apiErr.Code = env.Code
		apiErr.Message = env.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(http.StatusText(resp.StatusCode))
	}
	return apiErr
}

// call performs a JSON request and unwraps the backend envelope.
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var zero T

	resp, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return zero, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, fmt.Errorf("%s %s: read body: %w", method, path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return zero, nil
	}

	var env domain.Envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, fmt.Errorf("%s %s: decode envelope: %w", method, path, err)
	}
	if env.Code != 0 && env.Code != domain.CodeOK {
		return zero, &APIError{Status: resp.StatusCode, Code: env.Code, Message: env.Message, Body: raw}
	}
	return env.Data, nil
}

type skipRejectionKey struct{}

// withoutRejection marks ctx so a 401 is returned without running the
// unauthorized handler. Login attempts use it: a wrong password is not a
// rejected session.
func withoutRejection(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipRejectionKey{}, true)
}

func skipsRejection(ctx context.Context) bool {
	skip, _ := ctx.Value(skipRejectionKey{}).(bool)
	return skip
}

// Download is a binary payload such as an exported spreadsheet.
type Download struct {
	ContentType string
	Filename    string
	Data        []byte
}

func (c *Client) download(ctx context.Context, path string, query url.Values) (*Download, error) {
	resp, err := c.send(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("GET %s: read body: %w", path, err)
	}
	return &Download{
		ContentType: resp.Header.Get("Content-Type"),
		Filename:    filenameFrom(resp.Header.Get("Content-Disposition")),
		Data:        data,
	}, nil
}

func filenameFrom(disposition string) string {
	for _, part := range strings.Split(disposition, ";") {
		part = strings.TrimSpace(part)
		if name, ok := strings.CutPrefix(part, "filename="); ok {
			return strings.Trim(name, `"`)
		}
	}
	return ""
}

func pageQuery(q domain.PageQuery) url.Values {
	v := url.Values{}
	v.Set("page", fmt.Sprint(max(q.Page, 0)))
	size := q.Size
	if size <= 0 {
		size = 10
	}
	v.Set("size", fmt.Sprint(size))
	if q.SortBy != "" {
		v.Set("sortBy", q.SortBy)
	}
	if q.SortDir != "" {
		v.Set("sortDir", q.SortDir)
	}
	return v
}
