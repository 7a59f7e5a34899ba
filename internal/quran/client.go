// Package quran is a read-only client for the alquran.cloud scripture API.
//
// It validates surah, page, juz and ayah references locally, fetches text,
// translations and recitations, pairs a source edition with a translation,
// and builds recitation audio URLs. The client holds no mutable state and is
// safe for concurrent use.
package quran

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultBaseURL   = "https://api.alquran.cloud/v1"
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "maktab-quran/1.0"

	// a full juz in one edition is well under this
	maxResponseSize = 32 << 20
)

// Client talks to the remote scripture API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	editions   Editions
	logger     *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another deployment of the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// WithEditions sets the editions used when a call passes an empty edition.
// Blank fields keep their defaults.
func WithEditions(editions Editions) Option {
	return func(c *Client) {
		c.editions = editions.withDefaults()
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new client. Without options it talks to the public
// alquran.cloud API with DefaultEditions.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		editions:  DefaultEditions(),
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	return c
}

// Editions returns the default editions of the client.
func (c *Client) Editions() Editions {
	return c.editions
}

func (c *Client) sourceOr(edition string) string {
	if edition == "" {
		return c.editions.Source
	}
	return edition
}

func (c *Client) translationOr(edition string) string {
	if edition == "" {
		return c.editions.Translation
	}
	return edition
}

func (c *Client) reciterOr(reciter string) string {
	if reciter == "" {
		return c.editions.Reciter
	}
	return reciter
}

// envelope wraps every payload of the remote service.
type envelope struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// get fetches path and decodes the envelope data into T.
func get[T any](ctx context.Context, c *Client, segments ...string) (T, error) {
	var out T

	path := buildPath(segments...)
	data, err := c.fetch(ctx, path)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(data, &out); err != nil {
		c.logger.Warn("quran api payload decode failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return out, &MalformedResponseError{Path: path, Err: err}
	}

	return out, nil
}

// fetch performs a GET request and returns the envelope data of a
// successful response.
func (c *Client) fetch(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("quran api request", zap.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("quran api request failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &RemoteError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &RemoteError{
			Path:       path,
			HTTPStatus: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Err:        err,
		}
	}

	var env envelope
	decodeErr := json.Unmarshal(body, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		remoteErr := &RemoteError{
			Path:       path,
			HTTPStatus: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
		}
		if decodeErr == nil {
			remoteErr.Code = env.Code
			if env.Status != "" {
				remoteErr.Status = env.Status
			}
			remoteErr.Detail = messageOf(env.Data)
		}
		c.logRemoteError(remoteErr)
		return nil, remoteErr
	}

	if decodeErr != nil {
		c.logger.Warn("quran api envelope decode failed",
			zap.String("path", path),
			zap.Error(decodeErr),
		)
		return nil, &MalformedResponseError{Path: path, Err: decodeErr}
	}

	if env.Code != http.StatusOK {
		remoteErr := &RemoteError{
			Path:       path,
			HTTPStatus: resp.StatusCode,
			Code:       env.Code,
			Status:     env.Status,
			Detail:     messageOf(env.Data),
		}
		c.logRemoteError(remoteErr)
		return nil, remoteErr
	}

	if len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		return nil, &MalformedResponseError{Path: path, Err: errors.New("envelope has no data")}
	}

	return env.Data, nil
}

func (c *Client) logRemoteError(err *RemoteError) {
	c.logger.Warn("quran api returned an error",
		zap.String("path", err.Path),
		zap.Int("http_status", err.HTTPStatus),
		zap.Int("code", err.Code),
		zap.String("status", err.Status),
	)
}

// messageOf returns the data field when the service put an error message
// there instead of a payload.
func messageOf(data json.RawMessage) string {
	var msg string
	if err := json.Unmarshal(data, &msg); err != nil {
		return ""
	}
	return msg
}

func buildPath(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
