package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/crewdeck/crewdeck/internal/credentials"
)

// Client issues authenticated requests against the Crewdeck REST backend.
// Every call attaches the current bearer token and, on a 401 response,
// performs exactly one refresh-and-retry cycle before surfacing failure.
// Concurrent refreshes triggered by parallel 401s are coalesced into one.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *credentials.TokenStore
	refresh singleflight.Group
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// New builds a Client for the API rooted at baseURL (including the /api
// prefix), reading and persisting credentials through tokens.
func New(baseURL string, tokens *credentials.TokenStore, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// attemptState makes the single-retry bound structural: a request in the
// retried state can never trigger another refresh.
type attemptState int

const (
	firstAttempt attemptState = iota
	retried
)

func (c *Client) url(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// doJSON performs a JSON call. body may be nil for bodyless requests and
// out may be nil when no payload is expected.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
	}

	build := func() (*http.Request, error) {
		var rd io.Reader = http.NoBody
		if payload != nil {
			rd = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.url(path, query), rd)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return req, nil
	}

	return c.send(ctx, build, out, firstAttempt)
}

// doUpload performs a multipart/form-data POST with a file field and an
// optional parent_id field. The upload content is buffered so the request
// can be rebuilt for the single refresh retry.
func (c *Client) doUpload(ctx context.Context, path, fileName string, content []byte, parentID string, out any) error {
	build := func() (*http.Request, error) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)

		part, err := w.CreateFormFile("file", fileName)
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(content); err != nil {
			return nil, err
		}
		if parentID != "" {
			if err := w.WriteField("parent_id", parentID); err != nil {
				return nil, err
			}
		}
		if err := w.Close(); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path, nil), &buf)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", w.FormDataContentType())
		return req, nil
	}

	return c.send(ctx, build, out, firstAttempt)
}

func (c *Client) send(ctx context.Context, build func() (*http.Request, error), out any, attempt attemptState) error {
	req, err := build()
	if err != nil {
		return err
	}
	if tok := c.tokens.AccessToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		_, _ = io.Copy(io.Discard, resp.Body)
		if attempt == retried {
			return ErrUnauthorized
		}
		tok, err := c.refreshAccessToken(ctx)
		if err != nil {
			return err
		}
		if tok == "" {
			return ErrUnauthorized
		}
		return c.send(ctx, build, out, retried)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError extracts the backend's error field, tolerating absent or
// non-JSON bodies.
func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return newAPIError(resp.StatusCode, body.Error)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// refreshAccessToken runs the refresh protocol, coalescing concurrent
// callers into a single backend call. It returns the new access token,
// "" when re-authentication is required, or an error for storage or
// transport failures.
func (c *Client) refreshAccessToken(ctx context.Context) (string, error) {
	v, err, _ := c.refresh.Do("refresh", func() (any, error) {
		return c.exchangeRefreshToken(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) exchangeRefreshToken(ctx context.Context) (string, error) {
	refreshToken, err := c.tokens.RefreshToken(ctx)
	if err != nil {
		return "", err
	}
	if refreshToken == "" {
		return "", nil
	}

	payload, err := json.Marshal(refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return "", fmt.Errorf("marshal refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url("/auth/refresh", nil), bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("refresh request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		// the refresh token is stale: wipe it so the next user action
		// forces a full re-authentication
		if err := c.tokens.SetAccessToken(ctx, ""); err != nil {
			return "", err
		}
		if err := c.tokens.SetRefreshToken(ctx, ""); err != nil {
			return "", err
		}
		return "", nil
	}

	var body refreshResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}

	if err := c.tokens.SetTokenPair(ctx, body.AccessToken, body.RefreshToken); err != nil {
		return "", err
	}
	return body.AccessToken, nil
}
