// Package wordapi is an HTTP client for the lookup proxy's own API.
package wordapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/torque-dictionary/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	maxBodySize    = 4 << 20
)

// Client fetches word entries from a running proxy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for the proxy at baseURL
// (for example "http://localhost:8080").
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "wordapi"),
	}
}

// FetchWord calls GET /api/word. An unknown word comes back as an entry
// without meanings. Any non-200 answer is an error matching
// domain.ErrUpstream.
func (c *Client) FetchWord(ctx context.Context, word string) (domain.WordEntry, error) {
	q := url.Values{"w": {word}}
	return c.get(ctx, "fetch word", "/api/word?"+q.Encode())
}

// FetchRandom calls GET /api/random.
func (c *Client) FetchRandom(ctx context.Context) (domain.WordEntry, error) {
	return c.get(ctx, "fetch random", "/api/random")
}

func (c *Client) get(ctx context.Context, op, path string) (domain.WordEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return domain.WordEntry{}, fmt.Errorf("wordapi: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WordEntry{}, &domain.UpstreamError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return domain.WordEntry{}, &domain.UpstreamError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Err string `json:"err"`
		}
		msg := http.StatusText(resp.StatusCode)
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Err != "" {
			msg = apiErr.Err
		}
		c.log.DebugContext(ctx, "proxy error",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
		)
		return domain.WordEntry{}, &domain.UpstreamError{
			Op:  op,
			Err: fmt.Errorf("status %d: %s", resp.StatusCode, msg),
		}
	}

	var entry domain.WordEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return domain.WordEntry{}, &domain.UpstreamError{Op: op, Err: fmt.Errorf("decode: %w", err)}
	}
	if entry.Word == "" && entry.Meanings == nil {
		return domain.WordEntry{}, &domain.UpstreamError{Op: op, Err: errors.New("decode: not a word entry")}
	}

	return entry.Normalized(), nil
}
