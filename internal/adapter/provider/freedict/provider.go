package freedict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/torque-dictionary/internal/config"
	"github.com/heartmarshall/torque-dictionary/internal/domain"
)

const (
	defaultBaseURL    = "https://api.dictionaryapi.dev/api/v2/entries/en"
	defaultTimeout    = 10 * time.Second
	defaultRetryDelay = 500 * time.Millisecond

	// maxBodySize guards against unbounded upstream responses.
	maxBodySize = 4 << 20
)

// Provider fetches dictionary data from the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider from the dictionary configuration.
func NewProvider(cfg config.DictionaryConfig, logger *slog.Logger) *Provider {
	p := &Provider{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryDelay: cfg.RetryDelay,
		log:        logger.With("adapter", "freedict"),
	}
	if p.baseURL == "" {
		p.baseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		p.httpClient.Timeout = defaultTimeout
	}
	return p
}

// NewProviderWithURL creates a Provider with a custom base URL and the
// default timeouts (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return NewProvider(config.DictionaryConfig{
		BaseURL:    baseURL,
		Timeout:    defaultTimeout,
		RetryDelay: defaultRetryDelay,
	}, logger)
}

// FetchEntry fetches the first dictionary entry for the given word.
// Returns nil, nil if the API reports that the word is unknown.
func (p *Provider) FetchEntry(ctx context.Context, word string) (*domain.WordEntry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.doWithRetry(ctx, req, word)
	if err != nil {
		p.log.ErrorContext(ctx, "freedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	entry, err := decodeEntry(body)
	if err != nil {
		return nil, err
	}

	if entry == nil {
		p.log.DebugContext(ctx, "freedict no definitions", slog.String("word", word))
		return nil, nil
	}

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("meanings", len(entry.Meanings)),
		slog.Int("phonetics", len(entry.Phonetics)),
	)

	return entry, nil
}

// Ping checks that the API host answers at all. Any status below 500 counts
// as reachable since the base path itself is not a valid lookup.
func (p *Provider) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.baseURL, nil)
	if err != nil {
		return fmt.Errorf("freedict: create ping request: %w", err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("freedict: ping: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("freedict: ping: status %d", resp.StatusCode)
	}
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "freedict retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	timer := time.NewTimer(p.retryDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return p.httpClient.Do(req)
}

// decodeEntry interprets a 200 body. An array yields its first entry; an
// empty array or the "No Definitions Found" object yields nil, nil. Any
// other shape is an error.
func decodeEntry(body []byte) (*domain.WordEntry, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("freedict: empty body")
	}

	switch trimmed[0] {
	case '[':
		var entries []apiEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("freedict: decode json: %w", err)
		}
		if len(entries) == 0 {
			return nil, nil
		}
		entry := mapAPIEntry(entries[0])
		return &entry, nil
	case '{':
		var msg apiMessage
		if err := json.Unmarshal(trimmed, &msg); err != nil {
			return nil, fmt.Errorf("freedict: decode json: %w", err)
		}
		if msg.Title == notFoundTitle {
			return nil, nil
		}
		return nil, fmt.Errorf("freedict: unexpected message %q", msg.Title)
	default:
		return nil, errors.New("freedict: decode json: body is neither an array nor an object")
	}
}

// mapAPIEntry copies an API entry field for field into a domain.WordEntry.
func mapAPIEntry(e apiEntry) domain.WordEntry {
	out := domain.WordEntry{
		Word:       e.Word,
		Phonetics:  make([]domain.Phonetic, 0, len(e.Phonetics)),
		Meanings:   make([]domain.Meaning, 0, len(e.Meanings)),
		SourceURLs: e.SourceURLs,
	}

	for _, ph := range e.Phonetics {
		out.Phonetics = append(out.Phonetics, domain.Phonetic{Text: ph.Text, Audio: ph.Audio})
	}

	for _, m := range e.Meanings {
		meaning := domain.Meaning{
			PartOfSpeech: m.PartOfSpeech,
			Definitions:  make([]domain.Definition, 0, len(m.Definitions)),
			Synonyms:     m.Synonyms,
			Antonyms:     m.Antonyms,
		}
		for _, d := range m.Definitions {
			meaning.Definitions = append(meaning.Definitions, domain.Definition{
				Definition: d.Definition,
				Example:    d.Example,
				Synonyms:   d.Synonyms,
				Antonyms:   d.Antonyms,
			})
		}
		out.Meanings = append(out.Meanings, meaning)
	}

	return out.Normalized()
}
