package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heartmarshall/torque-dictionary/internal/domain"
	"github.com/heartmarshall/torque-dictionary/internal/service/lookup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLookupService struct {
	LookupFunc func(ctx context.Context, word string) (*lookup.Result, error)
	RandomFunc func(ctx context.Context) (*lookup.Result, error)
}

func (m *mockLookupService) Lookup(ctx context.Context, word string) (*lookup.Result, error) {
	return m.LookupFunc(ctx, word)
}

func (m *mockLookupService) Random(ctx context.Context) (*lookup.Result, error) {
	return m.RandomFunc(ctx)
}

func newTestWordHandler(svc *mockLookupService) *WordHandler {
	return NewWordHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func runResult() *lookup.Result {
	return &lookup.Result{
		Status: lookup.StatusFound,
		Entry: domain.WordEntry{
			Word:      "run",
			Phonetics: []domain.Phonetic{{Text: "/rʌn/", Audio: "https://example.com/run.mp3"}},
			Meanings: []domain.Meaning{{
				PartOfSpeech: "verb",
				Definitions: []domain.Definition{{
					Definition: "To move swiftly.",
					Synonyms:   []string{"jog"},
					Antonyms:   []string{},
				}},
				Synonyms: []string{},
				Antonyms: []string{},
			}},
			SourceURLs: []string{"https://en.wiktionary.org/wiki/run"},
		},
	}
}

func TestWordHandler_Word_Found(t *testing.T) {
	t.Parallel()

	var got string
	h := newTestWordHandler(&mockLookupService{
		LookupFunc: func(_ context.Context, word string) (*lookup.Result, error) {
			got = word
			return runResult(), nil
		},
	})

	rec := httptest.NewRecorder()
	h.Word(rec, httptest.NewRequest(http.MethodGet, "/api/word?w=run", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "run", got)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"word": "run",
		"phonetics": [{"text": "/rʌn/", "audio": "https://example.com/run.mp3"}],
		"meanings": [{
			"partOfSpeech": "verb",
			"definitions": [{"definition": "To move swiftly.", "synonyms": ["jog"], "antonyms": []}],
			"synonyms": [],
			"antonyms": []
		}],
		"sourceUrls": ["https://en.wiktionary.org/wiki/run"]
	}`, rec.Body.String())
}

func TestWordHandler_Word_NotFound(t *testing.T) {
	t.Parallel()

	h := newTestWordHandler(&mockLookupService{
		LookupFunc: func(_ context.Context, word string) (*lookup.Result, error) {
			return &lookup.Result{Status: lookup.StatusNotFound, Entry: domain.NewEmptyEntry(word)}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Word(rec, httptest.NewRequest(http.MethodGet, "/api/word?w=qzxy", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"word":"qzxy","meanings":[],"phonetics":[],"sourceUrls":[]}`, rec.Body.String())
}

func TestWordHandler_Word_NotFoundKeepsRequestedWord(t *testing.T) {
	t.Parallel()

	var got string
	h := newTestWordHandler(&mockLookupService{
		LookupFunc: func(_ context.Context, word string) (*lookup.Result, error) {
			got = word
			return &lookup.Result{Status: lookup.StatusNotFound, Entry: domain.NewEmptyEntry(word)}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.Word(rec, httptest.NewRequest(http.MethodGet, "/api/word?w=%20run%20", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, " run ", got)
	assert.JSONEq(t, `{"word":" run ","meanings":[],"phonetics":[],"sourceUrls":[]}`, rec.Body.String())
}

func TestWordHandler_Word_UpstreamFailure(t *testing.T) {
	t.Parallel()

	h := newTestWordHandler(&mockLookupService{
		LookupFunc: func(_ context.Context, _ string) (*lookup.Result, error) {
			return nil, fmt.Errorf("lookup: %w", &domain.UpstreamError{Op: "fetch entry", Err: errors.New("dial tcp: secret-host refused")})
		},
	})

	rec := httptest.NewRecorder()
	h.Word(rec, httptest.NewRequest(http.MethodGet, "/api/word?w=run", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"err":"Something went wrong"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret-host")
}

func TestWordHandler_Word_UnexpectedError(t *testing.T) {
	t.Parallel()

	h := newTestWordHandler(&mockLookupService{
		LookupFunc: func(_ context.Context, _ string) (*lookup.Result, error) {
			return nil, errors.New("boom")
		},
	})

	rec := httptest.NewRecorder()
	h.Word(rec, httptest.NewRequest(http.MethodGet, "/api/word?w=run", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"err":"Something went wrong"}`, rec.Body.String())
}

func TestWordHandler_Word_MissingWord(t *testing.T) {
	t.Parallel()

	h := newTestWordHandler(&mockLookupService{
		LookupFunc: func(_ context.Context, _ string) (*lookup.Result, error) {
			t.Error("service must not be called without a word")
			return nil, nil
		},
	})

	for _, target := range []string{"/api/word", "/api/word?w=", "/api/word?w=%20%20"} {
		rec := httptest.NewRecorder()
		h.Word(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.JSONEq(t, `{"err":"Missing word"}`, rec.Body.String(), target)
	}
}

func TestWordHandler_Word_ValidationFromService(t *testing.T) {
	t.Parallel()

	h := newTestWordHandler(&mockLookupService{
		LookupFunc: func(_ context.Context, _ string) (*lookup.Result, error) {
			return nil, domain.NewValidationError("w", "required")
		},
	})

	rec := httptest.NewRecorder()
	h.Word(rec, httptest.NewRequest(http.MethodGet, "/api/word?w=x", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWordHandler_Random(t *testing.T) {
	t.Parallel()

	h := newTestWordHandler(&mockLookupService{
		RandomFunc: func(_ context.Context) (*lookup.Result, error) {
			return runResult(), nil
		},
	})

	rec := httptest.NewRecorder()
	h.Random(rec, httptest.NewRequest(http.MethodGet, "/api/random", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var entry domain.WordEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entry))
	assert.Equal(t, "run", entry.Word)
}

func TestWordHandler_Random_UpstreamFailure(t *testing.T) {
	t.Parallel()

	h := newTestWordHandler(&mockLookupService{
		RandomFunc: func(_ context.Context) (*lookup.Result, error) {
			return nil, &domain.UpstreamError{Op: "fetch entry", Err: context.DeadlineExceeded}
		},
	})

	rec := httptest.NewRecorder()
	h.Random(rec, httptest.NewRequest(http.MethodGet, "/api/random", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "Something went wrong"))
}
