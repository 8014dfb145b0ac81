package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/torque-dictionary/internal/domain"
)

type dictionaryProvider interface {
	FetchEntry(ctx context.Context, word string) (*domain.WordEntry, error)
}

type wordSource interface {
	RandomWord() string
}

// Service resolves words against the dictionary provider. It holds no
// mutable state and is safe for concurrent use.
type Service struct {
	log   *slog.Logger
	dict  dictionaryProvider
	words wordSource
}

// NewService creates a new lookup service.
func NewService(logger *slog.Logger, dict dictionaryProvider, words wordSource) *Service {
	return &Service{
		log:   logger.With("service", "lookup"),
		dict:  dict,
		words: words,
	}
}

// Lookup fetches the first provider entry for word.
//
// An unknown word is not an error: it yields StatusNotFound and an empty
// entry carrying the requested word as given. Surrounding whitespace is
// trimmed only for the provider call. Provider failures are returned as
// errors matching domain.ErrUpstream; a blank word matches
// domain.ErrValidation.
func (s *Service) Lookup(ctx context.Context, requested string) (*Result, error) {
	word := strings.TrimSpace(requested)
	if word == "" {
		return nil, domain.NewValidationError("w", "required")
	}

	entry, err := s.dict.FetchEntry(ctx, word)
	if err != nil {
		s.log.ErrorContext(ctx, "dictionary provider error",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("lookup %q: %w", word, &domain.UpstreamError{Op: "fetch entry", Err: err})
	}

	if entry == nil {
		s.log.InfoContext(ctx, "word not found", slog.String("word", word))
		return &Result{Status: StatusNotFound, Entry: domain.NewEmptyEntry(requested)}, nil
	}

	return &Result{Status: StatusFound, Entry: entry.Normalized()}, nil
}

// Random looks up a word drawn from the configured word list.
func (s *Service) Random(ctx context.Context) (*Result, error) {
	word := s.words.RandomWord()
	s.log.DebugContext(ctx, "random word picked", slog.String("word", word))
	return s.Lookup(ctx, word)
}
