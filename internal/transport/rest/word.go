package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/torque-dictionary/internal/domain"
	"github.com/heartmarshall/torque-dictionary/internal/service/lookup"
	"github.com/heartmarshall/torque-dictionary/pkg/ctxutil"
)

// lookupService defines the minimal interface needed by WordHandler.
type lookupService interface {
	Lookup(ctx context.Context, word string) (*lookup.Result, error)
	Random(ctx context.Context) (*lookup.Result, error)
}

// WordHandler serves the word lookup proxy endpoints.
type WordHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc lookupService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

// Word handles GET /api/word?w=<word>.
// Known words and unknown words both answer 200 with a WordEntry; only an
// upstream failure answers 500.
func (h *WordHandler) Word(w http.ResponseWriter, r *http.Request) {
	word := r.URL.Query().Get("w")
	if strings.TrimSpace(word) == "" {
		writeError(w, http.StatusBadRequest, msgMissingWord)
		return
	}

	res, err := h.svc.Lookup(r.Context(), word)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log.DebugContext(r.Context(), "lookup served",
		slog.String("word", word),
		slog.String("status", res.Status.String()),
	)
	writeJSON(w, http.StatusOK, res.Entry)
}

// Random handles GET /api/random.
func (h *WordHandler) Random(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Random(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log.DebugContext(r.Context(), "random served",
		slog.String("word", res.Entry.Word),
		slog.String("status", res.Status.String()),
	)
	writeJSON(w, http.StatusOK, res.Entry)
}

func (h *WordHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, msgMissingWord)
	case errors.Is(err, domain.ErrUpstream):
		// The cause is already logged by the service; keep the correlation id.
		h.log.WarnContext(r.Context(), "upstream failure",
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, msgGeneric)
	default:
		h.log.ErrorContext(r.Context(), "internal error",
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, msgGeneric)
	}
}
