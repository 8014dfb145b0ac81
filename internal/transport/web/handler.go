// Package web serves the server-rendered dictionary page.
package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/torque-dictionary/internal/domain"
	"github.com/heartmarshall/torque-dictionary/internal/service/lookup"
	"github.com/heartmarshall/torque-dictionary/internal/view"
	"github.com/heartmarshall/torque-dictionary/pkg/ctxutil"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// searchField is the form field carrying the search term.
const searchField = "q"

// lookupService defines the minimal interface needed by Handler.
type lookupService interface {
	Lookup(ctx context.Context, word string) (*lookup.Result, error)
	Random(ctx context.Context) (*lookup.Result, error)
}

// Handler renders the word page.
type Handler struct {
	svc lookupService
	log *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(svc lookupService, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, log: logger.With("handler", "web")}
}

type pageData struct {
	Page              view.Page
	Utterance         view.Utterance
	LoadingText       string
	NoDefinitionsText string
}

// Page handles GET /. The word comes from the "w" query parameter;
// without it a random word is shown.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	nav := view.NewQueryNavigator(r.URL.RawQuery)
	ctrl := view.NewController(nav, serviceFetcher{svc: h.svc}, view.WithLogger(h.log))
	ctrl.Sync(r.Context())

	snap := ctrl.Snapshot()
	h.log.DebugContext(r.Context(), "page rendered",
		slog.String("target", snap.Target),
		slog.String("outcome", snap.Outcome.String()),
		slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
	)

	// The pronounce button is always emitted; the page script reveals it
	// only when the browser has speech synthesis.
	data := pageData{
		Page:              view.BuildPage(snap, true),
		Utterance:         view.NewUtterance(snap.Entry.Word),
		LoadingText:       view.LoadingText,
		NoDefinitionsText: view.NoDefinitionsText,
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		h.log.ErrorContext(r.Context(), "render page",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes()) //nolint:errcheck
}

// Search handles POST /search. A non-empty term redirects to its page;
// a blank term answers 204 so the browser keeps the current page.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	term, ok := view.NormalizeSearch(r.PostForm.Get(searchField))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	http.Redirect(w, r, view.WordHref(term), http.StatusSeeOther)
}

// serviceFetcher adapts the lookup service to view.Fetcher.
type serviceFetcher struct {
	svc lookupService
}

func (f serviceFetcher) FetchWord(ctx context.Context, word string) (domain.WordEntry, error) {
	res, err := f.svc.Lookup(ctx, word)
	if err != nil {
		return domain.WordEntry{}, err
	}
	return res.Entry, nil
}

func (f serviceFetcher) FetchRandom(ctx context.Context) (domain.WordEntry, error) {
	res, err := f.svc.Random(ctx)
	if err != nil {
		return domain.WordEntry{}, err
	}
	return res.Entry, nil
}
