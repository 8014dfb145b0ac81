package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/torque-dictionary/internal/adapter/provider/freedict"
	"github.com/heartmarshall/torque-dictionary/internal/adapter/wordlist"
	"github.com/heartmarshall/torque-dictionary/internal/config"
	"github.com/heartmarshall/torque-dictionary/internal/service/lookup"
	"github.com/heartmarshall/torque-dictionary/internal/transport/middleware"
	"github.com/heartmarshall/torque-dictionary/internal/transport/rest"
	"github.com/heartmarshall/torque-dictionary/internal/transport/web"
)

// Run is the application entry point. It loads configuration, builds the
// HTTP handler and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("addr", cfg.Server.Addr()),
		slog.String("dictionary", cfg.Dictionary.BaseURL),
	)

	handler, err := NewHandler(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return Serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// NewHandler wires adapters, services and transports into the root handler.
//
// Routes:
//
//	GET  /api/word?w=  lookup proxy (other methods: 405)
//	GET  /api/random   random word   (other methods: 405)
//	GET  /live /ready /health
//	GET  /             word page
//	POST /search       search form
func NewHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	words, err := wordlist.Load(cfg.Random.WordsPath)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	logger.Info("word list loaded", slog.Int("words", words.Len()))

	provider := freedict.NewProvider(cfg.Dictionary, logger)
	lookupSvc := lookup.NewService(logger, provider, words)

	wordHandler := rest.NewWordHandler(lookupSvc, logger)
	healthHandler := rest.NewHealthHandler(provider, BuildVersion(), cfg.Dictionary.HealthTimeout)
	pageHandler := web.NewHandler(lookupSvc, logger)

	getOnly := middleware.AllowMethods(http.MethodGet)

	mux := http.NewServeMux()
	mux.Handle("/api/word", getOnly(http.HandlerFunc(wordHandler.Word)))
	mux.Handle("/api/random", getOnly(http.HandlerFunc(wordHandler.Random)))

	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)

	mux.HandleFunc("GET /{$}", pageHandler.Page)
	mux.HandleFunc("POST /search", pageHandler.Search)

	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)

	return chain(mux), nil
}
