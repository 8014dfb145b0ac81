// Command define is an interactive terminal client for the dictionary proxy.
//
// Type a word to look it up, ":N" to follow the N-th numbered link, ":say"
// to hear the headword (needs espeak, say or spd-say on PATH) and ":q" to
// quit. Started without a word it shows a random one.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/torque-dictionary/internal/adapter/wordapi"
	"github.com/heartmarshall/torque-dictionary/internal/view"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		apiURL  string
		timeout time.Duration
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "define [word]",
		Short: "Look up English words through the Torque Dictionary proxy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			nav := view.NewQueryNavigator("")
			if len(args) == 1 {
				nav.SetWord(strings.TrimSpace(args[0]))
			}

			opts := []view.Option{view.WithLogger(logger)}
			if sp, ok := findSpeaker(); ok {
				opts = append(opts, view.WithSpeaker(sp))
			}

			client := wordapi.NewClient(apiURL, timeout, logger)
			ctrl := view.NewController(nav, client, opts...)

			return newSession(ctrl, cmd.OutOrStdout()).run(ctx, cmd.InOrStdin())
		},
		SilenceUsage: true,
	}

	defaultURL := os.Getenv("TORQUE_API_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}

	cmd.Flags().StringVar(&apiURL, "api", defaultURL, "base URL of the dictionary proxy (env TORQUE_API_URL)")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "per-request timeout")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log requests to stderr")

	return cmd
}
