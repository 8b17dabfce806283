// Command espnfixture serves canned ESPN site API responses for local
// development, so the scoreboard can run without network access:
//
//	espnfixture --addr 127.0.0.1:8090
//	sportsterminal --api http://127.0.0.1:8090
//
// HTTP API
//
//	GET /{sport}/{league}/scoreboard[?dates=YYYYMMDD-YYYYMMDD]
//	    The canned scoreboard (one final, one live and one scheduled game).
//
//	GET /{sport}/{league}/summary?event={id}
//	    The canned game summary.
//
// Every league of the catalog answers with the same data; other paths are
// 404. Each request is written to the access log on stderr.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sportsterminal/internal/espn/fixtures"
	"sportsterminal/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var addr, level string
	cmd := &cobra.Command{
		Use:          "espnfixture",
		Short:        "Serve canned ESPN API responses",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logging.ParseLevel(level)
			if err != nil {
				return err
			}
			log := logging.NewWriter(os.Stderr, lvl, false)
			return serve(cmd.Context(), addr, log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8090", "listen address")
	cmd.Flags().StringVar(&level, "log-level", "info", "log level")
	return cmd
}

func serve(ctx context.Context, addr string, log zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           fixtures.NewRouter(log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("espnfixture listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
