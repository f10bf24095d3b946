package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rudreshark/hangman-game-with-gui/internal/httpserver"
	"github.com/rudreshark/hangman-game-with-gui/internal/store"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON game API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := bootstrap(false)
			if err != nil {
				return err
			}
			defer cleanup()
			if port == "" {
				port = cfg.Port
			}
			if cfg.SessionSecret == "dev_secret_change_me" {
				log.Warn().Msg("SESSION_SECRET is the development default")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			src := newSource(cfg.Seed)
			bank, err := loadBank(ctx, cfg, src)
			if err != nil {
				return err
			}

			srv := httpserver.New(store.NewMemoryStore(), bank, httpserver.Options{
				Secret:       cfg.SessionSecret,
				TTL:          cfg.SessionTTL(),
				ClientOrigin: cfg.ClientOrigin,
				SecureCookie: strings.HasPrefix(cfg.ClientOrigin, "https://"),
				Source:       src,
				Logger:       &log.Logger,
			})
			hs := srv.NewHTTPServer(":" + port)

			errc := make(chan error, 1)
			go func() {
				log.Info().Str("port", port).Msg("starting hangman server")
				errc <- hs.ListenAndServe()
			}()

			select {
			case err := <-errc:
				if httpserver.IsClosed(err) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return hs.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	return cmd
}
