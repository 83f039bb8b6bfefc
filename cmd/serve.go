// Package cmd — serve command.
// Starts the HTTP API so a host dashboard can post documents and browse
// the inferred navigation models.
package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gaurav-prasanna/deckparse/config"
	"github.com/gaurav-prasanna/deckparse/core/analyze"
	"github.com/gaurav-prasanna/deckparse/server"
	"github.com/spf13/cobra"
)

var (
	flagServePort   string
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&flagServePort, "port", "", "Listen port (overrides config)")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to YAML config file")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(flagServeConfig)
	if err != nil {
		return err
	}
	if flagServePort != "" {
		cfg.Port = flagServePort
	}

	analyzer := analyze.New(analyze.Config{
		Logger:               log,
		ExtraTocPatterns:     toPatterns(cfg.ExtraTocPatterns),
		ExtraSectionPatterns: toPatterns(cfg.ExtraSectionPatterns),
	})

	srv := server.NewServer(analyzer, server.NewStore(), log, cfg.MaxDocumentBytes)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting deckparse", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
