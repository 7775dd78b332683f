package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Rorical/RoriLingo/internal/llm"
	"github.com/Rorical/RoriLingo/internal/server"
)

var serveFlags struct {
	addr      string
	cacheSize int
	rpm       int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the translation endpoint backed by the active profile's LLM",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()
		if !cfg.IsValid() {
			log.Fatalf("Profile '%s' has no API key; run `rorilingo profile edit` or set RORILINGO_API_KEY", cfg.ActiveProfile)
		}

		logger := log.New(os.Stderr, "rorilingo ", log.LstdFlags)
		srv := server.New(server.Options{
			Backend:           llm.NewTranslator(cfg.GetAPIKey(), cfg.GetBaseURL(), cfg.GetModel()),
			MaxInputChars:     cfg.Settings.MaxInputChars,
			CacheSize:         serveFlags.cacheSize,
			Logger:            logger,
			RequestsPerMinute: serveFlags.rpm,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Printf("using model %s", cfg.GetModel())
		if err := srv.ListenAndServe(ctx, serveFlags.addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", ":5000", "listen address")
	serveCmd.Flags().IntVar(&serveFlags.cacheSize, "cache-size", server.DefaultCacheSize, "translation cache entries")
	serveCmd.Flags().IntVar(&serveFlags.rpm, "rate", 60, "requests per minute per client, 0 disables")
	rootCmd.AddCommand(serveCmd)
}
