// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/course-search/internal/catalog"
	"github.com/pdiddy/course-search/internal/retrieval"
	"github.com/pdiddy/course-search/internal/search"
	"github.com/pdiddy/course-search/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the course-search HTTP API",
	Long: `Serve runs the search API: POST /api/search takes a free-text query and
returns relevance-ordered course records enriched from the class-roster API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		if cfg.Retrieval.APIKey == "" {
			return fmt.Errorf("no retrieval credential: set retrieval.api_key or .secrets/openai-api-key")
		}
		if cfg.Retrieval.FileID == "" {
			return fmt.Errorf("no document index: set retrieval.file_id")
		}

		logger := newLogger(cfg.LogLevel)
		httpClient := &http.Client{Timeout: cfg.Retrieval.Timeout}

		pipeline := &search.Pipeline{
			Retrieval: &retrieval.Client{HTTP: httpClient, Config: cfg.Retrieval},
			Catalog:   &catalog.Client{HTTP: httpClient, Config: cfg.Catalog},
			Log:       logger,
		}
		srv := server.New(cfg.Server, pipeline, logger)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().Int("port", 5000, "listen port")
	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
}
