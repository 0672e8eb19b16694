// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/pdiddy/course-search/internal/catalog"
	"github.com/pdiddy/course-search/internal/corpus"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Build and export the retrieval corpus",
	Long: `Corpus manages the text corpus the retrieval service indexes. Build scrapes
every subject of the configured roster into a local snapshot database; export
renders the snapshot into courses.jsonl, one text document per course.`,
}

var corpusBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Scrape the roster into the snapshot database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		logger := newLogger(cfg.LogLevel)

		store, err := corpus.OpenStore(cfg.Corpus.Dir)
		if err != nil {
			return err
		}
		defer store.Close()

		builder := &corpus.Builder{
			Catalog: &catalog.Client{
				HTTP:       &http.Client{Timeout: cfg.Catalog.Timeout},
				Config:     cfg.Catalog,
				RetryOn429: true,
			},
			Store: store,
			Log:   logger,
		}

		summary, err := builder.Build(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Scraped %s roster: %s\n", cfg.Catalog.Roster, summary)
		return nil
	},
}

var corpusExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the snapshot into the JSONL corpus file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		store, err := corpus.OpenStore(cfg.Corpus.Dir)
		if err != nil {
			return err
		}
		defer store.Close()

		manifest, err := corpus.Export(cmd.Context(), store, cfg.Corpus.Dir, cfg.Catalog.Roster)
		if err != nil {
			return err
		}
		fmt.Printf("Exported %d courses to %s\n", manifest.Courses, manifest.Output)
		return nil
	},
}

func init() {
	corpusCmd.AddCommand(corpusBuildCmd)
	corpusCmd.AddCommand(corpusExportCmd)
	rootCmd.AddCommand(corpusCmd)
}
