// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/pdiddy/course-search/pkg/types"
)

func init() {
	viper.SetDefault("server.port", 5000)
	viper.SetDefault("retrieval.engine", "babbage")
	viper.SetDefault("retrieval.max_rerank", 20)
	viper.SetDefault("catalog.roster", "FA21")
	viper.SetDefault("http.timeout", 30*time.Second)
	viper.SetDefault("http.user_agent", "course-search/"+version)
	viper.SetDefault("corpus.dir", "corpus")
	viper.SetDefault("log.level", "info")
}

// loadConfig assembles the process-wide configuration from the config file,
// environment, and secrets. It is read once at startup and treated as
// immutable afterwards.
func loadConfig() types.Config {
	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}
	return types.Config{
		Server: types.ServerConfig{
			Port:           viper.GetInt("server.port"),
			AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
		},
		Retrieval: types.RetrievalConfig{
			HTTPConfig: httpCfg,
			Engine:     viper.GetString("retrieval.engine"),
			FileID:     viper.GetString("retrieval.file_id"),
			APIKey:     secretDefault("openai-api-key", viper.GetString("retrieval.api_key")),
			MaxRerank:  viper.GetInt("retrieval.max_rerank"),
		},
		Catalog: types.CatalogConfig{
			HTTPConfig: httpCfg,
			Roster:     viper.GetString("catalog.roster"),
		},
		Corpus: types.CorpusConfig{
			Dir: viper.GetString("corpus.dir"),
		},
		LogLevel: viper.GetString("log.level"),
	}
}

// newLogger builds the process logger at the configured level.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}
