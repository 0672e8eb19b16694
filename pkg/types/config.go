package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "course-search/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RetrievalConfig holds settings for the semantic retrieval service.
type RetrievalConfig struct {
	HTTPConfig `yaml:",inline"`

	// Engine is the retrieval engine identifier (default "babbage").
	Engine string `json:"engine" yaml:"engine"`

	// FileID references the pre-built document index the service searches.
	FileID string `json:"file_id" yaml:"file_id"`

	// APIKey is the bearer credential for the retrieval service.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRerank bounds the candidate count the service reranks (default 20).
	MaxRerank int `json:"max_rerank" yaml:"max_rerank"`
}

// CatalogConfig holds settings for the class-roster service.
type CatalogConfig struct {
	HTTPConfig `yaml:",inline"`

	// Roster is the academic term identifier (e.g. "FA21"). One roster per
	// deployment; the live pipeline never crosses terms.
	Roster string `json:"roster" yaml:"roster"`
}

// ServerConfig holds settings for the inbound HTTP API.
type ServerConfig struct {
	// Port is the listen port (default 5000).
	Port int `json:"port" yaml:"port"`

	// AllowedOrigins lists origins granted CORS access. Empty allows any
	// origin.
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins"`
}

// CorpusConfig holds settings for the offline corpus builder.
type CorpusConfig struct {
	// Dir is the directory holding the roster snapshot database and the
	// exported corpus file (default "corpus").
	Dir string `json:"dir" yaml:"dir"`
}

// Config groups all component configurations. Loaded once at startup and
// immutable afterwards.
type Config struct {
	Server    ServerConfig    `json:"server" yaml:"server"`
	Retrieval RetrievalConfig `json:"retrieval" yaml:"retrieval"`
	Catalog   CatalogConfig   `json:"catalog" yaml:"catalog"`
	Corpus    CorpusConfig    `json:"corpus" yaml:"corpus"`

	// LogLevel selects the logging verbosity: debug, info, warn, or error.
	LogLevel string `json:"log_level" yaml:"log_level"`
}
