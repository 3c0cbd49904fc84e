package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newsinsight.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Filter FilterConfig `yaml:"filter" json:"filter" jsonschema:"description=Content filter rules"`

	Providers ProvidersConfig `yaml:"providers" json:"providers" jsonschema:"description=News provider configuration"`

	LLM LLMConfig `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for enrichment and legitimacy checks"`

	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Full-text extraction for truncated provider bodies"`

	Search SearchConfig `yaml:"search" json:"search" jsonschema:"description=Search and ranking cache configuration"`

	Retention struct {
		MaxAgeDays    int           `yaml:"max_age_days" json:"max_age_days" jsonschema:"default=30,description=Delete stored articles older than this many days"`
		SweepInterval time.Duration `yaml:"sweep_interval" json:"sweep_interval" jsonschema:"default=24h,description=How often the retention sweep runs"`
	} `yaml:"retention" json:"retention" jsonschema:"description=Retention sweep configuration"`

	Ingest struct {
		MaxWorkers   int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=4,description=Maximum concurrent article workers per ingestion run"`
		FetchTimeout time.Duration `yaml:"fetch_timeout" json:"fetch_timeout" jsonschema:"default=20s,description=Timeout per provider fetch"`
	} `yaml:"ingest" json:"ingest" jsonschema:"description=Ingestion pipeline configuration"`
}

// FilterConfig holds content filter thresholds and seed blacklist
type FilterConfig struct {
	MinWords   int             `yaml:"min_words" json:"min_words" jsonschema:"default=200,description=Minimum word count for a candidate"`
	MaxWords   int             `yaml:"max_words" json:"max_words" jsonschema:"default=10000,description=Maximum word count for a candidate"`
	MaxAgeDays int             `yaml:"max_age_days" json:"max_age_days" jsonschema:"default=2,description=Maximum candidate age in days"`
	Seed       []SeedBlacklist `yaml:"seed_blacklist" json:"seed_blacklist" jsonschema:"description=Blacklist entries loaded at startup"`
}

// SeedBlacklist is a blacklist entry loaded at startup
type SeedBlacklist struct {
	Kind   string `yaml:"kind" json:"kind" jsonschema:"enum=source,enum=keyword,description=Entry kind"`
	Value  string `yaml:"value" json:"value" jsonschema:"description=Case-insensitive match value"`
	Reason string `yaml:"reason" json:"reason" jsonschema:"description=Audit reason"`
}

// ProvidersConfig holds news provider settings
type ProvidersConfig struct {
	NewsAPI struct {
		Key      string `yaml:"key" json:"key" jsonschema:"description=NewsAPI key (can use environment variable)"`
		Endpoint string `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://newsapi.org/v2,description=NewsAPI base URL"`
		PageSize int    `yaml:"page_size" json:"page_size" jsonschema:"default=20,description=Articles per request"`
	} `yaml:"newsapi" json:"newsapi"`

	Guardian struct {
		Key      string `yaml:"key" json:"key" jsonschema:"description=Guardian API key (can use environment variable)"`
		Endpoint string `yaml:"endpoint" json:"endpoint" jsonschema:"default=https://content.guardianapis.com,description=Guardian base URL"`
		PageSize int    `yaml:"page_size" json:"page_size" jsonschema:"default=20,description=Articles per request"`
	} `yaml:"guardian" json:"guardian"`

	Feeds []FeedSource `yaml:"feeds" json:"feeds" jsonschema:"description=RSS/Atom feeds included in the provider pool"`

	Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=20s,description=Timeout per provider call"`
}

// FeedSource is a single RSS/Atom feed source
type FeedSource struct {
	Name string `yaml:"name" json:"name" jsonschema:"description=Source name used for blacklist matching"`
	URL  string `yaml:"url" json:"url" jsonschema:"description=Feed URL"`
}

// LLMConfig holds LLM configuration for enrichment and legitimacy checks
type LLMConfig struct {
	Endpoint    string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint"`
	APIKey      string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model       string        `yaml:"model" json:"model" jsonschema:"description=Model name (e.g. gpt-4o-mini or llama3)"`
	Temperature float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.2,description=Temperature for response generation"`
	MaxTokens   int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=600,description=Maximum tokens in response"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout"`
}

// ExtractionConfig holds full-text extraction settings
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Fetch full text when provider body is truncated"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per article"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum text length to consider valid"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=NewsInsight/1.0,description=User agent for HTTP requests"`
}

// SearchConfig holds search and ranking cache settings
type SearchConfig struct {
	CacheTTL     time.Duration `yaml:"cache_ttl" json:"cache_ttl" jsonschema:"default=60s,description=TTL for cached ranked result lists"`
	DefaultLimit int           `yaml:"default_limit" json:"default_limit" jsonschema:"default=6,description=Default result count"`
	MaxLimit     int           `yaml:"max_limit" json:"max_limit" jsonschema:"default=50,description=Maximum result count"`
	DefaultAge   int           `yaml:"default_age_days" json:"default_age_days" jsonschema:"default=30,description=Default age window in days"`
	Weights      RankWeights   `yaml:"weights" json:"weights" jsonschema:"description=Ranking weights"`
	ExplainTTL   time.Duration `yaml:"explain_ttl" json:"explain_ttl" jsonschema:"default=10m,description=TTL for cached explain responses"`
}

// RankWeights are the tunable components of the relevance score
type RankWeights struct {
	Recency       float64 `yaml:"recency" json:"recency" jsonschema:"default=1.0,description=Weight of the recency component"`
	Headline      float64 `yaml:"headline" json:"headline" jsonschema:"default=3.0,description=Weight of headline term matches"`
	Entity        float64 `yaml:"entity" json:"entity" jsonschema:"default=2.0,description=Weight of entity term matches"`
	Summary       float64 `yaml:"summary" json:"summary" jsonschema:"default=1.0,description=Weight of summary term matches"`
	EnrichedBonus float64 `yaml:"enriched_bonus" json:"enriched_bonus" jsonschema:"default=0.5,description=Bonus for fully enriched records"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	setDefaults(&cfg)

	// validate configuration, fatal at startup only
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// setDefaults fills zero values with defaults
func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:newsinsight.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.Filter.MinWords == 0 {
		cfg.Filter.MinWords = 200
	}
	if cfg.Filter.MaxWords == 0 {
		cfg.Filter.MaxWords = 10000
	}
	if cfg.Filter.MaxAgeDays == 0 {
		cfg.Filter.MaxAgeDays = 2
	}

	if cfg.Providers.NewsAPI.Endpoint == "" {
		cfg.Providers.NewsAPI.Endpoint = "https://newsapi.org/v2"
	}
	if cfg.Providers.NewsAPI.PageSize == 0 {
		cfg.Providers.NewsAPI.PageSize = 20
	}
	if cfg.Providers.Guardian.Endpoint == "" {
		cfg.Providers.Guardian.Endpoint = "https://content.guardianapis.com"
	}
	if cfg.Providers.Guardian.PageSize == 0 {
		cfg.Providers.Guardian.PageSize = 20
	}
	if cfg.Providers.Timeout == 0 {
		cfg.Providers.Timeout = 20 * time.Second
	}

	if cfg.LLM.Temperature == 0 {
		cfg.LLM.Temperature = 0.2
	}
	if cfg.LLM.MaxTokens == 0 {
		cfg.LLM.MaxTokens = 600
	}
	if cfg.LLM.Timeout == 0 {
		cfg.LLM.Timeout = 30 * time.Second
	}

	if cfg.Extraction.Timeout == 0 {
		cfg.Extraction.Timeout = 30 * time.Second
	}
	if cfg.Extraction.MinTextLength == 0 {
		cfg.Extraction.MinTextLength = 100
	}
	if cfg.Extraction.UserAgent == "" {
		cfg.Extraction.UserAgent = "NewsInsight/1.0"
	}

	if cfg.Search.CacheTTL == 0 {
		cfg.Search.CacheTTL = time.Minute
	}
	if cfg.Search.DefaultLimit == 0 {
		cfg.Search.DefaultLimit = 6
	}
	if cfg.Search.MaxLimit == 0 {
		cfg.Search.MaxLimit = 50
	}
	if cfg.Search.DefaultAge == 0 {
		cfg.Search.DefaultAge = 30
	}
	if cfg.Search.ExplainTTL == 0 {
		cfg.Search.ExplainTTL = 10 * time.Minute
	}
	w := &cfg.Search.Weights
	if w.Recency == 0 {
		w.Recency = 1.0
	}
	if w.Headline == 0 {
		w.Headline = 3.0
	}
	if w.Entity == 0 {
		w.Entity = 2.0
	}
	if w.Summary == 0 {
		w.Summary = 1.0
	}
	if w.EnrichedBonus == 0 {
		w.EnrichedBonus = 0.5
	}

	if cfg.Retention.MaxAgeDays == 0 {
		cfg.Retention.MaxAgeDays = 30
	}
	if cfg.Retention.SweepInterval == 0 {
		cfg.Retention.SweepInterval = 24 * time.Hour
	}

	if cfg.Ingest.MaxWorkers == 0 {
		cfg.Ingest.MaxWorkers = 4
	}
	if cfg.Ingest.FetchTimeout == 0 {
		cfg.Ingest.FetchTimeout = 20 * time.Second
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	if cfg.Filter.MinWords < 0 {
		return fmt.Errorf("filter.min_words must be non-negative")
	}
	if cfg.Filter.MaxWords < cfg.Filter.MinWords {
		return fmt.Errorf("filter.max_words must be >= filter.min_words")
	}
	if cfg.Filter.MaxAgeDays < 1 {
		return fmt.Errorf("filter.max_age_days must be at least 1")
	}
	for _, seed := range cfg.Filter.Seed {
		if seed.Kind != "source" && seed.Kind != "keyword" {
			return fmt.Errorf("filter.seed_blacklist kind %q must be source or keyword", seed.Kind)
		}
		if seed.Value == "" {
			return fmt.Errorf("filter.seed_blacklist value is required")
		}
	}

	if cfg.LLM.Endpoint != "" && cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required when llm.endpoint is set")
	}
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}

	if cfg.Extraction.Enabled && cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}

	if cfg.Search.MaxLimit < cfg.Search.DefaultLimit {
		return fmt.Errorf("search.max_limit must be >= search.default_limit")
	}
	if cfg.Retention.MaxAgeDays < cfg.Filter.MaxAgeDays {
		return fmt.Errorf("retention.max_age_days must be >= filter.max_age_days")
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetLLMConfig returns LLM configuration
func (c *Config) GetLLMConfig() LLMConfig {
	return c.LLM
}

// GetSearchConfig returns search configuration
func (c *Config) GetSearchConfig() SearchConfig {
	return c.Search
}
