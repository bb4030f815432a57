package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Qdrant - Article embeddings
	Qdrant QdrantConfig

	// Voyage - Query embedding
	Voyage VoyageConfig

	// Gemini - Understanding, judge and answer generation
	Gemini GeminiConfig

	// PostgreSQL - Article corpus, search analytics
	Postgres PostgresConfig

	// Redis - Embedding and result caching
	Redis RedisConfig

	// Kafka - Search analytics events
	Kafka KafkaConfig

	// JWT - Optional caller identity
	JWT JWTConfig

	// Search pipeline tuning
	Search  SearchConfig
	Lexicon LexiconConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
	Enabled bool
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// QdrantConfig is the configuration for Qdrant
type QdrantConfig struct {
	Host       string
	Port       int
	APIKey     string
	UseTLS     bool
	Timeout    int // in seconds
	Collection string
	VectorSize int // embedding dimension; 0 skips the check
}

// VoyageConfig is the configuration for Voyage AI (embedding). Same shape as pkg/voyage.VoyageConfig.
type VoyageConfig struct {
	APIKey string
}

// GeminiConfig is the configuration for Google Gemini (LLM).
type GeminiConfig struct {
	APIKey            string
	Model             string
	RequestsPerSecond float64
	Burst             int
}

// JWTConfig is used to verify tokens (same secret/issuer as the identity service). This service does not issue tokens.
// Identity is optional; leave SecretKey empty to serve anonymous callers only.
type JWTConfig struct {
	Issuer    string
	Audience  []string
	SecretKey string
}

// SearchConfig tunes the search pipeline.
type SearchConfig struct {
	DefaultLimit       int
	RerankEnabled      bool
	IncludeAnswer      bool
	InterpretTimeout   int // in seconds
	EmbeddingTimeout   int // in seconds
	RetrieveTimeout    int // in seconds
	RerankTimeout      int // in seconds
	AnswerTimeout      int // in seconds
	ResultCacheTTL     int // in seconds
	EmbeddingCacheTTL  int // in seconds
	InterpretCacheSize int
}

// LexiconConfig holds the local entity dictionaries used by the query interpreter.
type LexiconConfig struct {
	CompanyAliases map[string]string
	Companies      []string
	Drugs          []string
	Indications    []string
	Topics         []string
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("pharma-search")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/pharma-search/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Qdrant
	cfg.Qdrant.Host = viper.GetString("qdrant.host")
	cfg.Qdrant.Port = viper.GetInt("qdrant.port")
	cfg.Qdrant.APIKey = viper.GetString("qdrant.api_key")
	cfg.Qdrant.UseTLS = viper.GetBool("qdrant.use_tls")
	cfg.Qdrant.Timeout = viper.GetInt("qdrant.timeout")
	cfg.Qdrant.Collection = viper.GetString("qdrant.collection")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")

	// Voyage - Embedding
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")

	// Gemini - LLM
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.RequestsPerSecond = viper.GetFloat64("gemini.requests_per_second")
	cfg.Gemini.Burst = viper.GetInt("gemini.burst")

	// PostgreSQL
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	cfg.Redis.PoolSize = viper.GetInt("redis.pool_size")

	// Kafka
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")
	cfg.Kafka.GroupID = viper.GetString("kafka.group_id")
	cfg.Kafka.Enabled = viper.GetBool("kafka.enabled")

	// JWT
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")

	// Search
	cfg.Search.DefaultLimit = viper.GetInt("search.default_limit")
	cfg.Search.RerankEnabled = viper.GetBool("search.rerank_enabled")
	cfg.Search.IncludeAnswer = viper.GetBool("search.include_answer")
	cfg.Search.InterpretTimeout = viper.GetInt("search.interpret_timeout")
	cfg.Search.EmbeddingTimeout = viper.GetInt("search.embedding_timeout")
	cfg.Search.RetrieveTimeout = viper.GetInt("search.retrieve_timeout")
	cfg.Search.RerankTimeout = viper.GetInt("search.rerank_timeout")
	cfg.Search.AnswerTimeout = viper.GetInt("search.answer_timeout")
	cfg.Search.ResultCacheTTL = viper.GetInt("search.result_cache_ttl")
	cfg.Search.EmbeddingCacheTTL = viper.GetInt("search.embedding_cache_ttl")
	cfg.Search.InterpretCacheSize = viper.GetInt("search.interpret_cache_size")

	// Lexicon
	cfg.Lexicon.CompanyAliases = viper.GetStringMapString("lexicon.company_aliases")
	cfg.Lexicon.Companies = viper.GetStringSlice("lexicon.companies")
	cfg.Lexicon.Drugs = viper.GetStringSlice("lexicon.drugs")
	cfg.Lexicon.Indications = viper.GetStringSlice("lexicon.indications")
	cfg.Lexicon.Topics = viper.GetStringSlice("lexicon.topics")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Qdrant
	viper.SetDefault("qdrant.host", "localhost")
	viper.SetDefault("qdrant.port", 6334)
	viper.SetDefault("qdrant.use_tls", false)
	viper.SetDefault("qdrant.timeout", 30)
	viper.SetDefault("qdrant.collection", "pharma_articles")
	viper.SetDefault("qdrant.vector_size", 1024) // voyage-3

	// Gemini
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.requests_per_second", 5)
	viper.SetDefault("gemini.burst", 10)

	// PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "pharma")

	// Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("redis.pool_size", 20)

	// Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "pharma.search.performed")
	viper.SetDefault("kafka.group_id", "pharma-search-analytics")
	viper.SetDefault("kafka.enabled", true)

	// JWT
	viper.SetDefault("jwt.issuer", "identity-service")
	viper.SetDefault("jwt.audience", []string{"pharma-search-srv"})

	// Search
	viper.SetDefault("search.default_limit", 20)
	viper.SetDefault("search.rerank_enabled", true)
	viper.SetDefault("search.include_answer", true)
	viper.SetDefault("search.interpret_timeout", 10)
	viper.SetDefault("search.embedding_timeout", 5)
	viper.SetDefault("search.retrieve_timeout", 10)
	viper.SetDefault("search.rerank_timeout", 15)
	viper.SetDefault("search.answer_timeout", 20)
	viper.SetDefault("search.result_cache_ttl", 300) // 5 minutes
	viper.SetDefault("search.embedding_cache_ttl", 86400)
	viper.SetDefault("search.interpret_cache_size", 1024)
}

func validate(cfg *Config) error {
	if cfg.JWT.SecretKey != "" && len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}

	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.Port == 0 {
		return fmt.Errorf("postgres.port is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.db_name is required")
	}
	if cfg.Postgres.User == "" {
		return fmt.Errorf("postgres.user is required")
	}

	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	if cfg.Qdrant.Host == "" {
		return fmt.Errorf("qdrant.host is required")
	}
	if cfg.Qdrant.Port == 0 {
		return fmt.Errorf("qdrant.port is required")
	}
	if cfg.Qdrant.Collection == "" {
		return fmt.Errorf("qdrant.collection is required")
	}

	if cfg.Voyage.APIKey == "" {
		return fmt.Errorf("voyage.api_key is required")
	}
	if cfg.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required")
	}

	if cfg.Kafka.Enabled {
		if len(cfg.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers is required when kafka is enabled")
		}
		if cfg.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required when kafka is enabled")
		}
	}

	if cfg.Search.DefaultLimit < 1 || cfg.Search.DefaultLimit > 100 {
		return fmt.Errorf("search.default_limit must be between 1 and 100")
	}

	return nil
}
