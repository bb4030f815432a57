package httpserver

import (
	"database/sql"
	"errors"

	"pharma-search-srv/config"
	"pharma-search-srv/pkg/discord"
	"pharma-search-srv/pkg/gemini"
	pkgKafka "pharma-search-srv/pkg/kafka"
	"pharma-search-srv/pkg/log"
	pkgQdrant "pharma-search-srv/pkg/qdrant"
	pkgRedis "pharma-search-srv/pkg/redis"
	"pharma-search-srv/pkg/scope"
	"pharma-search-srv/pkg/voyage"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Infrastructure clients
	postgresDB    *sql.DB
	redisClient   pkgRedis.IRedis
	qdrantClient  pkgQdrant.IQdrant
	kafkaProducer pkgKafka.IProducer

	// AI clients
	voyageClient voyage.IVoyage
	geminiClient gemini.IGemini

	// Identity & pipeline configuration
	config     *config.Config
	jwtManager scope.Manager

	// Monitoring & Notification Configuration
	discord discord.IDiscord

	// Core domains shared by the HTTP domains
	core coreDomains
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Infrastructure clients
	PostgresDB    *sql.DB
	RedisClient   pkgRedis.IRedis
	QdrantClient  pkgQdrant.IQdrant
	KafkaProducer pkgKafka.IProducer // optional, nil disables analytics events

	// AI clients
	VoyageClient voyage.IVoyage
	GeminiClient gemini.IGemini

	// Identity & pipeline configuration
	Config     *config.Config
	JWTManager scope.Manager // optional, nil serves anonymous callers only

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Infrastructure clients
		postgresDB:    cfg.PostgresDB,
		redisClient:   cfg.RedisClient,
		qdrantClient:  cfg.QdrantClient,
		kafkaProducer: cfg.KafkaProducer,

		// AI clients
		voyageClient: cfg.VoyageClient,
		geminiClient: cfg.GeminiClient,

		// Identity & pipeline configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Infrastructure clients
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.qdrantClient == nil {
		return errors.New("qdrantClient is required")
	}

	// AI clients
	if srv.voyageClient == nil {
		return errors.New("voyageClient is required")
	}
	if srv.geminiClient == nil {
		return errors.New("geminiClient is required")
	}

	if srv.config == nil {
		return errors.New("config is required")
	}

	return nil
}
