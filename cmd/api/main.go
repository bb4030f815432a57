package main

import (
	"context"
	"fmt"

	"pharma-search-srv/config"
	configAI "pharma-search-srv/config/ai"
	configKafka "pharma-search-srv/config/kafka"
	configPostgre "pharma-search-srv/config/postgre"
	configQdrant "pharma-search-srv/config/qdrant"
	configRedis "pharma-search-srv/config/redis"
	"pharma-search-srv/internal/httpserver"
	"pharma-search-srv/pkg/discord"
	pkgJWT "pharma-search-srv/pkg/jwt"
	pkgKafka "pharma-search-srv/pkg/kafka"
	"pharma-search-srv/pkg/log"
	"pharma-search-srv/pkg/scope"
)

func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Pharma Search API...")

	// 3. Initialize PostgreSQL (articles corpus + search analytics)
	postgresDB, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer configPostgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// 4. Initialize Redis (embedding + result caches)
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 5. Initialize Qdrant (article vectors)
	qdrantClient, err := configQdrant.Connect(ctx, cfg.Qdrant)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Qdrant: ", err)
		return
	}
	defer configQdrant.Disconnect()
	logger.Infof(ctx, "Qdrant connected successfully to %s:%d (collection %s)", cfg.Qdrant.Host, cfg.Qdrant.Port, cfg.Qdrant.Collection)

	// 6. Initialize AI clients
	voyageClient := configAI.ConnectVoyage(cfg.Voyage)
	geminiClient, err := configAI.ConnectGemini(cfg.Gemini)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	logger.Infof(ctx, "AI clients initialized (gemini model %s)", cfg.Gemini.Model)

	// 7. Initialize Kafka producer (optional, search analytics events)
	var kafkaProducer pkgKafka.IProducer
	if cfg.Kafka.Enabled {
		kafkaProducer, err = configKafka.ConnectProducer(cfg.Kafka)
		if err != nil {
			logger.Warnf(ctx, "Kafka producer not available, search events disabled: %v", err)
			kafkaProducer = nil
		} else {
			defer configKafka.DisconnectProducer()
			logger.Infof(ctx, "Kafka producer connected to %v", cfg.Kafka.Brokers)
		}
	}

	// 8. Initialize JWT manager (optional)
	jwtManager := initializeJWTManager(ctx, logger, cfg)

	// 9. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 10. Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Infrastructure clients
		PostgresDB:    postgresDB,
		RedisClient:   redisClient,
		QdrantClient:  qdrantClient,
		KafkaProducer: kafkaProducer,

		// AI clients
		VoyageClient: voyageClient,
		GeminiClient: geminiClient,

		// Identity & pipeline configuration
		Config:     cfg,
		JWTManager: jwtManager,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// initializeJWTManager returns nil when no secret is configured, in which case callers are anonymous.
func initializeJWTManager(ctx context.Context, logger log.Logger, cfg *config.Config) scope.Manager {
	if cfg.JWT.SecretKey == "" {
		logger.Warnf(ctx, "JWT secret not configured: identity disabled")
		return nil
	}
	manager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
	})
	if err != nil {
		logger.Warnf(ctx, "JWT manager not initialized, identity disabled: %v", err)
		return nil
	}
	logger.Infof(ctx, "JWT Manager initialized for issuer %s", cfg.JWT.Issuer)
	return manager
}
