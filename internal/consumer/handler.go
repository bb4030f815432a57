package consumer

import (
	"context"
	"fmt"

	analyticsConsumer "pharma-search-srv/internal/analytics/delivery/kafka/consumer"
	analyticsPostgre "pharma-search-srv/internal/analytics/repository/postgre"
	analyticsUsecase "pharma-search-srv/internal/analytics/usecase"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	analyticsConsumer analyticsConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	repo := analyticsPostgre.New(srv.postgresDB, srv.l)
	uc := analyticsUsecase.New(repo, srv.l)

	cons, err := analyticsConsumer.New(analyticsConsumer.Config{
		Logger:      srv.l,
		KafkaConfig: srv.kafkaConfig,
		UseCase:     uc,
		Group:       srv.consumerGroup,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics consumer: %w", err)
	}

	srv.l.Infof(ctx, "Analytics domain initialized")

	return &domainConsumers{
		analyticsConsumer: cons,
	}, nil
}

// startConsumers starts all domain consumers in background goroutines
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) error {
	if err := consumers.analyticsConsumer.ConsumeSearchPerformed(ctx); err != nil {
		return fmt.Errorf("failed to start analytics consumer: %w", err)
	}

	srv.l.Infof(ctx, "All consumers started successfully")
	return nil
}

// stopConsumers gracefully stops all domain consumers
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.analyticsConsumer != nil {
		if err := consumers.analyticsConsumer.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing analytics consumer: %v", err)
		}
	}

	srv.l.Infof(ctx, "All consumers stopped")
}
