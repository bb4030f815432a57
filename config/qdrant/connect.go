package qdrant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pharma-search-srv/config"
	"pharma-search-srv/pkg/qdrant"
)

var (
	mu       sync.Mutex
	instance qdrant.IQdrant
)

// Connect returns the process-wide Qdrant client, dialing it on first use.
// The article collection must already exist: ingestion owns it and this service only searches it.
func Connect(ctx context.Context, cfg config.QdrantConfig) (qdrant.IQdrant, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	client, err := qdrant.NewQdrant(qdrant.Config{
		Host:    cfg.Host,
		Port:    cfg.Port,
		APIKey:  cfg.APIKey,
		UseTLS:  cfg.UseTLS,
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Qdrant client: %w", err)
	}

	if _, err := checkCollection(ctx, client, cfg.Collection, uint64(cfg.VectorSize)); err != nil {
		_ = client.Close()
		return nil, err
	}

	instance = client
	return instance, nil
}

// checkCollection verifies the collection exists and was built with the expected embedding dimension.
func checkCollection(ctx context.Context, ops qdrant.CollectionsOps, name string, wantSize uint64) (*qdrant.CollectionInfo, error) {
	exists, err := ops.CollectionExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to look up collection %q: %w", name, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q", qdrant.ErrCollectionNotFound, name)
	}

	info, err := ops.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection %q: %w", name, err)
	}
	if wantSize > 0 && info.VectorSize > 0 && info.VectorSize != wantSize {
		return nil, fmt.Errorf("%w: %q has %d, want %d", qdrant.ErrVectorSizeMismatch, name, info.VectorSize, wantSize)
	}
	return info, nil
}

// Disconnect closes the Qdrant client and forgets it.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
