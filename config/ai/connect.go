package ai

import (
	"fmt"
	"sync"

	"pharma-search-srv/config"
	"pharma-search-srv/pkg/gemini"
	"pharma-search-srv/pkg/voyage"
)

var (
	voyageInstance voyage.IVoyage
	geminiInstance gemini.IGemini
	mu             sync.RWMutex
)

// ConnectVoyage initializes the Voyage AI client.
func ConnectVoyage(cfg config.VoyageConfig) voyage.IVoyage {
	mu.Lock()
	defer mu.Unlock()

	if voyageInstance != nil {
		return voyageInstance
	}
	voyageInstance = voyage.NewVoyage(voyage.VoyageConfig{APIKey: cfg.APIKey})
	return voyageInstance
}

// ConnectGemini initializes the Google Gemini client.
func ConnectGemini(cfg config.GeminiConfig) (gemini.IGemini, error) {
	mu.Lock()
	defer mu.Unlock()

	if geminiInstance != nil {
		return geminiInstance, nil
	}

	client, err := gemini.NewGemini(gemini.GeminiConfig{
		APIKey:            cfg.APIKey,
		Model:             cfg.Model,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	geminiInstance = client
	return geminiInstance, nil
}

// GetVoyageClient returns the singleton Voyage client.
func GetVoyageClient() voyage.IVoyage {
	mu.RLock()
	defer mu.RUnlock()
	if voyageInstance == nil {
		panic("Voyage client not initialized. Call ConnectVoyage() first")
	}
	return voyageInstance
}

// GetGeminiClient returns the singleton Gemini client.
func GetGeminiClient() gemini.IGemini {
	mu.RLock()
	defer mu.RUnlock()
	if geminiInstance == nil {
		panic("Gemini client not initialized. Call ConnectGemini() first")
	}
	return geminiInstance
}
