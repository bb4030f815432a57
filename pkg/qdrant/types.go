package qdrant

import (
	"time"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
)

// Config holds Qdrant configuration
type Config struct {
	Host    string
	Port    int
	UseTLS  bool
	APIKey  string
	Timeout time.Duration
}

// qdrantImpl implements IQdrant over the raw gRPC clients.
type qdrantImpl struct {
	conn              *grpc.ClientConn
	pointsClient      pb.PointsClient
	collectionsClient pb.CollectionsClient
	defaultTimeout    time.Duration
}

// SearchParams describes one similarity query.
type SearchParams struct {
	Vector         []float32
	Limit          uint64
	Filter         *pb.Filter
	ScoreThreshold *float32
	// PayloadFields restricts the returned payload. Empty means the full payload.
	PayloadFields []string
}

// SearchResult represents a search result from Qdrant
type SearchResult struct {
	ID      string
	Score   float32
	Payload map[string]interface{}
}

// CollectionInfo represents collection metadata
type CollectionInfo struct {
	Name        string
	VectorSize  uint64
	Distance    string
	PointsCount uint64
	Status      string
}
