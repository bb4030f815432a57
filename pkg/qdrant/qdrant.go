package qdrant

import (
	"context"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
)

// Close closes the Qdrant connection.
func (c *qdrantImpl) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// Ping checks if Qdrant is reachable.
func (c *qdrantImpl) Ping(ctx context.Context) error {
	_, err := c.collectionsClient.List(ctx, &pb.ListCollectionsRequest{})
	if err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// CollectionExists checks if a collection exists.
func (c *qdrantImpl) CollectionExists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, ErrEmptyCollection
	}
	resp, err := c.collectionsClient.CollectionExists(ctx, &pb.CollectionExistsRequest{CollectionName: name})
	if err != nil {
		return false, WrapError(err, "failed to check collection")
	}
	return resp.GetResult().GetExists(), nil
}

// GetCollectionInfo retrieves information about a collection.
func (c *qdrantImpl) GetCollectionInfo(ctx context.Context, name string) (*CollectionInfo, error) {
	if name == "" {
		return nil, ErrEmptyCollection
	}
	resp, err := c.collectionsClient.Get(ctx, &pb.GetCollectionInfoRequest{CollectionName: name})
	if err != nil {
		return nil, WrapError(err, "failed to get collection info")
	}
	if resp.Result == nil {
		return nil, ErrCollectionNotFound
	}
	info := &CollectionInfo{
		Name:        name,
		Status:      resp.Result.Status.String(),
		PointsCount: resp.Result.GetPointsCount(),
	}
	if resp.Result.Config != nil && resp.Result.Config.Params != nil {
		if vectorConfig := resp.Result.Config.Params.VectorsConfig; vectorConfig != nil {
			if params := vectorConfig.GetParams(); params != nil {
				info.VectorSize = params.Size
				info.Distance = params.Distance.String()
			}
		}
	}
	return info, nil
}

// Search performs a vector similarity search with an optional payload filter.
func (c *qdrantImpl) Search(ctx context.Context, collectionName string, params SearchParams) ([]SearchResult, error) {
	if collectionName == "" {
		return nil, ErrEmptyCollection
	}
	if len(params.Vector) == 0 {
		return nil, ErrInvalidVector
	}
	limit := params.Limit
	if limit == 0 {
		limit = DefaultSearchLimit
	}

	ctx, cancel := context.WithTimeout(ctx, c.defaultTimeout)
	defer cancel()

	resp, err := c.pointsClient.Search(ctx, &pb.SearchPoints{
		CollectionName: collectionName,
		Vector:         params.Vector,
		Limit:          limit,
		Filter:         params.Filter,
		ScoreThreshold: params.ScoreThreshold,
		WithPayload:    payloadSelector(params.PayloadFields),
	})
	if err != nil {
		return nil, WrapError(err, "failed to search")
	}
	return searchResultsFromHits(resp.Result), nil
}

func payloadSelector(fields []string) *pb.WithPayloadSelector {
	if len(fields) == 0 {
		return &pb.WithPayloadSelector{SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true}}
	}
	return &pb.WithPayloadSelector{
		SelectorOptions: &pb.WithPayloadSelector_Include{
			Include: &pb.PayloadIncludeSelector{Fields: fields},
		},
	}
}

// searchResultsFromHits maps Qdrant hit results to SearchResult slice.
func searchResultsFromHits(hits []*pb.ScoredPoint) []SearchResult {
	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		payload := make(map[string]interface{}, len(hit.Payload))
		for key, value := range hit.Payload {
			payload[key] = valueToInterface(value)
		}
		results = append(results, SearchResult{ID: pointIDString(hit.Id), Score: hit.Score, Payload: payload})
	}
	return results
}

func pointIDString(id *pb.PointId) string {
	if id == nil {
		return ""
	}
	if u := id.GetUuid(); u != "" {
		return u
	}
	return fmt.Sprintf("%d", id.GetNum())
}
