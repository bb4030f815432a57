package qdrant

import (
	"pharma-search-srv/internal/retrieval/repository"
	pkgQdrant "pharma-search-srv/pkg/qdrant"

	pb "github.com/qdrant/go-client/qdrant"
)

// PayloadPublishedAt holds the publish time as unix seconds.
const PayloadPublishedAt = "published_at"

// buildFilter - Build Qdrant filter from the shared predicate set. Returns nil when nothing constrains the search.
func buildFilter(f repository.Filter) *pb.Filter {
	must := []*pb.Condition{}

	for _, p := range f.Overlaps {
		if len(p.Values) == 0 {
			continue
		}
		must = append(must, pkgQdrant.MatchAny(p.Field, p.Values))
	}

	if f.PublishedFrom != nil {
		must = append(must, pkgQdrant.RangeGte(PayloadPublishedAt, float64(f.PublishedFrom.Unix())))
	}
	if !f.PublishedTo.IsZero() {
		lt := float64(f.PublishedTo.Unix())
		must = append(must, &pb.Condition{
			ConditionOneOf: &pb.Condition_Field{
				Field: &pb.FieldCondition{
					Key:   PayloadPublishedAt,
					Range: &pb.Range{Lt: &lt},
				},
			},
		})
	}

	if len(must) == 0 {
		return nil
	}
	return &pb.Filter{Must: must}
}
