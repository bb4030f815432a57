package qdrant

import (
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
)

// Validate validates the Qdrant configuration
func (cfg Config) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("%w: invalid port number", ErrInvalidConfig)
	}
	return nil
}

// MatchAny builds a keyword condition matching points whose key holds any of values.
func MatchAny(key string, values []string) *pb.Condition {
	return &pb.Condition{
		ConditionOneOf: &pb.Condition_Field{
			Field: &pb.FieldCondition{
				Key: key,
				Match: &pb.Match{
					MatchValue: &pb.Match_Keywords{
						Keywords: &pb.RepeatedStrings{Strings: values},
					},
				},
			},
		},
	}
}

// RangeGte builds a numeric lower-bound condition.
func RangeGte(key string, value float64) *pb.Condition {
	return &pb.Condition{
		ConditionOneOf: &pb.Condition_Field{
			Field: &pb.FieldCondition{
				Key:   key,
				Range: &pb.Range{Gte: &value},
			},
		},
	}
}

// HasIDs builds a condition restricting the search to the given UUID point ids.
func HasIDs(ids []string) *pb.Condition {
	pointIDs := make([]*pb.PointId, 0, len(ids))
	for _, id := range ids {
		pointIDs = append(pointIDs, &pb.PointId{PointIdOptions: &pb.PointId_Uuid{Uuid: id}})
	}
	return &pb.Condition{
		ConditionOneOf: &pb.Condition_HasId{
			HasId: &pb.HasIdCondition{HasId: pointIDs},
		},
	}
}

// valueToInterface converts a payload value into plain Go values.
func valueToInterface(v *pb.Value) interface{} {
	if v == nil {
		return nil
	}
	switch kind := v.Kind.(type) {
	case *pb.Value_NullValue:
		return nil
	case *pb.Value_BoolValue:
		return kind.BoolValue
	case *pb.Value_IntegerValue:
		return kind.IntegerValue
	case *pb.Value_DoubleValue:
		return kind.DoubleValue
	case *pb.Value_StringValue:
		return kind.StringValue
	case *pb.Value_ListValue:
		values := kind.ListValue.GetValues()
		out := make([]interface{}, 0, len(values))
		for _, item := range values {
			out = append(out, valueToInterface(item))
		}
		return out
	case *pb.Value_StructValue:
		fields := kind.StructValue.GetFields()
		out := make(map[string]interface{}, len(fields))
		for key, item := range fields {
			out[key] = valueToInterface(item)
		}
		return out
	default:
		return nil
	}
}
