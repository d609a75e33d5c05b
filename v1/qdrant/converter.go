package qdrant

import (
	"fmt"

	"github.com/google/uuid"
	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/Aleph-Alpha/vectorstore/v1/vectordb"
)

// Payload layout of every point:
//
//	{"namespace": "qa", "record_id": "<caller id>", "custom": {<caller metadata>}}
//
// Caller metadata lives under UserPayloadPrefix so it can never shadow the
// internal fields.
const (
	NamespaceField    = "namespace"
	RecordIDField     = "record_id"
	UserPayloadPrefix = "custom"
)

// PointID maps a namespaced record id to the UUID Qdrant stores it under.
// The mapping is deterministic, so an id in "qa" and the same id in "docs"
// are different points.
func PointID(ns vectordb.Namespace, id string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(string(ns)+"/"+id)).String()
}

func pointIDs(ns vectordb.Namespace, ids []string) []*qdrant.PointId {
	out := make([]*qdrant.PointId, len(ids))
	for i, id := range ids {
		out[i] = qdrant.NewID(PointID(ns, id))
	}
	return out
}

// BuildPayload creates a Qdrant payload with the internal fields at the top
// level and the caller's metadata under UserPayloadPrefix.
func BuildPayload(ns vectordb.Namespace, id string, metadata map[string]any) (map[string]*qdrant.Value, error) {
	user := make(map[string]any, len(metadata))
	for k, v := range metadata {
		nv, err := normalizeValue(v)
		if err != nil {
			return nil, fmt.Errorf("metadata key %q: %w", k, err)
		}
		user[k] = nv
	}

	return qdrant.NewValueMap(map[string]any{
		NamespaceField:    string(ns),
		RecordIDField:     id,
		UserPayloadPrefix: user,
	}), nil
}

// normalizeValue converts metadata values into the types qdrant.NewValueMap
// understands.
func normalizeValue(v any) (any, error) {
	switch val := v.(type) {
	case nil, string, bool, int64, float64:
		return val, nil
	case int:
		return int64(val), nil
	case int8:
		return int64(val), nil
	case int16:
		return int64(val), nil
	case int32:
		return int64(val), nil
	case uint:
		return int64(val), nil
	case uint8:
		return int64(val), nil
	case uint16:
		return int64(val), nil
	case uint32:
		return int64(val), nil
	case uint64:
		return int64(val), nil
	case float32:
		return float64(val), nil
	case []string:
		items := make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
		return items, nil
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			nv, err := normalizeValue(item)
			if err != nil {
				return nil, err
			}
			items[i] = nv
		}
		return items, nil
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, item := range val {
			nv, err := normalizeValue(item)
			if err != nil {
				return nil, err
			}
			m[k] = nv
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported payload type %T", v)
	}
}

// ── Filter Conversion ────────────────────────────────────────────────────────

// convertVectorDBFilterSet converts a vectordb.FilterSet to a Qdrant filter.
func convertVectorDBFilterSet(filters *vectordb.FilterSet) *qdrant.Filter {
	if filters == nil {
		return nil
	}

	filter := &qdrant.Filter{}
	if filters.Must != nil {
		filter.Must = convertVectorDBConditionSet(filters.Must)
	}
	if filters.MustNot != nil {
		filter.MustNot = convertVectorDBConditionSet(filters.MustNot)
	}

	if len(filter.Must) == 0 && len(filter.MustNot) == 0 {
		return nil
	}
	return filter
}

func convertVectorDBConditionSet(cs *vectordb.ConditionSet) []*qdrant.Condition {
	var conditions []*qdrant.Condition
	for _, c := range cs.Conditions {
		if cond := convertVectorDBCondition(c); cond != nil {
			conditions = append(conditions, cond)
		}
	}
	return conditions
}

func convertVectorDBCondition(c vectordb.FilterCondition) *qdrant.Condition {
	switch cond := c.(type) {
	case *vectordb.MatchCondition:
		return convertVectorDBMatchCondition(cond)
	case *vectordb.MatchAnyCondition:
		return convertVectorDBMatchAnyCondition(cond)
	default:
		return nil
	}
}

func convertVectorDBMatchCondition(c *vectordb.MatchCondition) *qdrant.Condition {
	switch v := c.Value.(type) {
	case string:
		return qdrant.NewMatch(c.Field, v)
	case bool:
		return qdrant.NewMatchBool(c.Field, v)
	case int:
		return qdrant.NewMatchInt(c.Field, int64(v))
	case int64:
		return qdrant.NewMatchInt(c.Field, v)
	default:
		return nil
	}
}

func convertVectorDBMatchAnyCondition(c *vectordb.MatchAnyCondition) *qdrant.Condition {
	if len(c.Values) == 0 {
		return nil
	}

	switch c.Values[0].(type) {
	case string:
		strs := make([]string, len(c.Values))
		for i, v := range c.Values {
			strs[i], _ = v.(string)
		}
		return qdrant.NewMatchKeywords(c.Field, strs...)
	case int, int64:
		ints := make([]int64, len(c.Values))
		for i, v := range c.Values {
			switch n := v.(type) {
			case int:
				ints[i] = int64(n)
			case int64:
				ints[i] = n
			}
		}
		return qdrant.NewMatchInts(c.Field, ints...)
	}
	return nil
}

// namespaceFilter scopes a request to ns and, if given, to the caller ids.
func namespaceFilter(ns vectordb.Namespace, ids []string) *qdrant.Filter {
	return convertVectorDBFilterSet(vectordb.NamespaceFilter(NamespaceField, ns, RecordIDField, ids))
}

// ── Result Conversion ────────────────────────────────────────────────────────

// recordFields pulls the caller id and metadata back out of a payload.
func recordFields(payload map[string]*qdrant.Value) (string, map[string]any) {
	id := payload[RecordIDField].GetStringValue()
	var metadata map[string]any
	if custom := payload[UserPayloadPrefix].GetStructValue(); custom != nil {
		metadata = convertVectorDBPayload(custom.GetFields())
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	return id, metadata
}

func vectorData(v *qdrant.VectorsOutput) []float32 {
	data := v.GetVector().GetData()
	if len(data) == 0 {
		return nil
	}
	out := make([]float32, len(data))
	copy(out, data)
	return out
}

// convertVectorDBPayload converts Qdrant's protobuf payload to a generic map.
func convertVectorDBPayload(payload map[string]*qdrant.Value) map[string]any {
	if payload == nil {
		return nil
	}
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		result[k] = extractVectorDBValue(v)
	}
	return result
}

// extractVectorDBValue recursively converts a Qdrant Value to a Go native type.
// String lists come back as []string so metadata round-trips unchanged.
func extractVectorDBValue(v *qdrant.Value) any {
	if v == nil {
		return nil
	}
	switch val := v.Kind.(type) {
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_NullValue:
		return nil
	case *qdrant.Value_StructValue:
		if val.StructValue == nil {
			return nil
		}
		return convertVectorDBPayload(val.StructValue.Fields)
	case *qdrant.Value_ListValue:
		if val.ListValue == nil {
			return nil
		}
		return extractList(val.ListValue.Values)
	default:
		return nil
	}
}

func extractList(values []*qdrant.Value) any {
	allStrings := len(values) > 0
	for _, item := range values {
		if _, ok := item.GetKind().(*qdrant.Value_StringValue); !ok {
			allStrings = false
			break
		}
	}
	if allStrings {
		strs := make([]string, len(values))
		for i, item := range values {
			strs[i] = item.GetStringValue()
		}
		return strs
	}

	items := make([]any, len(values))
	for i, item := range values {
		items[i] = extractVectorDBValue(item)
	}
	return items
}

// ── Metric Conversion ────────────────────────────────────────────────────────

func toDistance(m vectordb.Metric) (qdrant.Distance, error) {
	switch m {
	case vectordb.MetricCosine:
		return qdrant.Distance_Cosine, nil
	case vectordb.MetricEuclidean:
		return qdrant.Distance_Euclid, nil
	case vectordb.MetricDotProduct:
		return qdrant.Distance_Dot, nil
	default:
		return qdrant.Distance_UnknownDistance, fmt.Errorf("%w: unsupported metric %q", vectordb.ErrInvalidIndexSpec, m)
	}
}

// distanceScore turns a Qdrant score into a distance, lower is closer.
// Cosine similarity becomes 1-sim and dot product is negated, matching the
// memory and pgvector backends. Euclid and Manhattan are already distances.
func distanceScore(d qdrant.Distance, score float32) float32 {
	switch d {
	case qdrant.Distance_Cosine:
		return 1 - score
	case qdrant.Distance_Dot:
		return -score
	default:
		return score
	}
}
