package vectorstore

import (
	"fmt"

	"github.com/google/uuid"
)

// TextKey is the metadata key that always holds the exact text that was
// embedded for a record.
const TextKey = "text"

const (
	suffixQA   = "-qa"
	suffixDocs = "-docs"
)

// FormatQA renders a question/answer pair the way it is embedded and stored.
func FormatQA(query, code string) string {
	return "Q: " + query + "\nA: " + code
}

func formatQAs(queries, codes []string) []string {
	out := make([]string, len(queries))
	for i := range queries {
		out[i] = FormatQA(queries[i], codes[i])
	}
	return out
}

// generateIDs returns n random IDs carrying the namespace suffix.
func generateIDs(n int, suffix string) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = uuid.NewString() + suffix
	}
	return ids
}

// buildMetadata copies the caller's metadata per item and sets TextKey to the
// embedded text. Every item gets its own map; caller maps are left untouched.
func buildMetadata(texts []string, metadatas []map[string]any) ([]map[string]any, error) {
	out := make([]map[string]any, len(texts))
	for i, text := range texts {
		var src map[string]any
		if metadatas != nil {
			src = metadatas[i]
		}

		m := make(map[string]any, len(src)+1)
		for k, v := range src {
			if k == TextKey {
				continue
			}
			if err := validateMetadataValue(v); err != nil {
				return nil, fmt.Errorf("%w: metadata[%d][%q]: %w", ErrValidation, i, k, err)
			}
			m[k] = v
		}
		m[TextKey] = text
		out[i] = m
	}
	return out, nil
}

// validateMetadataValue accepts the scalar types every backend can store
// plus lists of strings.
func validateMetadataValue(v any) error {
	switch val := v.(type) {
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return nil
	case []string:
		return nil
	case []any:
		for _, e := range val {
			if _, ok := e.(string); !ok {
				return fmt.Errorf("list element of type %T, only strings are supported", e)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported value type %T", v)
	}
}
