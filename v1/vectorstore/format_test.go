package vectorstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatQA(t *testing.T) {
	assert.Equal(t, "Q: 2+2?\nA: print(4)", FormatQA("2+2?", "print(4)"))
	assert.Equal(t, "Q: \nA: ", FormatQA("", ""))
}

func TestBuildMetadata(t *testing.T) {
	shared := map[string]any{"tag": "a"}

	out, err := buildMetadata([]string{"one", "two"}, []map[string]any{shared, shared})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"tag": "a", TextKey: "one"}, out[0])
	assert.Equal(t, map[string]any{"tag": "a", TextKey: "two"}, out[1])
	assert.Equal(t, map[string]any{"tag": "a"}, shared)

	out, err = buildMetadata([]string{"x"}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{TextKey: "x"}, out[0])
}

func TestValidateMetadataValue(t *testing.T) {
	valid := []any{"s", true, 1, int64(2), uint8(3), float32(1.5), 2.5, []string{"a"}, []any{"a", "b"}}
	for _, v := range valid {
		assert.NoError(t, validateMetadataValue(v), "%T", v)
	}

	invalid := []any{nil, map[string]any{}, []int{1}, []any{"a", 1}, struct{}{}}
	for _, v := range invalid {
		assert.Error(t, validateMetadataValue(v), "%T", v)
	}
}

func TestGenerateIDs(t *testing.T) {
	ids := generateIDs(3, suffixQA)
	require.Len(t, ids, 3)
	seen := map[string]bool{}
	for _, id := range ids {
		assert.Regexp(t, `-qa$`, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
