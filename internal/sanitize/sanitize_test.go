package sanitize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanRemovesNilMapEntries(t *testing.T) {
	in := map[string]any{
		"name":  "Alice",
		"grade": nil,
		"age":   17,
	}

	out := Clean(in).(map[string]any)

	assert.Equal(t, map[string]any{"name": "Alice", "age": 17}, out)
}

func TestCleanRecursesIntoNestedStructures(t *testing.T) {
	in := map[string]any{
		"student": map[string]any{
			"notes": nil,
			"testResults": []any{
				map[string]any{"subject": "Math", "timeSpent": nil},
				nil,
				map[string]any{"subject": "Science"},
			},
		},
	}

	out := Clean(in).(map[string]any)

	student := out["student"].(map[string]any)
	assert.NotContains(t, student, "notes")

	results := student["testResults"].([]any)
	require.Len(t, results, 2, "nil array elements should be dropped")
	assert.Equal(t, map[string]any{"subject": "Math"}, results[0])
	assert.Equal(t, map[string]any{"subject": "Science"}, results[1])
}

func TestCleanPreservesArrayOrderAndDuplicates(t *testing.T) {
	in := []any{"b", nil, "a", "a"}

	out := Clean(in).([]any)

	assert.Equal(t, []any{"b", "a", "a"}, out)
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"keep": "x", "drop": nil}

	Clean(in)

	assert.Contains(t, in, "drop")
}

func TestCleanIsTotalOverScalars(t *testing.T) {
	assert.Equal(t, 42.0, Clean(42.0))
	assert.Equal(t, "s", Clean("s"))
	assert.Nil(t, Clean(nil))
}

func TestDocumentDropsOptionalNilFields(t *testing.T) {
	type metrics struct {
		Motivation int     `json:"motivation"`
		Notes      *string `json:"notes"`
	}

	raw, err := Document(metrics{Motivation: 5})
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal(raw, &tree))
	assert.Equal(t, 5.0, tree["motivation"])
	assert.NotContains(t, tree, "notes")
}
