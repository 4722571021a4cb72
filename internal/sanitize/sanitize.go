// Package sanitize strips null values from JSON-shaped documents before
// they reach a document column. The persistence layer rejects nulls for
// optional fields; the record's shape must still satisfy the data model's
// optionality, so keys are removed rather than zeroed.
package sanitize

import "encoding/json"

// Clean returns a copy of v with every map entry whose value is nil removed
// and every nil slice element dropped, recursively at all depths. Slices
// keep their order and are never deduplicated. The input is not mutated.
func Clean(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if item == nil {
				continue
			}
			out[k] = Clean(item)
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			out = append(out, Clean(item))
		}
		return out
	default:
		return v
	}
}

// Document marshals v, cleans the resulting tree, and returns the sanitized
// JSON bytes. This is the serialization-boundary form used by repositories
// writing document-valued columns.
func Document(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return json.Marshal(Clean(tree))
}
