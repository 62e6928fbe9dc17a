// Package utils provides utility functions for the application.
package utils

// PruneEmpty recursively removes empty values from a filter payload before it
// is sent to the query service or stored as a run snapshot.
//
// Slices keep only surviving elements and collapse to nil when nothing
// survives. Maps drop any key whose pruned value is nil and collapse to nil
// when no keys survive. The scalars "", nil and false are treated as absent;
// every other scalar (including 0 and true) passes through unchanged.
//
// The function is pure and idempotent: PruneEmpty(PruneEmpty(v)) == PruneEmpty(v).
func PruneEmpty(v any) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			if pruned := PruneEmpty(item); pruned != nil {
				out = append(out, pruned)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			if pruned := PruneEmpty(item); pruned != nil {
				out[k] = pruned
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case string:
		if val == "" {
			return nil
		}
		return val
	case bool:
		if !val {
			return nil
		}
		return val
	case nil:
		return nil
	default:
		return v
	}
}

// PruneEmptyMap prunes a filter map and always returns a non-nil map, so an
// all-empty filter set serializes as an empty JSON object rather than null.
func PruneEmptyMap(m map[string]any) map[string]any {
	pruned := PruneEmpty(m)
	if pruned == nil {
		return map[string]any{}
	}
	return pruned.(map[string]any)
}
