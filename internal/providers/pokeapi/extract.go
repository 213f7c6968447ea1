package pokeapi

// valueAt walks nested JSON objects key by key and returns the leaf value.
// A missing key or a non-object intermediate step yields ok=false rather
// than an error, which keeps field extraction independent and total.
func valueAt(payload map[string]any, path ...string) (any, bool) {
	var current any = payload
	for _, key := range path {
		obj, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = obj[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func stringAt(payload map[string]any, path ...string) (string, bool) {
	v, ok := valueAt(payload, path...)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// intAt reads a numeric leaf as an int. encoding/json decodes every JSON
// number into float64, so that is the type asserted here.
func intAt(payload map[string]any, path ...string) (int, bool) {
	v, ok := valueAt(payload, path...)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

func floatOr(payload map[string]any, key string, fallback float64) float64 {
	if v, ok := valueAt(payload, key); ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	return fallback
}

func sliceAt(payload map[string]any, key string) []any {
	if v, ok := valueAt(payload, key); ok {
		if s, ok := v.([]any); ok {
			return s
		}
	}
	return nil
}
