// Package resolve reads values out of historically-shaped contract data.
// Two generations of extraction schema coexist in the store (a legacy
// flat layout and the current nested layout), so every reader here is a
// total function: missing or oddly-typed values resolve to zero values,
// never to an error.
package resolve

// Get walks a key path through nested maps. Any non-map intermediate or
// missing key yields nil.
func Get(data map[string]any, keys ...string) any {
	var cur any = data
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[k]
	}
	return cur
}

// Truthy reports whether a decoded JSON value counts as present.
// Empty strings, zero numbers, false, empty collections and nil all
// fall through, so fallback chains skip placeholder values the same way
// the historical read path did.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case int:
		return t != 0
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	default:
		return true
	}
}

// FirstTruthy returns the first present value in the chain, or nil.
func FirstTruthy(vals ...any) any {
	for _, v := range vals {
		if Truthy(v) {
			return v
		}
	}
	return nil
}

// Number coerces a decoded JSON value to float64. Only numeric types
// convert; everything else reports false.
func Number(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}

// NumberOrZero is Number with a zero fallback, for aggregation paths
// that must never fail.
func NumberOrZero(v any) float64 {
	n, _ := Number(v)
	return n
}
