package cache

import "reflect"

// Size estimation heuristics. These are approximations, not an exact
// accounting: the goal is a stable, deterministic figure the memory ceiling
// can be enforced against.
const (
	// scalarSize is the fixed estimate for numeric and boolean scalars.
	scalarSize = 8
	// elementOverhead is the per-element container overhead.
	elementOverhead = 8
	// fallbackSize is the conservative estimate for opaque values.
	fallbackSize = 64
	// maxEstimateDepth caps recursion; deeper structures use the fallback.
	maxEstimateDepth = 16
)

// EstimateSize returns an approximate byte footprint for an arbitrary value.
// Strings and byte slices count their length, scalars get a small fixed
// cost, and containers recurse over their elements with a per-element
// overhead. Values the estimator cannot inspect degrade to a fixed fallback.
// The estimate is deterministic and never panics.
func EstimateSize(value any) int64 {
	if value == nil {
		return scalarSize
	}
	return estimate(reflect.ValueOf(value), 0)
}

func estimate(v reflect.Value, depth int) int64 {
	if depth > maxEstimateDepth {
		return fallbackSize
	}

	switch v.Kind() {
	case reflect.Invalid:
		return scalarSize
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return scalarSize
	case reflect.Complex64, reflect.Complex128:
		return 2 * scalarSize
	case reflect.String:
		return int64(v.Len()) + elementOverhead
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return scalarSize
		}
		// Byte payloads count raw length; other elements recurse.
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return int64(v.Len()) + elementOverhead
		}
		total := int64(elementOverhead)
		for i := 0; i < v.Len(); i++ {
			total += estimate(v.Index(i), depth+1) + elementOverhead
		}
		return total
	case reflect.Map:
		if v.IsNil() {
			return scalarSize
		}
		total := int64(elementOverhead)
		iter := v.MapRange()
		for iter.Next() {
			total += estimate(iter.Key(), depth+1)
			total += estimate(iter.Value(), depth+1)
			total += elementOverhead
		}
		return total
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return scalarSize
		}
		return estimate(v.Elem(), depth+1) + elementOverhead
	case reflect.Struct:
		total := int64(elementOverhead)
		for i := 0; i < v.NumField(); i++ {
			total += estimate(v.Field(i), depth+1)
		}
		return total
	default:
		// Func, Chan, UnsafePointer, and anything newer.
		return fallbackSize
	}
}
