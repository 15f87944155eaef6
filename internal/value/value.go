// Package value classifies and accesses decoded document values.
//
// The value domain is the one produced by decoding YAML or JSON: nil,
// booleans, integers, floats, strings, []any sequences, and mappings
// (yaml.MapSlice when decoded order-preserving, plain Go maps otherwise).
package value

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	yaml "github.com/goccy/go-yaml"
)

// Kind is the structural shape of a value.
type Kind int

const (
	Null Kind = iota
	Boolean
	Number
	String
	Array
	Object
	Unknown
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// KindOf reports the shape of a decoded value.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return Null
	case bool:
		return Boolean
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return Number
	case string:
		return String
	case []any:
		return Array
	case yaml.MapSlice, map[string]any, map[any]any:
		return Object
	default:
		return Unknown
	}
}

// TypeName reports the shape name used in error messages. Values outside
// the decoded domain include their Go type for diagnosis.
func TypeName(v any) string {
	kind := KindOf(v)
	if kind == Unknown {
		return fmt.Sprintf("unknown (%T)", v)
	}
	return kind.String()
}

// Int converts integer-typed values to int. Floats and non-numeric values
// report false.
func Int(v any) (int, bool) {
	switch current := v.(type) {
	case int:
		return current, true
	case int8:
		return int(current), true
	case int16:
		return int(current), true
	case int32:
		return int(current), true
	case int64:
		return int(current), true
	case uint:
		if uint64(current) > math.MaxInt {
			return 0, false
		}
		return int(current), true
	case uint8:
		return int(current), true
	case uint16:
		return int(current), true
	case uint32:
		return int(current), true
	case uint64:
		if current > math.MaxInt {
			return 0, false
		}
		return int(current), true
	default:
		return 0, false
	}
}

// Keys returns a mapping's keys: document order for yaml.MapSlice, sorted
// order for plain Go maps. Non-mappings report false.
func Keys(v any) ([]any, bool) {
	switch current := v.(type) {
	case yaml.MapSlice:
		keys := make([]any, 0, len(current))
		for _, item := range current {
			keys = append(keys, item.Key)
		}
		return keys, true
	case map[string]any:
		keys := make([]any, 0, len(current))
		for _, k := range slices.Sorted(maps.Keys(current)) {
			keys = append(keys, k)
		}
		return keys, true
	case map[any]any:
		return sortedAnyKeys(current), true
	default:
		return nil, false
	}
}

// Values returns a mapping's values in the same order as Keys.
func Values(v any) ([]any, bool) {
	switch current := v.(type) {
	case yaml.MapSlice:
		values := make([]any, 0, len(current))
		for _, item := range current {
			values = append(values, item.Value)
		}
		return values, true
	case map[string]any:
		values := make([]any, 0, len(current))
		for _, k := range slices.Sorted(maps.Keys(current)) {
			values = append(values, current[k])
		}
		return values, true
	case map[any]any:
		keys := sortedAnyKeys(current)
		values := make([]any, 0, len(keys))
		for _, k := range keys {
			values = append(values, current[k])
		}
		return values, true
	default:
		return nil, false
	}
}

// Sub looks up a string key in a mapping. The second result reports
// whether the key exists; keys that are not strings never match.
func Sub(v any, key string) (any, bool) {
	switch current := v.(type) {
	case yaml.MapSlice:
		for _, item := range current {
			if k, ok := item.Key.(string); ok && k == key {
				return item.Value, true
			}
		}
		return nil, false
	case map[string]any:
		found, ok := current[key]
		return found, ok
	case map[any]any:
		found, ok := current[key]
		return found, ok
	default:
		return nil, false
	}
}

// Index looks up an integer key in a mapping. Keys compare numerically, so
// a document key 3 matches regardless of its decoded width.
func Index(v any, n int) (any, bool) {
	switch current := v.(type) {
	case yaml.MapSlice:
		for _, item := range current {
			if k, ok := Int(item.Key); ok && k == n {
				return item.Value, true
			}
		}
		return nil, false
	case map[string]any:
		return nil, false
	case map[any]any:
		for k, found := range current {
			if converted, ok := Int(k); ok && converted == n {
				return found, true
			}
		}
		return nil, false
	default:
		return nil, false
	}
}

func sortedAnyKeys(m map[any]any) []any {
	keys := make([]any, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b any) int {
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	})
	return keys
}
