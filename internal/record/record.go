// Package record provides a format-neutral view over a decoded settings
// document. JSON, TOML and YAML decoders all produce nested maps and
// slices, but they disagree on numeric types (float64, int64, int) and
// on the concrete map type. Record hides those differences behind lenient
// getters that fall back to a caller-supplied default whenever a key is
// missing or holds a value of the wrong shape.
package record

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// Record is one table of settings keyed by string.
type Record map[string]any

// New returns an empty record.
func New() Record { return make(Record) }

// Has reports whether key is present, whatever its value.
func (r Record) Has(key string) bool {
	_, ok := r[key]
	return ok
}

// Set stores v under key and returns r for chaining.
func (r Record) Set(key string, v any) Record {
	r[key] = v
	return r
}

// Keys returns the keys of r in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// LookupBool returns the boolean stored under key.
func (r Record) LookupBool(key string) (bool, bool) {
	v, ok := r[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// Bool returns the boolean under key or def.
func (r Record) Bool(key string, def bool) bool {
	if b, ok := r.LookupBool(key); ok {
		return b
	}
	return def
}

// LookupInt returns the integer stored under key. Floats are accepted
// only when they carry no fractional part.
func (r Record) LookupInt(key string) (int, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	return AsInt(v)
}

// Int returns the integer under key or def.
func (r Record) Int(key string, def int) int {
	if n, ok := r.LookupInt(key); ok {
		return n
	}
	return def
}

// LookupFloat returns the number stored under key as a float64.
func (r Record) LookupFloat(key string) (float64, bool) {
	v, ok := r[key]
	if !ok {
		return 0, false
	}
	return AsFloat(v)
}

// Float returns the number under key or def.
func (r Record) Float(key string, def float64) float64 {
	if f, ok := r.LookupFloat(key); ok {
		return f
	}
	return def
}

// String returns the string under key.
func (r Record) String(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Sub returns the nested record under key.
func (r Record) Sub(key string) (Record, bool) {
	v, ok := r[key]
	if !ok {
		return nil, false
	}
	return AsRecord(v)
}

// Items returns the raw list stored under key. Entries are left
// undecoded so callers can decide how to treat malformed ones.
func (r Record) Items(key string) ([]any, bool) {
	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}
	switch l := v.(type) {
	case []any:
		return l, true
	case []Record:
		out := make([]any, len(l))
		for i := range l {
			out[i] = l[i]
		}
		return out, true
	case []map[string]any:
		out := make([]any, len(l))
		for i := range l {
			out[i] = l[i]
		}
		return out, true
	case []string:
		out := make([]any, len(l))
		for i := range l {
			out[i] = l[i]
		}
		return out, true
	default:
		return nil, false
	}
}

// Strings returns the list under key with every entry rendered as text.
// A missing or non-list value yields nil.
func (r Record) Strings(key string) []string {
	items, ok := r.Items(key)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		if it == nil {
			continue
		}
		if s, ok := it.(string); ok {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprint(it))
	}
	return out
}

// AsRecord converts a decoded table into a Record.
func AsRecord(v any) (Record, bool) {
	switch m := v.(type) {
	case Record:
		return m, m != nil
	case map[string]any:
		return Record(m), m != nil
	case map[any]any:
		out := make(Record, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// AsInt converts a decoded number into an int.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(f)
	default:
		return 0, false
	}
}

// AsFloat converts a decoded number into a float64.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		if i, ok := AsInt(v); ok {
			return float64(i), true
		}
		return 0, false
	}
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int(f), true
}
