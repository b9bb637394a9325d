// Copyright (c) 2026 The recfmt Authors.
// SPDX-License-Identifier: MIT

package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Record is one result row: an ordered mapping from field name to a scalar
// value. Field order is insertion order and is meaningful — it drives column
// order for CSV/TSV/table output and key order for JSON output. All records
// in a batch are assumed to share the first record's field set.
type Record struct {
	keys   []string
	values map[string]any
}

// New returns an empty Record.
func New() *Record {
	return &Record{values: make(map[string]any)}
}

// FromPairs builds a Record from alternating key/value arguments. Intended
// for literals and tests; panics on an odd argument count or a non-string
// key, which are programmer errors.
func FromPairs(kv ...any) *Record {
	if len(kv)%2 != 0 {
		panic("record.FromPairs: odd argument count")
	}
	r := New()
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("record.FromPairs: key %v is not a string", kv[i]))
		}
		r.Set(key, kv[i+1])
	}
	return r
}

// Set stores value under key. A new key is appended to the field order; an
// existing key keeps its position.
func (r *Record) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key and whether the key exists.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Value returns the value stored under key, or nil when absent.
func (r *Record) Value(key string) any {
	return r.values[key]
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the field names in insertion order. The returned slice is
// shared; callers must not modify it.
func (r *Record) Keys() []string {
	return r.keys
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// SerializationError reports a value that has no JSON representation under
// the scalar model (not a primitive, not a time, not a JSON composite).
type SerializationError struct {
	Value any
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("value of type %T is not serializable", e.Value)
}

// FormatTime renders t as an ISO-8601 string. The offset suffix is omitted
// when the zone offset is zero, so 2024-03-15T10:30:00 UTC comes back as
// exactly "2024-03-15T10:30:00".
func FormatTime(t time.Time) string {
	if _, offset := t.Zone(); offset == 0 {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04:05-07:00")
}

// MarshalJSON emits the record as a JSON object with keys in field order.
// time.Time values serialize as ISO-8601 strings; an unsupported value type
// aborts with a *SerializationError.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := marshalValue(r.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalValue encodes a single field value, recursing into JSON composites
// so that nested times and unsupported types are handled uniformly.
func marshalValue(v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return []byte("null"), nil
	case time.Time:
		return json.Marshal(FormatTime(val))
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return json.Marshal(val)
	case *Record:
		return val.MarshalJSON()
	case []any:
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := marshalValue(item)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
		return buf.Bytes(), nil
	case map[string]any:
		// Plain maps carry no order; sort for a stable rendering.
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf.Write(kb)
			buf.WriteByte(':')
			vb, err := marshalValue(val[k])
			if err != nil {
				return nil, err
			}
			buf.Write(vb)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	default:
		return nil, &SerializationError{Value: v}
	}
}
