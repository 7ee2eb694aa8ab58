package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// OrderedMap is a JSON object decoded with its key order preserved. The detail
// page picks "the first value" of several objects, which only has a meaning
// in document order.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap builds a map from parallel key and value slices.
func NewOrderedMap[V any](keys []string, values []V) OrderedMap[V] {
	m := OrderedMap[V]{values: make(map[string]V, len(keys))}
	for i, k := range keys {
		if i >= len(values) {
			break
		}
		m.Set(k, values[i])
	}
	return m
}

// Set stores v under k, appending k if it is new.
func (m *OrderedMap[V]) Set(k string, v V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[k]; !exists {
		m.keys = append(m.keys, k)
	}
	m.values[k] = v
}

func (m OrderedMap[V]) Get(k string) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

func (m OrderedMap[V]) Len() int { return len(m.keys) }

func (m OrderedMap[V]) IsZero() bool { return len(m.keys) == 0 }

func (m OrderedMap[V]) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Values returns the values in key order.
func (m OrderedMap[V]) Values() []V {
	if len(m.keys) == 0 {
		return nil
	}
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}
	return out
}

// UnmarshalJSON decodes an object token by token. null leaves the map empty;
// any other non-object is a *json.UnmarshalTypeError.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	*m = OrderedMap[V]{}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &json.UnmarshalTypeError{Value: jsonKind(tok), Type: reflect.TypeOf(*m)}
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("ordered map: expected string key, got %v", tok)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("ordered map: value for %q: %w", key, err)
		}
		m.Set(key, v)
	}

	_, err = dec.Token()
	return err
}

func jsonKind(tok json.Token) string {
	switch t := tok.(type) {
	case json.Delim:
		if t == '[' {
			return "array"
		}
		return "object"
	case string:
		return "string"
	case bool:
		return "bool"
	case float64, json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", tok)
	}
}

// MarshalJSON writes the object back in its original key order.
func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	if len(m.keys) == 0 {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
