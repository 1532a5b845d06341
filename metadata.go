/*
 * metadata.go, part of gocesmd.
 *
 * Copyright 2026 The gocesmd authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package cesmd

import (
	"math"
	"strconv"
)

// Kind is the type of scalar held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	}
	return "null"
}

// Value is a scalar metadata value. The zero Value is Null, which marks a
// field the format defines but the file didn't provide.
type Value struct {
	kind Kind
	s    string
	i    int64
	f    float64
}

// NullValue returns the explicit "absent" value.
func NullValue() Value { return Value{} }

func StringValue(s string) Value { return Value{kind: KindString, s: s} }

func IntValue(i int64) Value { return Value{kind: KindInt, i: i} }

func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string held by v, and whether v is a string.
func (v Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Int returns the integer held by v, and whether v is an integer.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the float held by v, and whether v is a float.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Number returns v as a float64 if v is either an integer or a float.
func (v Value) Number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	}
	return 0, false
}

// Interface returns nil, a string, an int64 or a float64.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	}
	return nil
}

// String returns the text form of v. Floats use the shortest representation that
// reads back to the same number. Null gives the empty string; encoders pick their
// own null marker.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	}
	return ""
}

// Equal reports whether both values have the same kind and content. NaN floats are equal to each other.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.s == o.s
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	}
	return true
}

// Field is a key-value pair of Metadata.
type Field struct {
	Key   string
	Value Value
}

// Metadata is an ordered, read-only set of named scalar fields.
type Metadata struct {
	fields []Field
	index  map[string]int
}

// NewMetadata builds a Metadata with the given fields, in order. If a key is repeated,
// the later value replaces the earlier one, keeping the earlier position.
func NewMetadata(fields ...Field) Metadata {
	m := Metadata{fields: make([]Field, 0, len(fields)), index: make(map[string]int, len(fields))}
	for _, f := range fields {
		m.set(f.Key, f.Value)
	}
	return m
}

func (m *Metadata) set(key string, v Value) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.fields[i].Value = v
		return
	}
	m.index[key] = len(m.fields)
	m.fields = append(m.fields, Field{key, v})
}

// Get returns the value for key. The boolean is false only if the key is
// not part of the Metadata at all. A known but absent field gives a Null value and true.
func (m Metadata) Get(key string) (Value, bool) {
	i, ok := m.index[key]
	if !ok {
		return Value{}, false
	}
	return m.fields[i].Value, true
}

// Len returns the number of fields.
func (m Metadata) Len() int { return len(m.fields) }

// Fields returns a copy of the fields, in order.
func (m Metadata) Fields() []Field {
	ret := make([]Field, len(m.fields))
	copy(ret, m.fields)
	return ret
}

// Keys returns the keys in order.
func (m Metadata) Keys() []string {
	ret := make([]string, len(m.fields))
	for i, f := range m.fields {
		ret[i] = f.Key
	}
	return ret
}

// Equal reports whether both Metadata have the same fields in the same order.
func (m Metadata) Equal(o Metadata) bool {
	if len(m.fields) != len(o.fields) {
		return false
	}
	for i, f := range m.fields {
		if f.Key != o.fields[i].Key || !f.Value.Equal(o.fields[i].Value) {
			return false
		}
	}
	return true
}
