/*
 * interchange.go, part of gocesmd.
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

//Package interchange serializes Records as self-describing documents, in JSON or
//MessagePack. A document holds the metadata, in order and with the type of each value,
//and the series of the record. Velocity and displacement are left out when the record
//lacks them.
package interchange

import (
	"fmt"
	"math"

	cesmd "github.com/rmera/gocesmd"
)

// Entry is one metadata field. Type is one of "null", "string", "int" and "float".
type Entry struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Document is the serializable form of a Record.
type Document struct {
	Metadata     []Entry    `json:"metadata"`
	Time         []float64  `json:"time"`
	Acceleration []float64  `json:"acceleration"`
	//nil when absent, empty when present without samples
	Velocity     *[]float64 `json:"velocity,omitempty"`
	Displacement *[]float64 `json:"displacement,omitempty"`
}

// FromRecord returns the document for r.
func FromRecord(r *cesmd.Record) *Document {
	D := &Document{
		Time:         r.Time().Values(),
		Acceleration: r.Acceleration().Values(),
	}
	for _, f := range r.Metadata().Fields() {
		D.Metadata = append(D.Metadata, Entry{f.Key, f.Value.Kind().String(), f.Value.Interface()})
	}
	if v, ok := r.Velocity().Get(); ok {
		vs := v.Values()
		D.Velocity = &vs
	}
	if d, ok := r.Displacement().Get(); ok {
		ds := d.Values()
		D.Displacement = &ds
	}
	return D
}

// toInt accepts the integer types the decoders may produce, and floats with no fractional part.
func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n == math.Trunc(n) && math.Abs(n) < 1<<53 {
			return int64(n), true
		}
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	if i, ok := toInt(v); ok {
		return float64(i), true
	}
	return 0, false
}

// value returns the metadata value of the entry.
func (E Entry) value() (cesmd.Value, error) {
	switch E.Type {
	case cesmd.KindNull.String():
		return cesmd.NullValue(), nil
	case cesmd.KindString.String():
		if s, ok := E.Value.(string); ok {
			return cesmd.StringValue(s), nil
		}
	case cesmd.KindInt.String():
		if i, ok := toInt(E.Value); ok {
			return cesmd.IntValue(i), nil
		}
	case cesmd.KindFloat.String():
		if f, ok := toFloat(E.Value); ok {
			return cesmd.FloatValue(f), nil
		}
	default:
		return cesmd.Value{}, fmt.Errorf("interchange: field %s: unknown type %q", E.Key, E.Type)
	}
	return cesmd.Value{}, fmt.Errorf("interchange: field %s: value %v is not of type %s", E.Key, E.Value, E.Type)
}

// Record rebuilds the Record the document was made from. The time axis is recomputed
// from the time_interval field, and the series lengths are checked as when parsing.
func (D *Document) Record() (*cesmd.Record, error) {
	fields := make([]cesmd.Field, 0, len(D.Metadata))
	var secs []cesmd.Section
	units := map[string]cesmd.SectionName{
		cesmd.KeyAccelerationUnits: cesmd.Accel,
		cesmd.KeyVelocityUnits:     cesmd.Veloc,
		cesmd.KeyDisplacementUnits: cesmd.Displ,
	}
	for _, e := range D.Metadata {
		v, err := e.value()
		if err != nil {
			return nil, err
		}
		fields = append(fields, cesmd.Field{Key: e.Key, Value: v})
		if name, ok := units[e.Key]; ok {
			if s, ok := v.Str(); ok {
				secs = append(secs, cesmd.Section{Name: name, Units: s})
			}
		}
	}
	opt := func(v *[]float64) cesmd.Optional {
		if v == nil {
			return cesmd.Absent()
		}
		return cesmd.Present(cesmd.NewSeries(*v))
	}
	r, err := cesmd.Assemble(cesmd.NewMetadata(fields...), cesmd.NewSeries(D.Acceleration), opt(D.Velocity), opt(D.Displacement), secs...)
	if err != nil {
		return nil, fmt.Errorf("interchange: %w", err)
	}
	if len(D.Time) != r.Len() {
		return nil, fmt.Errorf("interchange: %d time values for %d samples", len(D.Time), r.Len())
	}
	return r, nil
}
