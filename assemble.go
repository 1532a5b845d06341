/*
 * assemble.go, part of gocesmd.
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

import "strings"

var unitKeys = map[SectionName]string{
	Accel: KeyAccelerationUnits,
	Veloc: KeyVelocityUnits,
	Displ: KeyDisplacementUnits,
}

// Assemble builds a Record from the metadata of a channel and its series. The sample interval
// is taken from the time_interval field of md, which must be positive. Velocity and displacement,
// when present, must have as many samples as the acceleration. The sections, if given, provide
// the units fields of the record's metadata.
func Assemble(md Metadata, accel Series, vel, disp Optional, sections ...Section) (*Record, error) {
	v, _ := md.Get(KeyInterval)
	dt, ok := v.Number()
	if !ok {
		return nil, newFormatError(Structural, MissingField, KeyInterval, "Assemble")
	}
	if dt <= 0 {
		return nil, newFormatError(Malformed, BadInterval, KeyInterval, "Assemble")
	}
	n := accel.Len()
	if s, ok := vel.Get(); ok && s.Len() != n {
		return nil, newFormatError(Inconsistent, LengthMismatch, string(Veloc), "Assemble")
	}
	if s, ok := disp.Get(); ok && s.Len() != n {
		return nil, newFormatError(Inconsistent, LengthMismatch, string(Displ), "Assemble")
	}
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) * dt
	}
	r := &Record{time: Series{v: t}, accel: accel, vel: vel, disp: disp, dt: dt}
	if c, ok := md.Get(KeyChannel); ok {
		if ch, ok := c.Int(); ok {
			r.channel = int(ch)
		}
	}
	if s, ok := md.Get(KeyFilepath); ok {
		r.source, _ = s.Str()
	}
	units := map[string]Value{
		KeyAccelerationUnits: NullValue(),
		KeyVelocityUnits:     NullValue(),
		KeyDisplacementUnits: NullValue(),
	}
	for _, sec := range sections {
		if k, ok := unitKeys[sec.Name]; ok && sec.Units != "" {
			units[k] = StringValue(sec.Units)
		}
	}
	//header fields, then the section-derived ones, then whatever else the header had.
	var head, tail []Field
	for _, f := range md.Fields() {
		if _, ok := units[f.Key]; ok || f.Key == KeyNpts {
			continue
		}
		if strings.HasPrefix(f.Key, ExtraPrefix) {
			tail = append(tail, f)
			continue
		}
		head = append(head, f)
	}
	head = append(head,
		Field{KeyNpts, IntValue(int64(n))},
		Field{KeyAccelerationUnits, units[KeyAccelerationUnits]},
		Field{KeyVelocityUnits, units[KeyVelocityUnits]},
		Field{KeyDisplacementUnits, units[KeyDisplacementUnits]},
	)
	r.md = NewMetadata(append(head, tail...)...)
	return r, nil
}
