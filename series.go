/*
 * series.go, part of gocesmd.
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
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Series is a fixed-length sequence of samples. It is never modified after creation.
type Series struct {
	v []float64
}

// NewSeries returns a Series with a copy of the given values.
func NewSeries(v []float64) Series {
	c := make([]float64, len(v))
	copy(c, v)
	return Series{v: c}
}

func (s Series) Len() int { return len(s.v) }

// At returns the ith sample. It panics if i is out of range.
func (s Series) At(i int) float64 { return s.v[i] }

// Values returns a copy of the samples.
func (s Series) Values() []float64 {
	c := make([]float64, len(s.v))
	copy(c, s.v)
	return c
}

// Equal returns true if both series have the same samples.
func (s Series) Equal(o Series) bool {
	return floats.Equal(s.v, o.v)
}

// Optional is a series that may be absent. The zero value is absent. An absent
// Optional is not the same as a present, empty, series.
type Optional struct {
	s  Series
	ok bool
}

// Absent returns an Optional without a series.
func Absent() Optional { return Optional{} }

// Present returns an Optional holding s.
func Present(s Series) Optional { return Optional{s: s, ok: true} }

// Get returns the series and true, or an empty Series and false if the Optional is absent.
func (o Optional) Get() (Series, bool) { return o.s, o.ok }

func (o Optional) IsPresent() bool { return o.ok }

func (o Optional) Equal(p Optional) bool {
	if o.ok != p.ok {
		return false
	}
	return !o.ok || o.s.Equal(p.s)
}

// ReadSeries reads the payload of sec, from the block where sec was located, into
// a Series of exactly sec.Count samples. Values are read across lines. Lines are split on blanks,
// and lines that don't split into numbers that way are read as fixed-width columns of sec.Width characters.
// A format descriptor line right after the marker is skipped. Lines without numbers that
// follow a complete payload are ignored. A payload that stops short, followed only by
// lines without numbers, is truncated rather than malformed.
func ReadSeries(block string, sec Section) (Series, error) {
	payload := block[sec.Start:sec.End]
	vals := make([]float64, 0, sec.Count)
	name := string(sec.Name)
	ls := lines(payload)
	for i, l := range ls {
		raw := l.text(payload)
		t := strings.TrimSpace(raw)
		if t == "" {
			continue
		}
		if len(vals) == 0 && t[0] == '(' {
			continue
		}
		row, ok := parseRow(raw, sec.Width)
		if len(vals) >= sec.Count {
			if ok && len(row) > 0 {
				return Series{}, newFormatError(Inconsistent, Overlong, name, "ReadSeries")
			}
			continue
		}
		if !ok {
			if len(vals) > 0 && !moreData(payload, ls[i+1:], sec.Width) {
				break
			}
			return Series{}, newFormatError(Malformed, BadValue, name, "ReadSeries")
		}
		vals = append(vals, row...)
		if len(vals) > sec.Count {
			return Series{}, newFormatError(Inconsistent, Overlong, name, "ReadSeries")
		}
	}
	if len(vals) < sec.Count {
		return Series{}, newFormatError(Inconsistent, Truncated, name, "ReadSeries")
	}
	return Series{v: vals}, nil
}

// moreData tells whether any of ls reads as a row of numbers.
func moreData(payload string, ls []line, width int) bool {
	for _, l := range ls {
		if row, ok := parseRow(l.text(payload), width); ok && len(row) > 0 {
			return true
		}
	}
	return false
}

// parseRow reads the numbers in a data line.
func parseRow(raw string, width int) ([]float64, bool) {
	fields := strings.Fields(raw)
	ret := make([]float64, 0, len(fields))
	ok := true
	for _, f := range fields {
		v, err := parseFloat(f)
		if err != nil {
			ok = false
			break
		}
		ret = append(ret, v)
	}
	if ok {
		return ret, true
	}
	if width <= 0 {
		width = defaultWidth
	}
	ret = ret[:0]
	for i := 0; i < len(raw); i += width {
		f := strings.TrimSpace(raw[i:min(i+width, len(raw))])
		if f == "" {
			continue
		}
		v, err := parseFloat(f)
		if err != nil {
			return nil, false
		}
		ret = append(ret, v)
	}
	return ret, true
}

// ReadOptional reads the named section if secs has it, and returns an absent Optional otherwise.
func ReadOptional(block string, secs map[SectionName]Section, name SectionName) (Optional, error) {
	sec, ok := secs[name]
	if !ok {
		return Absent(), nil
	}
	s, err := ReadSeries(block, sec)
	if err != nil {
		return Absent(), err
	}
	return Present(s), nil
}
