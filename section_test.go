/*
 * section_test.go, part of gocesmd.
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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateSections(Te *testing.T) {
	text := readFixture(Te, "single.V2")
	secs, err := LocateSections(text)
	require.NoError(Te, err)
	require.Len(Te, secs, 3)
	units := map[SectionName]string{Accel: "cm/sec2", Veloc: "cm/sec", Displ: "cm"}
	prevEnd := 0
	for _, n := range SectionNames {
		s, ok := secs[n]
		require.True(Te, ok, string(n))
		assert.Equal(Te, n, s.Name)
		assert.Equal(Te, 16, s.Count)
		assert.Equal(Te, 0.02, s.Spacing)
		assert.Equal(Te, units[n], s.Units)
		assert.Equal(Te, 8, s.PerLine)
		assert.Equal(Te, 10, s.Width)
		assert.Less(Te, prevEnd, s.Start)
		assert.LessOrEqual(Te, s.Start, s.End)
		prevEnd = s.End
	}
	assert.Equal(Te, 13, secs[Accel].Line)
	//the displacement payload stops at the end-of-data line.
	assert.Less(Te, secs[Displ].End, len(text))
}

func TestLocateSectionsOptional(Te *testing.T) {
	secs, err := LocateSections(readFixture(Te, "accel_only.V2"))
	require.NoError(Te, err)
	assert.Len(Te, secs, 1)
	_, ok := secs[Veloc]
	assert.False(Te, ok)
}

func TestLocateSectionsErrors(Te *testing.T) {
	dup := "    2 points of accel data\n 1 2\n    2 points of ACCEL data\n 1 2\n"
	_, err := LocateSections(dup)
	var fe *FormatError
	require.True(Te, errors.As(err, &fe))
	assert.Equal(Te, Structural, fe.Category)
	assert.Equal(Te, DupSection, fe.Reason)
	assert.Equal(Te, "accel", fe.Field)

	_, err = LocateSections("many points of veloc data\n")
	require.True(Te, errors.As(err, &fe))
	assert.Equal(Te, Malformed, fe.Category)
	assert.Equal(Te, BadCount, fe.Reason)
	assert.Equal(Te, "veloc", fe.Field)
}

func TestMarkerDetails(Te *testing.T) {
	s := Section{PerLine: defaultPerLine, Width: defaultWidth}
	c := "2000 points of accel data equally spaced at .005 sec, in units of g: (Format: (6E13.5))"
	markerDetails(&s, c, fold(c))
	assert.Equal(Te, 0.005, s.Spacing)
	assert.Equal(Te, "g", s.Units)
	assert.Equal(Te, 6, s.PerLine)
	assert.Equal(Te, 13, s.Width)
}

func sectionIn(Te *testing.T, text string, n SectionName) Section {
	Te.Helper()
	secs, err := LocateSections(text)
	require.NoError(Te, err)
	s, ok := secs[n]
	require.True(Te, ok)
	return s
}

func TestReadSeries(Te *testing.T) {
	text := readFixture(Te, "single.V2")
	s, err := ReadSeries(text, sectionIn(Te, text, Accel))
	require.NoError(Te, err)
	want := []float64{0.0, 1.25, -3.5, 7.75, -15.5, 10.0, -4.25, 2.0, 0.5, -0.75, 1.0, -1.25, 0.0, 0.25, -0.125, 0.0625}
	assert.Equal(Te, want, s.Values())
	assert.Equal(Te, -15.5, s.At(4))
}

func TestReadSeriesPacked(Te *testing.T) {
	//values glued together by their signs can only be read by columns.
	text := "    5 points of accel data equally spaced at .01 sec (5f10.6)\n" +
		"(5f10.6)\n" +
		" -0.123456-0.234567  0.345678 -1.000000\n" +
		"  2.5D-01\n" +
		"End of data for channel 1\n"
	s, err := ReadSeries(text, sectionIn(Te, text, Accel))
	require.NoError(Te, err)
	assert.Equal(Te, []float64{-0.123456, -0.234567, 0.345678, -1, 0.25}, s.Values())
}

func TestReadSeriesTrailing(Te *testing.T) {
	//text after a complete payload is not data.
	text := "    2 points of accel data\n 1.0 2.0\n  checksum ok\n"
	s, err := ReadSeries(text, sectionIn(Te, text, Accel))
	require.NoError(Te, err)
	assert.Equal(Te, 2, s.Len())
}

func TestReadSeriesErrors(Te *testing.T) {
	cases := []struct {
		text   string
		reason string
		cat    Category
	}{
		{"    3 points of accel data\n 1.0 2.0\n", Truncated, Inconsistent},
		{"    3 points of accel data\n 1.0 2.0\n    2 points of veloc data\n 1 2\n", Truncated, Inconsistent},
		{"    3 points of accel data\n 1.0 2.0\nEnd of data for channel 1\n 3.0\n", Truncated, Inconsistent},
		{"    2 points of accel data\n 1.0 2.0 3.0\n", Overlong, Inconsistent},
		{"    2 points of accel data\n 1.0 2.0\n 3.0\n", Overlong, Inconsistent},
		{"    2 points of accel data\n 1.0 abc\n", BadValue, Malformed},
		{"    3 points of accel data\n 0.0 1.0\n/&\n", Truncated, Inconsistent},
		{"    3 points of accel data\n 0.0 1.0\n/&\n 2.0\n", BadValue, Malformed},
		{"    3 points of accel data\n 0.0 NaN Inf\n", BadValue, Malformed},
		{"    3 points of accel data\n 0.0 0x1p-2 1.0\n", BadValue, Malformed},
	}
	for i, c := range cases {
		_, err := ReadSeries(c.text, sectionIn(Te, c.text, Accel))
		var fe *FormatError
		if !assert.True(Te, errors.As(err, &fe), "case %d", i) {
			continue
		}
		assert.Equal(Te, c.reason, fe.Reason, "case %d", i)
		assert.Equal(Te, c.cat, fe.Category, "case %d", i)
		assert.Equal(Te, "accel", fe.Field, "case %d", i)
	}
}

func TestReadOptional(Te *testing.T) {
	text := readFixture(Te, "accel_only.V2")
	secs, err := LocateSections(text)
	require.NoError(Te, err)
	o, err := ReadOptional(text, secs, Veloc)
	require.NoError(Te, err)
	assert.False(Te, o.IsPresent())
	s, ok := o.Get()
	assert.False(Te, ok)
	assert.Equal(Te, 0, s.Len())
	assert.False(Te, o.Equal(Present(NewSeries(nil))), "absent is not an empty series")
}
