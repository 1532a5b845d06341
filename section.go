/*
 * section.go, part of gocesmd.
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
	"strconv"
	"strings"
)

// SectionName identifies one of the three data sections of a channel.
type SectionName string

const (
	Accel SectionName = "accel"
	Veloc SectionName = "veloc"
	Displ SectionName = "displ"
)

// SectionNames lists the sections in the order they appear in a V2 channel.
var SectionNames = []SectionName{Accel, Veloc, Displ}

const (
	defaultPerLine = 8
	defaultWidth   = 10
	endOfData      = "end of data for channel"
)

// Section is a located data section in a channel block.
// Start and End delimit the payload (the lines after the marker) in the block.
type Section struct {
	Name    SectionName
	Count   int     //declared number of points
	Spacing float64 //declared sample spacing, 0 if the marker doesn't give one
	Units   string  //declared units, empty if not given
	PerLine int     //values per line, from the format descriptor
	Width   int     //width of each value, in characters
	Line    int     //0-based line of the marker in the block
	Start   int
	End     int
}

// sectionOf returns the section named by a folded, collapsed marker line, and the
// index where "points of" starts.
func sectionOf(f string) (SectionName, int, bool) {
	for _, n := range SectionNames {
		if i := strings.Index(f, "points of "+string(n)+" data"); i >= 0 {
			return n, i, true
		}
	}
	return "", -1, false
}

func isSectionMarker(f string) bool {
	_, _, ok := sectionOf(f)
	return ok
}

// LocateSections finds the data sections in a channel block. Each name appears at most
// once in the returned map. The point count is the integer right before "points" in the marker line.
// A marker with an unreadable count, or a section declared twice, gives a FormatError.
func LocateSections(block string) (map[SectionName]Section, error) {
	ret := make(map[SectionName]Section, len(SectionNames))
	var order []SectionName
	ls := lines(block)
	for i, l := range ls {
		f := fold(collapse(l.text(block)))
		name, at, ok := sectionOf(f)
		if !ok {
			if strings.Contains(f, endOfData) && len(order) > 0 {
				closeSection(ret, order[len(order)-1], l.start)
			}
			continue
		}
		if _, dup := ret[name]; dup {
			return nil, newFormatError(Structural, DupSection, string(name), "LocateSections")
		}
		before := strings.Fields(f[:at])
		if len(before) == 0 {
			return nil, newFormatError(Malformed, BadCount, string(name), "LocateSections")
		}
		count, err := strconv.Atoi(before[len(before)-1])
		if err != nil || count < 0 {
			return nil, newFormatError(Malformed, BadCount, string(name), "LocateSections")
		}
		if len(order) > 0 {
			closeSection(ret, order[len(order)-1], l.start)
		}
		sec := Section{Name: name, Count: count, PerLine: defaultPerLine, Width: defaultWidth, Line: i, End: len(block)}
		sec.Start = len(block)
		if i+1 < len(ls) {
			sec.Start = ls[i+1].start
		}
		markerDetails(&sec, collapse(l.text(block)), f)
		ret[name] = sec
		order = append(order, name)
	}
	return ret, nil
}

// closeSection ends the payload of a section at offset end, unless it was already closed.
func closeSection(secs map[SectionName]Section, name SectionName, end int) {
	s := secs[name]
	if s.End > end {
		s.End = end
		if s.Start > end {
			s.Start = end
		}
		secs[name] = s
	}
}

// markerDetails reads the optional spacing, units and Fortran format from a marker line.
// c is the collapsed line and f its folded version.
func markerDetails(sec *Section, c, f string) {
	if i := strings.Index(f, "equally spaced at"); i >= 0 {
		if v, _, ok := leadingNumber(c[i+len("equally spaced at"):]); ok {
			sec.Spacing = v
		}
	}
	if i := strings.Index(f, "in units of"); i >= 0 {
		u := strings.TrimSpace(cut(c[i+len("in units of"):], ":(,"))
		sec.Units = strings.TrimRight(u, ".")
	}
	//(8f10.3) and the like.
	for i := strings.IndexByte(f, '('); i >= 0 && i < len(f); {
		n, rest, ok := leadingInt(f[i+1:])
		if ok && len(rest) > 0 && strings.IndexByte("fegd", rest[0]) >= 0 {
			if w, _, ok := leadingInt(rest[1:]); ok && n > 0 && w > 0 {
				sec.PerLine, sec.Width = n, w
				return
			}
		}
		j := strings.IndexByte(f[i+1:], '(')
		if j < 0 {
			return
		}
		i += j + 1
	}
}
