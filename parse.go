/*
 * parse.go, part of gocesmd.
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
	"bufio"
	"io"
	"os"
	"strings"
)

// Parse reads the text of a V2 file and returns one Record per channel, in the order
// they appear in the text. source is the path of the file, stored as given in each
// record's metadata. It can be empty.
// Any problem with any channel fails the whole file. The error is then always a *FormatError
// carrying source and the 1-based index of the failing channel.
func Parse(text, source string) ([]*Record, error) {
	blocks, err := Split(text)
	if err != nil {
		return nil, errDecorate(err, "Parse", source, 0)
	}
	ret := make([]*Record, 0, len(blocks))
	for i, b := range blocks {
		r, err := parseBlock(b.Text(text), source)
		if err != nil {
			return nil, errDecorate(err, "Parse", source, i+1)
		}
		ret = append(ret, r)
	}
	return ret, nil
}

func parseBlock(block, source string) (*Record, error) {
	md, err := ExtractHeader(block, source)
	if err != nil {
		return nil, err
	}
	secs, err := LocateSections(block)
	if err != nil {
		return nil, err
	}
	asec, ok := secs[Accel]
	if !ok {
		return nil, newFormatError(Structural, NoAccel, string(Accel), "parseBlock")
	}
	accel, err := ReadSeries(block, asec)
	if err != nil {
		return nil, err
	}
	vel, err := ReadOptional(block, secs, Veloc)
	if err != nil {
		return nil, err
	}
	disp, err := ReadOptional(block, secs, Displ)
	if err != nil {
		return nil, err
	}
	used := make([]Section, 0, len(secs))
	for _, n := range SectionNames {
		if s, ok := secs[n]; ok {
			used = append(used, s)
		}
	}
	return Assemble(md, accel, vel, disp, used...)
}

// ParseReader reads a whole V2 file from r and parses it. See Parse.
func ParseReader(r io.Reader, source string) ([]*Record, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, bufio.NewReader(r)); err != nil {
		return nil, err
	}
	return Parse(b.String(), source)
}

// ParseFile opens and parses the V2 file with the given name. The name is
// the record's source.
func ParseFile(name string) ([]*Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseReader(f, name)
}
