/*
 * header.go, part of gocesmd.
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
	"fmt"
	"path/filepath"
)

// ExtractHeader reads the header of one channel block (as given by Split) into a Metadata.
// source is the path of the file the block comes from, stored as given. It can be empty.
//
// Labels are searched in the 30 lines starting at the header-start line, or until the first
// data section, whichever comes first. Every header key is present in the returned Metadata,
// with Null values for labels not found. Lines in that region that contain text but no known
// label are kept, in order, as header_line_NN fields, where NN is the line number within the block.
func ExtractHeader(block string, source string) (Metadata, error) {
	ls := lines(block)
	marker := -1
	for i, l := range ls {
		if _, ok := markerChan(l.text(block)); ok {
			marker = i
			break
		}
	}
	if marker < 0 {
		return Metadata{}, newFormatError(Structural, NoHeader, "", "ExtractHeader")
	}
	found := make(map[string][]Field, len(labels))
	var extras []Field
	for i := marker; i < len(ls) && i < marker+headerRegionLines; i++ {
		raw := ls[i].text(block)
		c := collapse(raw)
		f := fold(c)
		if isSectionMarker(f) {
			break
		}
		matched := false
		for _, lab := range labels {
			if lab.marker && i != marker {
				continue
			}
			if _, done := found[lab.name]; done {
				continue
			}
			fields, err := matchLabel(lab, c, f, raw)
			if err != nil {
				return Metadata{}, errDecorate(err, "ExtractHeader", source, 0)
			}
			if fields != nil {
				found[lab.name] = fields
				matched = true
			}
		}
		if !matched && i != marker && hasLetter(c) {
			extras = append(extras, Field{fmt.Sprintf("%s%02d", ExtraPrefix, i+1), StringValue(c)})
		}
	}
	for _, lab := range labels {
		if _, ok := found[lab.name]; lab.required && !ok {
			return Metadata{}, errDecorate(newFormatError(Structural, MissingField, lab.field, "ExtractHeader"), "", source, 0)
		}
	}
	md := NewMetadata()
	for _, k := range headerKeys {
		md.set(k, NullValue())
	}
	if source != "" {
		md.set(KeyFilename, StringValue(filepath.Base(source)))
		md.set(KeyFilepath, StringValue(source))
	}
	for _, lab := range labels {
		if lab.fallback != "" {
			if _, ok := found[lab.fallback]; ok {
				continue
			}
		}
		for _, fi := range found[lab.name] {
			md.set(fi.Key, fi.Value)
		}
	}
	for _, e := range extras {
		md.set(e.Key, e.Value)
	}
	return md, nil
}

// matchLabel tries every spelling of lab on the collapsed line c (f is its folded version).
// It returns nil fields if the label is not on the line.
func matchLabel(lab label, c, f, raw string) ([]Field, error) {
	for _, k := range lab.keys {
		j := findWord(f, k)
		if j < 0 {
			continue
		}
		sc := &scanner{s: c, pos: j + len(k), start: j}
		fields, err := lab.parse(sc, raw)
		if err != nil || fields != nil {
			return fields, err
		}
	}
	return nil, nil
}
