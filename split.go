/*
 * split.go, part of gocesmd.
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

const markerPrefix = "corrected accelerogram"

// Block is the index range [Start, End) of one channel's header and data
// in the text given to Split. Chan is the channel number on its header-start line.
type Block struct {
	Start, End int
	Chan       int
}

// Text returns the part of src covered by the block. src must be the text that was split.
func (b Block) Text(src string) string {
	return src[b.Start:b.End]
}

// markerChan tells whether the given line starts a channel header, and, if so,
// returns the channel number in it.
func markerChan(l string) (int, bool) {
	f := fold(collapse(l))
	if !strings.HasPrefix(f, markerPrefix) {
		return 0, false
	}
	i := findWord(f, "chan")
	if i < 0 {
		return 0, false
	}
	n, _, ok := leadingInt(f[i+len("chan"):])
	return n, ok
}

// Split partitions the text of a V2 file into one Block per channel.
// A channel starts at each line beginning with "Corrected accelerogram" that
// carries a "Chan <n>" token. The first block always starts at offset 0, so the blocks
// are contiguous and cover the whole text. A text without any such line gives
// a structural FormatError.
func Split(text string) ([]Block, error) {
	var ret []Block
	for _, l := range lines(text) {
		n, ok := markerChan(l.text(text))
		if !ok {
			continue
		}
		if len(ret) > 0 {
			ret[len(ret)-1].End = l.start
		}
		ret = append(ret, Block{Start: l.start, End: len(text), Chan: n})
	}
	if len(ret) == 0 {
		return nil, newFormatError(Structural, NoHeader, "", "Split")
	}
	ret[0].Start = 0
	return ret, nil
}

// CountChannels returns the number of channel headers in text.
func CountChannels(text string) int {
	n := 0
	for _, l := range lines(text) {
		if _, ok := markerChan(l.text(text)); ok {
			n++
		}
	}
	return n
}
