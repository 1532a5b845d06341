/*
 * split_test.go, part of gocesmd.
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
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(Te *testing.T, name string) string {
	Te.Helper()
	b, err := os.ReadFile("test/" + name)
	if err != nil {
		Te.Fatal(err)
	}
	return string(b)
}

func TestSplitSingle(Te *testing.T) {
	text := readFixture(Te, "single.V2")
	blocks, err := Split(text)
	require.NoError(Te, err)
	require.Len(Te, blocks, 1)
	assert.Equal(Te, Block{Start: 0, End: len(text), Chan: 1}, blocks[0])
	assert.Equal(Te, text, blocks[0].Text(text))
}

func TestSplitMulti(Te *testing.T) {
	text := readFixture(Te, "multi.V2")
	blocks, err := Split(text)
	require.NoError(Te, err)
	require.Len(Te, blocks, 3)
	var b strings.Builder
	prev := 0
	for i, v := range blocks {
		assert.Equal(Te, i+1, v.Chan)
		assert.Equal(Te, prev, v.Start, "blocks must be contiguous")
		prev = v.End
		b.WriteString(v.Text(text))
		if i > 0 {
			assert.True(Te, strings.HasPrefix(v.Text(text), "Corrected accelerogram"))
		}
	}
	assert.Equal(Te, len(text), prev)
	assert.Equal(Te, text, b.String())
	assert.Equal(Te, 3, CountChannels(text))
}

func TestSplitPreamble(Te *testing.T) {
	text := "some archive banner\n\nCORRECTED ACCELEROGRAM  CHAN 7: 90 Deg\nrest\n"
	blocks, err := Split(text)
	require.NoError(Te, err)
	require.Len(Te, blocks, 1)
	assert.Equal(Te, 0, blocks[0].Start)
	assert.Equal(Te, 7, blocks[0].Chan)
}

func TestSplitNoHeader(Te *testing.T) {
	for _, text := range []string{
		"",
		"just some text\nwith no channel header\n",
		"Corrected accelerogram without a channel number\n",
		"Uncorrected accelerogram Chan 1:\n",
	} {
		_, err := Split(text)
		var fe *FormatError
		require.True(Te, errors.As(err, &fe), "%q should fail", text)
		assert.Equal(Te, Structural, fe.Category)
		assert.Equal(Te, NoHeader, fe.Reason)
		assert.Equal(Te, 0, CountChannels(text))
	}
}

func TestLines(Te *testing.T) {
	text := "a\r\nbb\n\nccc"
	ls := lines(text)
	got := make([]string, len(ls))
	for i, l := range ls {
		got[i] = l.text(text)
	}
	assert.Equal(Te, []string{"a", "bb", "", "ccc"}, got)
	assert.Equal(Te, 4, len(lines("a\nb\nc\nd\n")))
}

func TestFindWord(Te *testing.T) {
	assert.Equal(Te, 23, findWord("corrected accelerogram chan 1", "chan"))
	assert.Equal(Te, -1, findWord("end of data for channel 1", "chan"))
	assert.Equal(Te, -1, findWord("xml: 2", "ml:"))
	assert.Equal(Te, 14, findWord("hypocenter: x ml: 6.4", "ml:"))
}

func TestParseFloat(Te *testing.T) {
	for s, want := range map[string]float64{"1.5": 1.5, "-2.0E-01": -0.2, "1.0D-03": 0.001, "+3": 3} {
		got, err := parseFloat(s)
		if assert.NoError(Te, err, s) {
			assert.InDelta(Te, want, got, 1e-12, s)
		}
	}
	for _, s := range []string{"NaN", "Inf", "-inf", "infinity", "0x1p-2", "1_000", "-", "."} {
		_, err := parseFloat(s)
		assert.Error(Te, err, s)
	}
}
