/*
 * text.go, part of gocesmd.
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

// line is a line of some text, as byte offsets into it. The terminator
// ("\n" or "\r\n") is left out of [start, end).
type line struct {
	start, end int
}

func (l line) text(s string) string { return s[l.start:l.end] }

// lines splits s in lines. A trailing terminator does not produce an empty last line.
func lines(s string) []line {
	ret := make([]line, 0, strings.Count(s, "\n")+1)
	pos := 0
	for pos < len(s) {
		end, next := len(s), len(s)
		if nl := strings.IndexByte(s[pos:], '\n'); nl >= 0 {
			end, next = pos+nl, pos+nl+1
		}
		if end > pos && s[end-1] == '\r' {
			end--
		}
		ret = append(ret, line{pos, end})
		pos = next
	}
	return ret
}

// collapse squeezes every run of blanks into a single space and trims both ends.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// fold lowercases ASCII letters only, so byte offsets in the result match those of s.
func fold(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func isLetter(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		if isLetter(s[i]) {
			return true
		}
	}
	return false
}

// findWord returns the index of key in s, where key is not glued to a preceding
// letter or digit and, if key ends in a letter, not followed by another letter. -1 if absent.
func findWord(s, key string) int {
	for from := 0; from <= len(s)-len(key); {
		j := strings.Index(s[from:], key)
		if j < 0 {
			return -1
		}
		j += from
		before := j == 0 || !(isLetter(s[j-1]) || isDigit(s[j-1]))
		after := true
		if k := j + len(key); isLetter(key[len(key)-1]) && k < len(s) && isLetter(s[k]) {
			after = false
		}
		if before && after {
			return j
		}
		from = j + 1
	}
	return -1
}

// leadingInt returns the integer formed by the leading digits of s and the rest of s.
func leadingInt(s string) (int, string, bool) {
	s = strings.TrimLeft(s, " ")
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == 0 {
		return 0, s, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, s, false
	}
	return n, s[i:], true
}

// leadingNumber returns the floating-point number at the start of s, and the rest of s.
func leadingNumber(s string) (float64, string, bool) {
	s = strings.TrimLeft(s, " ")
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := 0
	for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
		if s[i] != '.' {
			digits++
		}
		i++
	}
	if digits == 0 {
		return 0, s, false
	}
	//exponent, only if it is complete.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E' || s[i] == 'd' || s[i] == 'D') {
		j := i + 1
		if j < len(s) && (s[j] == '-' || s[j] == '+') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	f, err := parseFloat(s[:i])
	if err != nil {
		return 0, s, false
	}
	return f, s[i:], true
}

// parseFloat is strconv.ParseFloat restricted to decimal numbers, that also takes
// Fortran double-precision exponents (1.0D-03). NaN, Inf and hex floats are errors.
func parseFloat(s string) (float64, error) {
	digits := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case isDigit(c):
			digits++
		case strings.IndexByte("+-.eEdD", c) < 0:
			return 0, &strconv.NumError{Func: "parseFloat", Num: s, Err: strconv.ErrSyntax}
		}
	}
	if digits == 0 {
		return 0, &strconv.NumError{Func: "parseFloat", Num: s, Err: strconv.ErrSyntax}
	}
	if strings.ContainsAny(s, "dD") {
		s = strings.NewReplacer("d", "e", "D", "e").Replace(s)
	}
	return strconv.ParseFloat(s, 64)
}

// cut returns the text of s before the first of the given delimiters.
func cut(s string, delims string) string {
	if i := strings.IndexAny(s, delims); i >= 0 {
		return s[:i]
	}
	return s
}
