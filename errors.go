/*
 * errors.go, part of gocesmd.
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
	"fmt"
	"strings"
)

// Error is the interface for errors that the packages in this library implement. The Decorate method
// allows to add and retrieve info from the error without changing its type or wrapping it.
// Each call returns the decoration slice resulting from the call. If passed an empty string, it just
// returns the current value.
type Error interface {
	Error() string
	Decorate(string) []string
}

// FileError is the interface for errors tied to a particular input file.
type FileError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// Category tells what kind of problem a FormatError reports.
type Category int

const (
	// Structural errors: no header, mandatory section missing, duplicated section.
	Structural Category = iota
	// Malformed errors: a numeric or textual field that can't be parsed, or a non-positive interval.
	Malformed
	// Inconsistent errors: declared counts that don't match the payload, or series of different lengths.
	Inconsistent
)

func (c Category) String() string {
	switch c {
	case Structural:
		return "structural"
	case Malformed:
		return "value"
	case Inconsistent:
		return "consistency"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Reasons used by the parser.
const (
	NoHeader       = "no V2 channel header found"
	NoAccel        = "mandatory acceleration section missing"
	DupSection     = "section declared more than once"
	MissingField   = "required header field missing"
	BadValue       = "unparsable value"
	BadInterval    = "sample interval must be positive"
	BadCount       = "unparsable point count"
	Truncated      = "fewer values than the declared point count"
	Overlong       = "more values than the declared point count"
	LengthMismatch = "series length differs from the acceleration length"
)

// FormatError is the only error kind returned by the V2 parser. It implements FileError.
// All FormatErrors are fatal for the file (or channel) being parsed.
type FormatError struct {
	Category Category
	Reason   string
	Field    string //offending field or section name, empty if none applies.
	Source   string //path of the input, as given by the caller. May be empty.
	Block    int    //1-based index of the channel block, 0 if not tied to a block.
	deco     []string
}

func newFormatError(cat Category, reason, field, caller string) *FormatError {
	return &FormatError{Category: cat, Reason: reason, Field: field, deco: []string{caller}}
}

func (E *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("v2")
	if E.Source != "" {
		fmt.Fprintf(&b, " file %s", E.Source)
	}
	if E.Block > 0 {
		fmt.Fprintf(&b, " channel %d", E.Block)
	}
	fmt.Fprintf(&b, " %s error: %s", E.Category, E.Reason)
	if E.Field != "" {
		fmt.Fprintf(&b, " [%s]", E.Field)
	}
	return b.String()
}

// Decorate adds new information to the error.
func (E *FormatError) Decorate(deco string) []string {
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

// FileName returns the file to which the failing text was associated.
func (E *FormatError) FileName() string { return E.Source }

// Format returns the format of the file associated to the error. Always "v2".
func (E *FormatError) Format() string { return "v2" }

// Critical always returns true. There are no recoverable parse errors.
func (E *FormatError) Critical() bool { return true }

// errDecorate adds the caller name, and, when given, the source and block, to a FormatError.
// Other errors are returned unchanged.
func errDecorate(err error, caller, source string, block int) error {
	var fe *FormatError
	if !errors.As(err, &fe) {
		return err
	}
	fe.Decorate(caller)
	if source != "" && fe.Source == "" {
		fe.Source = source
	}
	if block > 0 && fe.Block == 0 {
		fe.Block = block
	}
	return fe
}
