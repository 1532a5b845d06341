/*
 * tab.go, part of gocesmd.
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

//Package tab writes and reads Records as comma-separated tables, with the metadata
//in comment lines at the top. Files ending in .gz or .zst are compressed.
package tab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	cesmd "github.com/rmera/gocesmd"
	"gonum.org/v1/gonum/mat"
)

// Null is written for metadata fields the record doesn't have.
const Null = "null"

const (
	colTime         = "Time"
	colAcceleration = "Acceleration"
	colVelocity     = "Velocity"
	colDisplacement = "Displacement"
)

// Columns returns the names of the columns written for r.
func Columns(r *cesmd.Record) []string {
	cols := []string{colTime, colAcceleration}
	if r.Velocity().IsPresent() {
		cols = append(cols, colVelocity)
	}
	if r.Displacement().IsPresent() {
		cols = append(cols, colDisplacement)
	}
	return cols
}

// Dense returns the data of r as a matrix with one column per element of Columns(r),
// or nil if r has no samples.
func Dense(r *cesmd.Record) *mat.Dense {
	n := r.Len()
	if n == 0 {
		return nil
	}
	cols := []cesmd.Series{r.Time(), r.Acceleration()}
	if v, ok := r.Velocity().Get(); ok {
		cols = append(cols, v)
	}
	if d, ok := r.Displacement().Get(); ok {
		cols = append(cols, d)
	}
	D := mat.NewDense(n, len(cols), nil)
	for j, c := range cols {
		D.SetCol(j, c.Values())
	}
	return D
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Write writes r to w, uncompressed.
func Write(w io.Writer, r *cesmd.Record) error {
	out := bufio.NewWriter(w)
	for _, f := range r.Metadata().Fields() {
		v := f.Value.String()
		if f.Value.IsNull() {
			v = Null
		}
		if _, err := fmt.Fprintf(out, "# %s: %s\n", f.Key, v); err != nil {
			return err
		}
	}
	out.WriteString(strings.Join(Columns(r), ",") + "\n")
	if D := Dense(r); D != nil {
		rows, cols := D.Dims()
		row := make([]string, cols)
		for i := 0; i < rows; i++ {
			for j := range row {
				row[j] = formatFloat(D.At(i, j))
			}
			if _, err := out.WriteString(strings.Join(row, ",") + "\n"); err != nil {
				return err
			}
		}
	}
	return out.Flush()
}

// compression returns the compression implied by the name of a file: "gz", "zst" or "".
func compression(name string) string {
	l := strings.ToLower(name)
	switch {
	case strings.HasSuffix(l, ".gz"):
		return "gz"
	case strings.HasSuffix(l, ".zst"):
		return "zst"
	}
	return ""
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func newWriter(name string, f io.Writer) (io.WriteCloser, error) {
	switch compression(name) {
	case "gz":
		return gzip.NewWriterLevel(f, gzip.BestCompression)
	case "zst":
		return zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	return nopCloser{f}, nil
}

// WriteFile writes r to the file name, compressing it if the name ends in .gz or .zst.
func WriteFile(name string, r *cesmd.Record) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	w, err := newWriter(name, f)
	if err != nil {
		return fmt.Errorf("tab: %s: %w", name, err)
	}
	if err := Write(w, r); err != nil {
		w.Close()
		return fmt.Errorf("tab: %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("tab: %s: %w", name, err)
	}
	return f.Close()
}

// Meta is a metadata line of a table.
type Meta struct {
	Key, Value string
}

// Table is a table read back from text.
type Table struct {
	Meta    []Meta
	Columns []string
	Data    *mat.Dense //nil if the table has no rows
}

// Get returns the metadata value for key, as written.
func (T *Table) Get(key string) (string, bool) {
	for _, m := range T.Meta {
		if m.Key == key {
			return m.Value, true
		}
	}
	return "", false
}

// Column returns a copy of the named column, or nil if the table doesn't have it.
func (T *Table) Column(name string) []float64 {
	for j, c := range T.Columns {
		if c == name {
			if T.Data == nil {
				return []float64{}
			}
			return mat.Col(nil, j, T.Data)
		}
	}
	return nil
}

// Read reads a table as written by Write.
func Read(r io.Reader) (*Table, error) {
	T := new(Table)
	var data []float64
	rows := 0
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for ln := 1; s.Scan(); ln++ {
		l := strings.TrimRight(s.Text(), "\r")
		switch {
		case strings.HasPrefix(l, "#") && T.Columns == nil:
			k, v, _ := strings.Cut(strings.TrimSpace(l[1:]), ":")
			T.Meta = append(T.Meta, Meta{strings.TrimSpace(k), strings.TrimSpace(v)})
		case T.Columns == nil:
			T.Columns = strings.Split(l, ",")
		case strings.TrimSpace(l) == "":
			continue
		default:
			f := strings.Split(l, ",")
			if len(f) != len(T.Columns) {
				return nil, fmt.Errorf("tab: line %d has %d fields, expected %d", ln, len(f), len(T.Columns))
			}
			for _, v := range f {
				x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
				if err != nil {
					return nil, fmt.Errorf("tab: line %d: %w", ln, err)
				}
				data = append(data, x)
			}
			rows++
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if T.Columns == nil {
		return nil, fmt.Errorf("tab: no column line")
	}
	if rows > 0 {
		T.Data = mat.NewDense(rows, len(T.Columns), data)
	}
	return T, nil
}

// ReadFile reads a table from a file, decompressing it according to its name.
func ReadFile(name string) (*Table, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var in io.Reader = bufio.NewReader(f)
	switch compression(name) {
	case "gz":
		gz, err := gzip.NewReader(in)
		if err != nil {
			return nil, fmt.Errorf("tab: %s: %w", name, err)
		}
		defer gz.Close()
		in = gz
	case "zst":
		zr, err := zstd.NewReader(in)
		if err != nil {
			return nil, fmt.Errorf("tab: %s: %w", name, err)
		}
		defer zr.Close()
		in = zr
	}
	return Read(in)
}
