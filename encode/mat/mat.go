/*
 * mat.go, part of gocesmd.
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

//Package mat writes Records as MATLAB level 5 MAT files, and reads back what it writes.
//The file holds the row vectors time, acceleration and, when the record has them, velocity and
//displacement, plus a scalar struct metadata with one field per metadata key.
package mat

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"unicode/utf16"

	"github.com/klauspost/compress/zlib"
	cesmd "github.com/rmera/gocesmd"
)

// Data types of MAT-file elements.
const (
	miINT8       uint32 = 1
	miUINT8      uint32 = 2
	miINT16      uint32 = 3
	miUINT16     uint32 = 4
	miINT32      uint32 = 5
	miUINT32     uint32 = 6
	miSINGLE     uint32 = 7
	miDOUBLE     uint32 = 9
	miINT64      uint32 = 12
	miUINT64     uint32 = 13
	miMATRIX     uint32 = 14
	miCOMPRESSED uint32 = 15
	miUTF8       uint32 = 16
)

// Array classes.
const (
	mxSTRUCT uint32 = 2
	mxCHAR   uint32 = 4
	mxDOUBLE uint32 = 6
)

const (
	headerText   = "MATLAB 5.0 MAT-file, written by gocesmd"
	headerLen    = 128
	textLen      = 116
	version      = 0x0100
	fieldNameLen = 32 //including the terminating NUL
)

var endian = binary.LittleEndian

// Options for the MAT writer.
type Options struct {
	Compress bool //wrap each variable in a zlib-compressed element
}

func pad8(n int) int {
	if r := n % 8; r != 0 {
		return n + 8 - r
	}
	return n
}

// element writes a data element of type t with the given payload, padded to 8 bytes.
func element(b *bytes.Buffer, t uint32, payload []byte) {
	binary.Write(b, endian, t)
	binary.Write(b, endian, uint32(len(payload)))
	b.Write(payload)
	b.Write(make([]byte, pad8(len(payload))-len(payload)))
}

// smallElement writes up to 4 bytes of data in the compact element format.
func smallElement(b *bytes.Buffer, t uint32, payload []byte) {
	binary.Write(b, endian, uint32(len(payload))<<16|t)
	p := make([]byte, 4)
	copy(p, payload)
	b.Write(p)
}

func le(v any) []byte {
	var b bytes.Buffer
	binary.Write(&b, endian, v)
	return b.Bytes()
}

// matrix returns a complete miMATRIX element for the given class, dimensions and name.
// data holds the already-encoded subelements that follow the name.
func matrix(class uint32, dims []int32, name string, data []byte) []byte {
	var sub bytes.Buffer
	element(&sub, miUINT32, le([]uint32{class, 0}))
	element(&sub, miINT32, le(dims))
	element(&sub, miINT8, []byte(name))
	sub.Write(data)
	var b bytes.Buffer
	element(&b, miMATRIX, sub.Bytes())
	return b.Bytes()
}

func doubles(name string, v []float64, rowVector bool) []byte {
	var data bytes.Buffer
	element(&data, miDOUBLE, le(v))
	dims := []int32{1, int32(len(v))}
	if !rowVector {
		dims = []int32{int32(len(v)), 1}
	}
	return matrix(mxDOUBLE, dims, name, data.Bytes())
}

func emptyDouble(name string) []byte {
	var data bytes.Buffer
	element(&data, miDOUBLE, nil)
	return matrix(mxDOUBLE, []int32{0, 0}, name, data.Bytes())
}

func chars(name, s string) []byte {
	u := utf16.Encode([]rune(s))
	var data bytes.Buffer
	element(&data, miUINT16, le(u))
	dims := []int32{1, int32(len(u))}
	if len(u) == 0 {
		dims = []int32{0, 0}
	}
	return matrix(mxCHAR, dims, name, data.Bytes())
}

// value encodes a metadata value as a nameless struct field.
func value(v cesmd.Value) []byte {
	if s, ok := v.Str(); ok {
		return chars("", s)
	}
	if f, ok := v.Number(); ok {
		return doubles("", []float64{f}, true)
	}
	return emptyDouble("")
}

func structure(name string, md cesmd.Metadata) []byte {
	var data bytes.Buffer
	smallElement(&data, miINT32, le(int32(fieldNameLen)))
	keys := md.Keys()
	names := make([]byte, fieldNameLen*len(keys))
	for i, k := range keys {
		if len(k) > fieldNameLen-1 {
			k = k[:fieldNameLen-1]
		}
		copy(names[i*fieldNameLen:], k)
	}
	element(&data, miINT8, names)
	for _, f := range md.Fields() {
		data.Write(value(f.Value))
	}
	return matrix(mxSTRUCT, []int32{1, 1}, name, data.Bytes())
}

func compress(elem []byte) ([]byte, error) {
	var z bytes.Buffer
	zw, err := zlib.NewWriterLevel(&z, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(elem); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	var b bytes.Buffer
	binary.Write(&b, endian, miCOMPRESSED)
	binary.Write(&b, endian, uint32(z.Len()))
	b.Write(z.Bytes())
	return b.Bytes(), nil
}

func header() []byte {
	h := make([]byte, headerLen)
	for i := range h[:textLen] {
		h[i] = ' '
	}
	copy(h, headerText)
	endian.PutUint16(h[124:], version)
	copy(h[126:], "IM")
	return h
}

// Write writes r to w as a level 5 MAT file.
func Write(w io.Writer, r *cesmd.Record, opts ...Options) error {
	var o Options
	if len(opts) > 0 {
		o = opts[0]
	}
	vars := [][]byte{
		doubles("time", r.Time().Values(), true),
		doubles("acceleration", r.Acceleration().Values(), true),
	}
	if v, ok := r.Velocity().Get(); ok {
		vars = append(vars, doubles("velocity", v.Values(), true))
	}
	if d, ok := r.Displacement().Get(); ok {
		vars = append(vars, doubles("displacement", d.Values(), true))
	}
	vars = append(vars, structure("metadata", r.Metadata()))
	if _, err := w.Write(header()); err != nil {
		return err
	}
	for _, v := range vars {
		if o.Compress {
			var err error
			if v, err = compress(v); err != nil {
				return err
			}
		}
		if _, err := w.Write(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes r to the named MAT file.
func WriteFile(name string, r *cesmd.Record, opts ...Options) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Write(f, r, opts...); err != nil {
		return fmt.Errorf("mat: %s: %w", name, err)
	}
	return f.Close()
}
