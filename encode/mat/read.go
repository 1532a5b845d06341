/*
 * read.go, part of gocesmd.
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

package mat

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"unicode/utf16"

	"github.com/klauspost/compress/zlib"
)

// Var is a variable read from a MAT file. Only double, char and struct arrays are supported.
type Var struct {
	Name   string
	Class  uint32
	Dims   []int32
	Data   []float64 //double arrays
	Text   string    //char arrays
	Fields []*Var    //struct arrays, in order. Each field has its Name set.
}

// IsEmpty tells whether the variable has no elements.
func (V *Var) IsEmpty() bool {
	for _, d := range V.Dims {
		if d == 0 {
			return true
		}
	}
	return false
}

// Field returns the struct field with the given name, or nil.
func (V *Var) Field(name string) *Var {
	for _, f := range V.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

var errFormat = errors.New("mat: malformed file")

type tag struct {
	t    uint32
	data []byte
}

// nextElement reads one element from b. Compressed elements are not padded.
func nextElement(b *bytes.Reader) (tag, error) {
	var first uint32
	if err := binary.Read(b, endian, &first); err != nil {
		return tag{}, err
	}
	if small := first >> 16; small != 0 {
		p := make([]byte, 4)
		if _, err := io.ReadFull(b, p); err != nil {
			return tag{}, errFormat
		}
		return tag{first & 0xffff, p[:small]}, nil
	}
	var n uint32
	if err := binary.Read(b, endian, &n); err != nil {
		return tag{}, errFormat
	}
	if int64(n) > int64(b.Len()) {
		return tag{}, errFormat
	}
	p := make([]byte, n)
	if _, err := io.ReadFull(b, p); err != nil {
		return tag{}, errFormat
	}
	if first != miCOMPRESSED {
		if _, err := b.Seek(int64(pad8(int(n))-int(n)), io.SeekCurrent); err != nil {
			return tag{}, errFormat
		}
	}
	return tag{first, p}, nil
}

func decodeDoubles(t tag) ([]float64, error) {
	switch t.t {
	case miDOUBLE:
		if len(t.data)%8 != 0 {
			return nil, errFormat
		}
		ret := make([]float64, len(t.data)/8)
		for i := range ret {
			ret[i] = math.Float64frombits(endian.Uint64(t.data[8*i:]))
		}
		return ret, nil
	case miUINT8:
		ret := make([]float64, len(t.data))
		for i, v := range t.data {
			ret[i] = float64(v)
		}
		return ret, nil
	case miINT32:
		ret := make([]float64, len(t.data)/4)
		for i := range ret {
			ret[i] = float64(int32(endian.Uint32(t.data[4*i:])))
		}
		return ret, nil
	}
	return nil, fmt.Errorf("mat: unsupported numeric type %d", t.t)
}

func decodeMatrix(data []byte) (*Var, error) {
	b := bytes.NewReader(data)
	flags, err := nextElement(b)
	if err != nil || flags.t != miUINT32 || len(flags.data) < 4 {
		return nil, errFormat
	}
	V := &Var{Class: endian.Uint32(flags.data) & 0xff}
	dims, err := nextElement(b)
	if err != nil || dims.t != miINT32 {
		return nil, errFormat
	}
	for i := 0; i+4 <= len(dims.data); i += 4 {
		V.Dims = append(V.Dims, int32(endian.Uint32(dims.data[i:])))
	}
	name, err := nextElement(b)
	if err != nil {
		return nil, errFormat
	}
	V.Name = string(name.data)
	switch V.Class {
	case mxDOUBLE:
		re, err := nextElement(b)
		if err != nil {
			return nil, errFormat
		}
		if V.Data, err = decodeDoubles(re); err != nil {
			return nil, err
		}
	case mxCHAR:
		c, err := nextElement(b)
		if err != nil {
			return nil, errFormat
		}
		switch c.t {
		case miUINT16:
			u := make([]uint16, len(c.data)/2)
			for i := range u {
				u[i] = endian.Uint16(c.data[2*i:])
			}
			V.Text = string(utf16.Decode(u))
		case miUTF8, miINT8, miUINT8:
			V.Text = string(c.data)
		default:
			return nil, fmt.Errorf("mat: unsupported char type %d", c.t)
		}
	case mxSTRUCT:
		l, err := nextElement(b)
		if err != nil || len(l.data) < 4 {
			return nil, errFormat
		}
		nl := int(endian.Uint32(l.data))
		names, err := nextElement(b)
		if err != nil || nl == 0 || len(names.data)%nl != 0 {
			return nil, errFormat
		}
		for i := 0; i < len(names.data)/nl; i++ {
			n := strings.TrimRight(string(names.data[i*nl:(i+1)*nl]), "\x00")
			e, err := nextElement(b)
			if err != nil || e.t != miMATRIX {
				return nil, errFormat
			}
			f, err := decodeMatrix(e.data)
			if err != nil {
				return nil, err
			}
			f.Name = n
			V.Fields = append(V.Fields, f)
		}
	default:
		return nil, fmt.Errorf("mat: unsupported class %d in %s", V.Class, V.Name)
	}
	return V, nil
}

// Read reads all the variables of a level 5 little-endian MAT file.
func Read(r io.Reader) ([]*Var, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(all) < headerLen || string(all[126:128]) != "IM" {
		return nil, fmt.Errorf("mat: not a little-endian level 5 MAT file")
	}
	b := bytes.NewReader(all[headerLen:])
	var ret []*Var
	for b.Len() > 0 {
		e, err := nextElement(b)
		if err != nil {
			return nil, err
		}
		if e.t == miCOMPRESSED {
			zr, err := zlib.NewReader(bytes.NewReader(e.data))
			if err != nil {
				return nil, err
			}
			inner, err := io.ReadAll(zr)
			zr.Close()
			if err != nil {
				return nil, err
			}
			if e, err = nextElement(bytes.NewReader(inner)); err != nil {
				return nil, err
			}
		}
		if e.t != miMATRIX {
			continue
		}
		V, err := decodeMatrix(e.data)
		if err != nil {
			return nil, err
		}
		ret = append(ret, V)
	}
	return ret, nil
}

// ReadVars returns the numeric variables of a MAT file by name.
func ReadVars(r io.Reader) (map[string][]float64, error) {
	vars, err := Read(r)
	if err != nil {
		return nil, err
	}
	ret := make(map[string][]float64, len(vars))
	for _, v := range vars {
		if v.Class == mxDOUBLE {
			ret[v.Name] = v.Data
		}
	}
	return ret, nil
}

// ReadFile reads the variables of the named MAT file.
func ReadFile(name string) ([]*Var, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
