//go:build hdf5

/*
 * h5.go, part of gocesmd.
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

package h5

import (
	"fmt"
	"strings"

	cesmd "github.com/rmera/gocesmd"
	"gonum.org/v1/hdf5"
)

// Available is true when the package was built with HDF5 support.
const Available = true

// WriteFile writes r to the named HDF5 file, replacing it if it exists.
func WriteFile(name string, r *cesmd.Record) error {
	f, err := hdf5.CreateFile(name, hdf5.F_ACC_TRUNC)
	if err != nil {
		return fmt.Errorf("h5: %s: %w", name, err)
	}
	defer f.Close()
	for _, d := range Datasets(r) {
		if err := writeDataset(f, d.Name, d.Values); err != nil {
			return fmt.Errorf("h5: %s: %s: %w", name, d.Name, err)
		}
	}
	g, err := f.CreateGroup(MetadataGroup)
	if err != nil {
		return fmt.Errorf("h5: %s: %w", name, err)
	}
	defer g.Close()
	for _, a := range Attributes(r.Metadata()) {
		if err := writeAttribute(g, a); err != nil {
			return fmt.Errorf("h5: %s: attribute %s: %w", name, a.Key, err)
		}
	}
	return f.Flush(hdf5.F_SCOPE_GLOBAL)
}

func writeDataset(f *hdf5.File, name string, v []float64) error {
	space, err := hdf5.CreateSimpleDataspace([]uint{uint(len(v))}, nil)
	if err != nil {
		return err
	}
	defer space.Close()
	d, err := f.CreateDataset(name, hdf5.T_NATIVE_DOUBLE, space)
	if err != nil {
		return err
	}
	defer d.Close()
	if len(v) == 0 {
		return nil
	}
	return d.Write(&v)
}

func writeAttribute(g *hdf5.Group, f cesmd.Field) error {
	space, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return err
	}
	defer space.Close()
	switch f.Value.Kind() {
	case cesmd.KindString:
		s, _ := f.Value.Str()
		b := []byte(s)
		if len(b) == 0 {
			b = []byte{0}
		}
		dtype, err := hdf5.T_C_S1.Copy()
		if err != nil {
			return err
		}
		defer dtype.Close()
		if err := dtype.SetSize(uint(len(b))); err != nil {
			return err
		}
		a, err := g.CreateAttribute(f.Key, dtype, space)
		if err != nil {
			return err
		}
		defer a.Close()
		//the library takes the address of what it is given, so pass the first byte, not the slice.
		return a.Write(&b[0], dtype)
	case cesmd.KindInt:
		i, _ := f.Value.Int()
		a, err := g.CreateAttribute(f.Key, hdf5.T_NATIVE_INT64, space)
		if err != nil {
			return err
		}
		defer a.Close()
		return a.Write(&i, hdf5.T_NATIVE_INT64)
	default:
		x, _ := f.Value.Float()
		a, err := g.CreateAttribute(f.Key, hdf5.T_NATIVE_DOUBLE, space)
		if err != nil {
			return err
		}
		defer a.Close()
		return a.Write(&x, hdf5.T_NATIVE_DOUBLE)
	}
}

// ReadDataset reads a whole one-dimensional dataset of doubles from the named file.
func ReadDataset(name, dataset string) ([]float64, error) {
	f, err := hdf5.OpenFile(name, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := f.OpenDataset(dataset)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	space := d.Space()
	defer space.Close()
	ret := make([]float64, space.SimpleExtentNPoints())
	if len(ret) == 0 {
		return ret, nil
	}
	if err := d.Read(&ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// HasAttribute tells whether the metadata group of the named file has the given attribute.
func HasAttribute(name, attr string) (bool, error) {
	f, err := hdf5.OpenFile(name, hdf5.F_ACC_RDONLY)
	if err != nil {
		return false, err
	}
	defer f.Close()
	g, err := f.OpenGroup(MetadataGroup)
	if err != nil {
		return false, err
	}
	defer g.Close()
	a, err := g.OpenAttribute(attr)
	if err != nil {
		return false, nil
	}
	a.Close()
	return true, nil
}

// StringAttribute reads a string attribute from the metadata group of the named file.
func StringAttribute(name, attr string) (string, error) {
	f, err := hdf5.OpenFile(name, hdf5.F_ACC_RDONLY)
	if err != nil {
		return "", err
	}
	defer f.Close()
	g, err := f.OpenGroup(MetadataGroup)
	if err != nil {
		return "", err
	}
	defer g.Close()
	a, err := g.OpenAttribute(attr)
	if err != nil {
		return "", err
	}
	defer a.Close()
	stored := &hdf5.Datatype{Identifier: a.GetType()}
	defer stored.Close()
	n := stored.Size()
	if n == 0 {
		return "", nil
	}
	dtype, err := hdf5.T_C_S1.Copy()
	if err != nil {
		return "", err
	}
	defer dtype.Close()
	if err := dtype.SetSize(n); err != nil {
		return "", err
	}
	b := make([]byte, n)
	if err := a.Read(&b[0], dtype); err != nil {
		return "", err
	}
	return strings.TrimRight(string(b), "\x00"), nil
}
