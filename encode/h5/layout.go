/*
 * layout.go, part of gocesmd.
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

//Package h5 writes Records as HDF5 files: one dataset per series at the root
//(/time, /acceleration, and /velocity, /displacement when present) and a /metadata
//group whose scalar attributes are the metadata fields. Null fields are not written.
//
//Writing needs the HDF5 C library, and building with the hdf5 tag (go build -tags hdf5).
//Other builds compile, but WriteFile always fails with ErrNoHDF5.
package h5

import (
	"errors"
	"strings"

	cesmd "github.com/rmera/gocesmd"
)

// MetadataGroup is the group holding the metadata attributes.
const MetadataGroup = "metadata"

// ErrNoHDF5 is returned by WriteFile in builds without the hdf5 tag.
var ErrNoHDF5 = errors.New("h5: HDF5 output requires building with -tags hdf5")

// Dataset is a named series to be written.
type Dataset struct {
	Name   string
	Values []float64
}

// Datasets returns the datasets for r, in writing order.
func Datasets(r *cesmd.Record) []Dataset {
	ret := []Dataset{
		{"time", r.Time().Values()},
		{"acceleration", r.Acceleration().Values()},
	}
	if v, ok := r.Velocity().Get(); ok {
		ret = append(ret, Dataset{"velocity", v.Values()})
	}
	if d, ok := r.Displacement().Get(); ok {
		ret = append(ret, Dataset{"displacement", d.Values()})
	}
	return ret
}

// Attributes returns the metadata fields to be written as attributes. Null fields are
// left out, and the file path uses forward slashes, whatever the platform it
// was recorded on.
func Attributes(md cesmd.Metadata) []cesmd.Field {
	ret := make([]cesmd.Field, 0, md.Len())
	for _, f := range md.Fields() {
		if f.Value.IsNull() {
			continue
		}
		if s, ok := f.Value.Str(); ok && f.Key == cesmd.KeyFilepath {
			f.Value = cesmd.StringValue(strings.ReplaceAll(s, `\`, "/"))
		}
		ret = append(ret, f)
	}
	return ret
}
