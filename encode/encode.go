/*
 * encode.go, part of gocesmd.
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

//Package encode gathers the Record writers under format names, so callers can
//pick output formats from a configuration or the command line.
package encode

import (
	"fmt"
	"sort"
	"strings"

	cesmd "github.com/rmera/gocesmd"
	"github.com/rmera/gocesmd/encode/h5"
	"github.com/rmera/gocesmd/encode/interchange"
	"github.com/rmera/gocesmd/encode/mat"
	"github.com/rmera/gocesmd/encode/quicklook"
	"github.com/rmera/gocesmd/encode/tab"
)

// Format is an output format.
type Format struct {
	Name  string
	Ext   string //file extension, with the leading dot
	Write func(name string, r *cesmd.Record) error
}

// Options tune the formats that have settings.
type Options struct {
	MatCompress    bool
	TabCompression string //"", "gz" or "zst"
}

// Registry maps format names to formats.
type Registry struct {
	formats map[string]Format
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{formats: make(map[string]Format)}
}

// Register adds f, replacing any format with the same name.
func (R *Registry) Register(f Format) {
	R.formats[strings.ToLower(f.Name)] = f
}

// Get returns the format with the given name. Names are case-insensitive.
func (R *Registry) Get(name string) (Format, error) {
	f, ok := R.formats[strings.ToLower(name)]
	if !ok {
		return Format{}, fmt.Errorf("encode: unknown format %q (known: %s)", name, strings.Join(R.Names(), ", "))
	}
	return f, nil
}

// Names returns the registered format names, sorted.
func (R *Registry) Names() []string {
	ret := make([]string, 0, len(R.formats))
	for k := range R.formats {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// Default returns a registry with all the formats of this module.
// The h5 format is registered even in builds without the hdf5 tag, where it always fails.
func Default(o Options) (*Registry, error) {
	tabExt := ".csv"
	switch o.TabCompression {
	case "":
	case "gz", "zst":
		tabExt += "." + o.TabCompression
	default:
		return nil, fmt.Errorf("encode: unknown table compression %q", o.TabCompression)
	}
	R := NewRegistry()
	R.Register(Format{"csv", tabExt, tab.WriteFile})
	R.Register(Format{"mat", ".mat", func(name string, r *cesmd.Record) error {
		return mat.WriteFile(name, r, mat.Options{Compress: o.MatCompress})
	}})
	R.Register(Format{"h5", ".h5", h5.WriteFile})
	R.Register(Format{"png", ".png", func(name string, r *cesmd.Record) error {
		return quicklook.WriteFile(name, r)
	}})
	R.Register(Format{"json", ".json", func(name string, r *cesmd.Record) error {
		return interchange.WriteFile(name, r, interchange.JSON)
	}})
	R.Register(Format{"msgpack", ".msgpack", func(name string, r *cesmd.Record) error {
		return interchange.WriteFile(name, r, interchange.MsgPack)
	}})
	return R, nil
}
