//go:build !hdf5

/*
 * h5_stub.go, part of gocesmd.
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

import cesmd "github.com/rmera/gocesmd"

// Available is true when the package was built with HDF5 support.
const Available = false

// WriteFile always returns ErrNoHDF5.
func WriteFile(name string, r *cesmd.Record) error {
	return ErrNoHDF5
}

// ReadDataset always returns ErrNoHDF5.
func ReadDataset(name, dataset string) ([]float64, error) {
	return nil, ErrNoHDF5
}

// HasAttribute always returns ErrNoHDF5.
func HasAttribute(name, attr string) (bool, error) {
	return false, ErrNoHDF5
}

// StringAttribute always returns ErrNoHDF5.
func StringAttribute(name, attr string) (string, error) {
	return "", ErrNoHDF5
}
