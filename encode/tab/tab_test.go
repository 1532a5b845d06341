/*
 * tab_test.go, part of gocesmd.
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

package tab

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	cesmd "github.com/rmera/gocesmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(Te *testing.T, name string, i int) *cesmd.Record {
	Te.Helper()
	recs, err := cesmd.ParseFile("../../test/" + name)
	require.NoError(Te, err)
	return recs[i]
}

func TestWriteMinimal(Te *testing.T) {
	r := record(Te, "minimal.V2", 0)
	var b bytes.Buffer
	require.NoError(Te, Write(&b, r))
	out := b.String()
	assert.Contains(Te, out, "# filename: minimal.V2\n")
	assert.Contains(Te, out, "# time_interval: 0.02\n")
	assert.Contains(Te, out, "# observation_time: null\n")
	assert.True(Te, strings.HasSuffix(out, "Time,Acceleration\n0,0\n0.02,1\n0.04,2\n"), out)
}

func TestRoundTrip(Te *testing.T) {
	dir := Te.TempDir()
	for _, name := range []string{"plain.csv", "packed.csv.gz", "packed.csv.zst"} {
		r := record(Te, "single.V2", 0)
		path := filepath.Join(dir, name)
		require.NoError(Te, WriteFile(path, r))
		T, err := ReadFile(path)
		require.NoError(Te, err, name)
		assert.Equal(Te, []string{"Time", "Acceleration", "Velocity", "Displacement"}, T.Columns)
		assert.Equal(Te, r.Time().Values(), T.Column("Time"), name)
		assert.Equal(Te, r.Acceleration().Values(), T.Column("Acceleration"), name)
		v, _ := r.Velocity().Get()
		assert.Equal(Te, v.Values(), T.Column("Velocity"))
		d, _ := r.Displacement().Get()
		assert.Equal(Te, d.Values(), T.Column("Displacement"))
		assert.Equal(Te, r.Metadata().Len(), len(T.Meta))
		for i, f := range r.Metadata().Fields() {
			assert.Equal(Te, f.Key, T.Meta[i].Key)
		}
		p, _ := T.Get("peak_acceleration")
		assert.Equal(Te, "-15.5", p)
	}
}

func TestOptionalColumns(Te *testing.T) {
	r := record(Te, "multi.V2", 2)
	assert.Equal(Te, []string{"Time", "Acceleration", "Displacement"}, Columns(r))
	D := Dense(r)
	rows, cols := D.Dims()
	assert.Equal(Te, 8, rows)
	assert.Equal(Te, 3, cols)
	assert.Nil(Te, (&Table{Columns: []string{"Time"}}).Column("Velocity"))
}

func TestReadErrors(Te *testing.T) {
	_, err := Read(strings.NewReader("# a: b\n"))
	assert.Error(Te, err)
	_, err = Read(strings.NewReader("Time,Acceleration\n0,1,2\n"))
	assert.Error(Te, err)
	_, err = Read(strings.NewReader("Time,Acceleration\n0,x\n"))
	assert.Error(Te, err)
}
