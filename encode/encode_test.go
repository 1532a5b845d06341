/*
 * encode_test.go, part of gocesmd.
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

package encode

import (
	"os"
	"path/filepath"
	"testing"

	cesmd "github.com/rmera/gocesmd"
	"github.com/rmera/gocesmd/encode/h5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(Te *testing.T) {
	R, err := Default(Options{TabCompression: "zst"})
	require.NoError(Te, err)
	assert.Equal(Te, []string{"csv", "h5", "json", "mat", "msgpack", "png"}, R.Names())
	f, err := R.Get("CSV")
	require.NoError(Te, err)
	assert.Equal(Te, ".csv.zst", f.Ext)
	_, err = R.Get("xls")
	assert.ErrorContains(Te, err, "csv, h5, json")
	_, err = Default(Options{TabCompression: "bz2"})
	assert.Error(Te, err)
}

func TestWriteAll(Te *testing.T) {
	recs, err := cesmd.ParseFile("../test/single.V2")
	require.NoError(Te, err)
	R, err := Default(Options{MatCompress: true})
	require.NoError(Te, err)
	dir := Te.TempDir()
	for _, name := range R.Names() {
		if name == "h5" && !h5.Available {
			continue
		}
		f, _ := R.Get(name)
		out := filepath.Join(dir, "single"+f.Ext)
		require.NoError(Te, f.Write(out, recs[0]), name)
		st, err := os.Stat(out)
		require.NoError(Te, err)
		assert.NotZero(Te, st.Size(), name)
	}
}
