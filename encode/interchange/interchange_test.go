/*
 * interchange_test.go, part of gocesmd.
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

package interchange

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
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

func TestDocumentShape(Te *testing.T) {
	var b bytes.Buffer
	require.NoError(Te, Write(&b, record(Te, "accel_only.V2", 0), JSON))
	var raw map[string]any
	require.NoError(Te, json.Unmarshal(b.Bytes(), &raw))
	for _, k := range []string{"metadata", "time", "acceleration"} {
		assert.Contains(Te, raw, k)
	}
	assert.NotContains(Te, raw, "velocity")
	assert.NotContains(Te, raw, "displacement")
	first := raw["metadata"].([]any)[0].(map[string]any)
	assert.Equal(Te, "filename", first["key"])
	assert.Equal(Te, "string", first["type"])
}

func TestRoundTrip(Te *testing.T) {
	for _, codec := range []string{JSON, MsgPack} {
		for _, c := range []struct {
			file string
			i    int
		}{{"single.V2", 0}, {"multi.V2", 1}, {"multi.V2", 2}, {"minimal.V2", 0}} {
			r := record(Te, c.file, c.i)
			var b bytes.Buffer
			require.NoError(Te, Write(&b, r, codec))
			back, err := Read(&b, codec)
			require.NoError(Te, err, codec+" "+c.file)
			assert.True(Te, r.Metadata().Equal(back.Metadata()), codec+" "+c.file)
			assert.True(Te, r.Equal(back), codec+" "+c.file)
			assert.Empty(Te, cmp.Diff(r.Time().Values(), back.Time().Values()))
		}
	}
}

func TestPresentEmptySeries(Te *testing.T) {
	md := cesmd.NewMetadata(cesmd.Field{Key: cesmd.KeyInterval, Value: cesmd.FloatValue(0.01)})
	r, err := cesmd.Assemble(md, cesmd.NewSeries(nil), cesmd.Present(cesmd.NewSeries(nil)), cesmd.Absent())
	require.NoError(Te, err)
	for _, codec := range []string{JSON, MsgPack} {
		var b bytes.Buffer
		require.NoError(Te, Write(&b, r, codec))
		back, err := Read(&b, codec)
		require.NoError(Te, err, codec)
		v, ok := back.Velocity().Get()
		assert.True(Te, ok, codec+": empty velocity is still present")
		assert.Zero(Te, v.Len())
		assert.False(Te, back.Displacement().IsPresent(), codec)
		assert.True(Te, r.Equal(back), codec)
	}
}

func TestFiles(Te *testing.T) {
	r := record(Te, "single.V2", 0)
	name := filepath.Join(Te.TempDir(), "single.msgpack")
	require.NoError(Te, WriteFile(name, r, MsgPack))
	back, err := ReadFile(name, MsgPack)
	require.NoError(Te, err)
	assert.Equal(Te, 1, back.Channel())
	n, _ := back.Metadata().Get(cesmd.KeyNpts)
	assert.Equal(Te, cesmd.IntValue(16), n)
}

func TestBadDocuments(Te *testing.T) {
	_, err := Read(strings.NewReader(`{"metadata":[{"key":"time_interval","type":"float","value":"x"}],"time":[0],"acceleration":[1]}`), JSON)
	assert.Error(Te, err)
	_, err = Read(strings.NewReader(`{"metadata":[{"key":"a","type":"blob","value":1}],"time":[0],"acceleration":[1]}`), JSON)
	assert.Error(Te, err)
	_, err = Read(strings.NewReader(`{"metadata":[],"time":[0],"acceleration":[1]}`), JSON)
	var ferr *cesmd.FormatError
	require.ErrorAs(Te, err, &ferr)
	assert.Equal(Te, cesmd.MissingField, ferr.Reason)
	_, err = Read(strings.NewReader(`{"metadata":[{"key":"time_interval","type":"float","value":0.5}],"time":[0,0.5],"acceleration":[1]}`), JSON)
	assert.Error(Te, err)
	assert.Error(Te, Write(&bytes.Buffer{}, record(Te, "minimal.V2", 0), "xml"))
}
