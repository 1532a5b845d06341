/*
 * batch_test.go, part of gocesmd.
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

package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	cesmd "github.com/rmera/gocesmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func copyFixture(Te *testing.T, dir, name, as string) string {
	Te.Helper()
	b, err := os.ReadFile("../test/" + name)
	require.NoError(Te, err)
	path := filepath.Join(dir, as)
	require.NoError(Te, os.WriteFile(path, b, 0o644))
	return path
}

func inputDir(Te *testing.T) string {
	Te.Helper()
	dir := Te.TempDir()
	copyFixture(Te, dir, "multi.V2", "multi.V2")
	copyFixture(Te, dir, "single.V2", "single.v2")
	require.NoError(Te, os.WriteFile(filepath.Join(dir, "bad.V2"), []byte("not a V2 file\n"), 0o644))
	require.NoError(Te, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(Te, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	copyFixture(Te, filepath.Join(dir, "sub"), "minimal.V2", "minimal.V2")
	return dir
}

func TestDiscover(Te *testing.T) {
	dir := inputDir(Te)
	files, err := Discover([]string{dir, filepath.Join(dir, "notes.txt")})
	require.NoError(Te, err)
	assert.Equal(Te, []string{
		filepath.Join(dir, "bad.V2"),
		filepath.Join(dir, "multi.V2"),
		filepath.Join(dir, "single.v2"),
		filepath.Join(dir, "notes.txt"),
	}, files)
	_, err = Discover([]string{filepath.Join(dir, "missing")})
	assert.Error(Te, err)
}

func TestOutputNames(Te *testing.T) {
	assert.Equal(Te, "multi_channel_002.csv.gz", OutputName("data/multi.V2", 2, ".csv.gz"))
	assert.Equal(Te, "multi_chan_3.V2", SplitName("data/multi.V2", 3))
}

func TestConvert(Te *testing.T) {
	in := inputDir(Te)
	out := filepath.Join(Te.TempDir(), "out")
	core, logs := observer.New(zapcore.InfoLevel)
	o := Options{
		Inputs:  []string{in},
		OutDir:  out,
		Formats: []string{"csv", "json"},
		Workers: 2,
		Logger:  zap.New(core),
	}
	rep, err := Convert(context.Background(), o)
	require.NoError(Te, err)
	require.Len(Te, rep.Files, 3)
	assert.Equal(Te, 8, rep.Outputs())
	failed := rep.Failed()
	require.Len(Te, failed, 1)
	assert.Equal(Te, filepath.Join(in, "bad.V2"), failed[0].Path)
	var ferr *cesmd.FormatError
	require.ErrorAs(Te, failed[0].Err, &ferr)
	assert.Equal(Te, cesmd.NoHeader, ferr.Reason)
	assert.Error(Te, rep.Err())
	assert.Equal(Te, 3, rep.Files[1].Records)
	for _, name := range []string{"multi_channel_001.csv", "multi_channel_003.json", "single_channel_001.csv"} {
		assert.FileExists(Te, filepath.Join(out, name))
	}
	assert.Equal(Te, 1, logs.FilterMessage("conversion failed").Len())
	assert.Equal(Te, 2, logs.FilterMessage("converted").Len())

	//again, without overwriting.
	rep, err = Convert(context.Background(), o)
	require.NoError(Te, err)
	assert.Zero(Te, rep.Outputs())
	assert.ErrorIs(Te, rep.Files[1].Err, os.ErrExist)
	o.Overwrite = true
	rep, err = Convert(context.Background(), o)
	require.NoError(Te, err)
	assert.Equal(Te, 8, rep.Outputs())
}

func TestConvertNextToInput(Te *testing.T) {
	dir := Te.TempDir()
	path := copyFixture(Te, dir, "accel_only.V2", "accel_only.V2")
	rep, err := Convert(context.Background(), Options{Inputs: []string{path}, Formats: []string{"mat"}})
	require.NoError(Te, err)
	require.NoError(Te, rep.Err())
	assert.Equal(Te, []string{filepath.Join(dir, "accel_only_channel_002.mat")}, rep.Files[0].Outputs)
}

func TestConvertErrors(Te *testing.T) {
	in := inputDir(Te)
	_, err := Convert(context.Background(), Options{Inputs: []string{in}, Formats: []string{"xls"}})
	assert.Error(Te, err)
	_, err = Convert(context.Background(), Options{Inputs: []string{in}})
	assert.Error(Te, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Convert(ctx, Options{Inputs: []string{in}, Formats: []string{"csv"}, OutDir: Te.TempDir()})
	assert.ErrorIs(Te, err, context.Canceled)
}

func TestSplitFile(Te *testing.T) {
	out := Te.TempDir()
	names, err := SplitFile("../test/multi.V2", out)
	require.NoError(Te, err)
	require.Len(Te, names, 3)
	orig, err := cesmd.ParseFile("../test/multi.V2")
	require.NoError(Te, err)
	for i, name := range names {
		assert.Equal(Te, filepath.Join(out, SplitName("multi.V2", i+1)), name)
		recs, err := cesmd.ParseFile(name)
		require.NoError(Te, err)
		require.Len(Te, recs, 1)
		assert.Equal(Te, i+1, recs[0].Channel())
		assert.True(Te, orig[i].Acceleration().Equal(recs[0].Acceleration()))
		assert.Equal(Te, orig[i].Velocity().IsPresent(), recs[0].Velocity().IsPresent())
	}
	_, err = SplitFile("../test/missing.V2", out)
	assert.Error(Te, err)
}

func TestSplitFileRepeatedChannel(Te *testing.T) {
	b, err := os.ReadFile("../test/single.V2")
	require.NoError(Te, err)
	dir := Te.TempDir()
	path := filepath.Join(dir, "dup.V2")
	require.NoError(Te, os.WriteFile(path, append(append([]byte{}, b...), b...), 0o644))
	names, err := SplitFile(path, "")
	require.NoError(Te, err)
	assert.Equal(Te, []string{filepath.Join(dir, "dup_chan_1.V2"), filepath.Join(dir, "dup_chan_1_2.V2")}, names)
	for _, n := range names {
		recs, err := cesmd.ParseFile(n)
		require.NoError(Te, err)
		assert.Len(Te, recs, 1)
	}
}
