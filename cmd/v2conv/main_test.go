/*
 * main_test.go, part of gocesmd.
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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(Te *testing.T, args ...string) (string, error) {
	Te.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestInfo(Te *testing.T) {
	out, err := run(Te, "info", "-m", "../../test/multi.V2")
	require.NoError(Te, err)
	assert.Contains(Te, out, "multi.V2: 3 channels")
	assert.Contains(Te, out, "channel 2: 8 points")
	assert.Contains(Te, out, "    npts: 8\n")
	_, err = run(Te, "info")
	assert.Error(Te, err)
}

func TestConvert(Te *testing.T) {
	dir := Te.TempDir()
	out, err := run(Te, "convert", "-o", dir, "-f", "csv,msgpack", "-j", "2", "../../test/multi.V2", "../../test/single.V2")
	require.NoError(Te, err)
	assert.Contains(Te, out, "2 files, 8 written, 0 failed")
	assert.FileExists(Te, filepath.Join(dir, "multi_channel_002.msgpack"))
	_, err = run(Te, "convert", "-f", "xls", "../../test/single.V2")
	assert.Error(Te, err)
}

func TestConvertWithConfig(Te *testing.T) {
	dir := Te.TempDir()
	cfg := filepath.Join(dir, "v2conv.yaml")
	text := "input: [../../test/accel_only.V2]\noutput: " + dir + "\nformats: [csv]\ntab_compression: gz\n"
	require.NoError(Te, os.WriteFile(cfg, []byte(text), 0o644))
	out, err := run(Te, "--config", cfg, "convert")
	require.NoError(Te, err)
	assert.Contains(Te, out, "1 files, 1 written")
	assert.FileExists(Te, filepath.Join(dir, "accel_only_channel_002.csv.gz"))
	//already there
	out, err = run(Te, "--config", cfg, "convert")
	assert.Error(Te, err)
	assert.Contains(Te, out, "FAILED")
}

func TestSplit(Te *testing.T) {
	dir := Te.TempDir()
	out, err := run(Te, "split", "-o", dir, "../../test/multi.V2")
	require.NoError(Te, err)
	assert.Contains(Te, out, filepath.Join(dir, "multi_chan_3.V2"))
}
