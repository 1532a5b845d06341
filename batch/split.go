/*
 * split.go, part of gocesmd.
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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cesmd "github.com/rmera/gocesmd"
)

// SplitName returns the name of the single-channel file for the given channel of input.
// The extension of input is kept.
func SplitName(input string, channel int) string {
	return fmt.Sprintf("%s_chan_%d%s", base(input), channel, filepath.Ext(input))
}

// SplitFile writes each channel of the named V2 file to its own file in outDir, or next
// to the input if outDir is empty. The text of each channel is copied unchanged.
// A channel number seen again in the same file gets a _k suffix, k counting from 2.
// It returns the names of the written files, in channel order.
func SplitFile(path, outDir string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text := string(b)
	blocks, err := cesmd.Split(text)
	if err != nil {
		var ferr *cesmd.FormatError
		if errors.As(err, &ferr) {
			ferr.Source = path
		}
		return nil, err
	}
	if outDir == "" {
		outDir = filepath.Dir(path)
	} else if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(blocks))
	seen := make(map[int]int, len(blocks))
	for _, bl := range blocks {
		seen[bl.Chan]++
		name := filepath.Join(outDir, SplitName(path, bl.Chan))
		if k := seen[bl.Chan]; k > 1 {
			//same channel number twice in one file.
			name = strings.TrimSuffix(name, filepath.Ext(name)) + fmt.Sprintf("_%d", k) + filepath.Ext(path)
		}
		if err := os.WriteFile(name, []byte(bl.Text(text)), 0o644); err != nil {
			return ret, err
		}
		ret = append(ret, name)
	}
	return ret, nil
}
