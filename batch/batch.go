/*
 * batch.go, part of gocesmd.
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

//Package batch converts sets of V2 files to the output formats of the encode package,
//several files at a time, and splits multi-channel files into one file per channel.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	cesmd "github.com/rmera/gocesmd"
	"github.com/rmera/gocesmd/encode"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Extension is the extension of V2 files. It is matched regardless of case.
const Extension = ".v2"

// Options for Convert.
type Options struct {
	Inputs    []string //files, or directories whose V2 files are all converted
	OutDir    string   //empty to write next to each input
	Formats   []string
	Registry  *encode.Registry //nil for encode.Default with zero Options
	Workers   int              //less than 1 means one
	Overwrite bool
	Logger    *zap.Logger //nil for no logging
}

// FileResult is the outcome of converting one input file.
type FileResult struct {
	Path    string
	Records int
	Outputs []string
	Err     error
}

// Report gathers the results of a Convert call, in input order.
type Report struct {
	Files []FileResult
}

// Failed returns the results of the files that could not be fully converted.
func (R *Report) Failed() []FileResult {
	var ret []FileResult
	for _, f := range R.Files {
		if f.Err != nil {
			ret = append(ret, f)
		}
	}
	return ret
}

// Outputs returns the number of files written.
func (R *Report) Outputs() int {
	n := 0
	for _, f := range R.Files {
		n += len(f.Outputs)
	}
	return n
}

// Err joins the errors of all failed files, or returns nil.
func (R *Report) Err() error {
	var errs []error
	for _, f := range R.Failed() {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}

// IsV2 tells whether name has the V2 extension.
func IsV2(name string) bool {
	return strings.EqualFold(filepath.Ext(name), Extension)
}

// Discover expands the inputs into a list of files. Directories contribute their V2
// files, sorted by name, without descending into subdirectories. Files are kept as given,
// whatever their extension.
func Discover(inputs []string) ([]string, error) {
	var ret []string
	for _, in := range inputs {
		info, err := os.Stat(in)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			ret = append(ret, in)
			continue
		}
		entries, err := os.ReadDir(in)
		if err != nil {
			return nil, err
		}
		var names []string
		for _, e := range entries {
			if e.Type().IsRegular() && IsV2(e.Name()) {
				names = append(names, filepath.Join(in, e.Name()))
			}
		}
		sort.Strings(names)
		ret = append(ret, names...)
	}
	return ret, nil
}

func base(path string) string {
	b := filepath.Base(path)
	return strings.TrimSuffix(b, filepath.Ext(b))
}

// OutputName returns the name of the output file for the given channel of a V2 file.
func OutputName(input string, channel int, ext string) string {
	return fmt.Sprintf("%s_channel_%03d%s", base(input), channel, ext)
}

func outDir(o Options, input string) string {
	if o.OutDir != "" {
		return o.OutDir
	}
	return filepath.Dir(input)
}

// convertFile parses one file and writes all its records in all the formats.
func convertFile(o Options, formats []encode.Format, path string, log *zap.Logger) FileResult {
	res := FileResult{Path: path}
	recs, err := cesmd.ParseFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	res.Records = len(recs)
	dir := outDir(o, path)
	seen := make(map[int]int, len(recs))
	for _, r := range recs {
		ch := r.Channel()
		seen[ch]++
		for _, f := range formats {
			ext := f.Ext
			if seen[ch] > 1 {
				//same channel number twice in one file.
				ext = fmt.Sprintf("_%d%s", seen[ch], ext)
			}
			name := filepath.Join(dir, OutputName(path, ch, ext))
			if !o.Overwrite {
				if _, err := os.Stat(name); err == nil {
					res.Err = errors.Join(res.Err, fmt.Errorf("%s: %w", name, os.ErrExist))
					continue
				}
			}
			if err := f.Write(name, r); err != nil {
				res.Err = errors.Join(res.Err, fmt.Errorf("%s: %s: %w", f.Name, name, err))
				continue
			}
			res.Outputs = append(res.Outputs, name)
			log.Debug("wrote", zap.String("file", name), zap.Int("channel", r.Channel()))
		}
	}
	return res
}

// Convert converts every input file, up to o.Workers files at a time. A file that
// fails is recorded in the report and doesn't stop the others. The returned error is
// only for problems with the options or the inputs as a whole, and for cancellation.
func Convert(ctx context.Context, o Options) (*Report, error) {
	log := o.Logger
	if log == nil {
		log = zap.NewNop()
	}
	reg := o.Registry
	if reg == nil {
		var err error
		if reg, err = encode.Default(encode.Options{}); err != nil {
			return nil, err
		}
	}
	if len(o.Formats) == 0 {
		return nil, fmt.Errorf("batch: no output format given")
	}
	formats := make([]encode.Format, len(o.Formats))
	for i, name := range o.Formats {
		f, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		formats[i] = f
	}
	files, err := Discover(o.Inputs)
	if err != nil {
		return nil, fmt.Errorf("batch: %w", err)
	}
	if o.OutDir != "" {
		if err := os.MkdirAll(o.OutDir, 0o755); err != nil {
			return nil, fmt.Errorf("batch: %w", err)
		}
	}
	log.Info("converting", zap.Int("files", len(files)), zap.Strings("formats", o.Formats))
	rep := &Report{Files: make([]FileResult, len(files))}
	workers := o.Workers
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := convertFile(o, formats, path, log)
			if res.Err != nil {
				log.Warn("conversion failed", zap.String("file", path), zap.Error(res.Err))
			} else {
				log.Info("converted", zap.String("file", path), zap.Int("records", res.Records), zap.Int("outputs", len(res.Outputs)))
			}
			rep.Files[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rep, err
	}
	if err := ctx.Err(); err != nil {
		return rep, err
	}
	return rep, nil
}
