/*
 * convert.go, part of gocesmd.
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
	"fmt"

	"github.com/rmera/gocesmd/batch"
	"github.com/rmera/gocesmd/encode"
	"github.com/rmera/gocesmd/internal/config"
	"github.com/rmera/gocesmd/internal/log"
	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var flags config.Config
	cmd := &cobra.Command{
		Use:   "convert [file or directory]...",
		Short: "Convert V2 files, one output file per channel and format",
		Long: `convert parses each V2 file, or every V2 file in each directory, and writes
every channel in each requested format as <name>_channel_NNN.<ext>.
Flags override the configuration file. A file that fails to convert doesn't stop the others.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.Input = args
			cfg := a.cfg
			cfg.Merge(flags)
			reg, err := encode.Default(encode.Options{MatCompress: cfg.MatCompress, TabCompression: cfg.TabCompression})
			if err != nil {
				return err
			}
			if err := cfg.Validate(reg.Names()...); err != nil {
				return err
			}
			log.Debugw("configuration", "config", cfg.String())
			rep, err := batch.Convert(cmd.Context(), batch.Options{
				Inputs:    cfg.Input,
				OutDir:    cfg.Output,
				Formats:   cfg.Formats,
				Registry:  reg,
				Workers:   cfg.Workers,
				Overwrite: cfg.Overwrite,
				Logger:    log.Logger(),
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			failed := rep.Failed()
			for _, f := range failed {
				fmt.Fprintf(out, "FAILED %s: %v\n", f.Path, f.Err)
			}
			if len(failed) > 0 {
				log.Errorw("batch finished with failures", "files", len(rep.Files), "failed", len(failed))
			} else {
				log.Infof("batch finished: %d files, %d outputs", len(rep.Files), rep.Outputs())
			}
			fmt.Fprintf(out, "%d files, %d written, %d failed\n", len(rep.Files), rep.Outputs(), len(failed))
			return rep.Err()
		},
	}
	f := cmd.Flags()
	f.StringVarP(&flags.Output, "output", "o", "", "output directory (default: next to each input)")
	f.StringSliceVarP(&flags.Formats, "format", "f", nil, "output formats: csv, mat, h5, png, json, msgpack")
	f.IntVarP(&flags.Workers, "workers", "j", 0, "files converted at the same time (default: number of CPUs)")
	f.BoolVar(&flags.MatCompress, "mat-compress", false, "compress MAT variables")
	f.StringVar(&flags.TabCompression, "tab-compression", "", "compress CSV output: gz or zst")
	f.BoolVar(&flags.Overwrite, "overwrite", false, "replace existing output files")
	return cmd
}
