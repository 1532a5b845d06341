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

package main

import (
	"fmt"

	"github.com/rmera/gocesmd/batch"
	"github.com/rmera/gocesmd/internal/log"
	"github.com/spf13/cobra"
)

func newSplitCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "split file...",
		Short: "Split multi-channel V2 files into one V2 file per channel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				names, err := batch.SplitFile(path, outDir)
				if err != nil {
					return err
				}
				log.Infow("split", "file", path, "channels", len(names))
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "output directory (default: next to each input)")
	return cmd
}
