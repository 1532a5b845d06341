/*
 * info.go, part of gocesmd.
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

	cesmd "github.com/rmera/gocesmd"
	"github.com/spf13/cobra"
)

func newInfoCmd() *cobra.Command {
	var metadata bool
	cmd := &cobra.Command{
		Use:   "info file...",
		Short: "Print a summary of each channel of V2 files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, path := range args {
				recs, err := cesmd.ParseFile(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: %d channels\n", path, len(recs))
				for _, r := range recs {
					fmt.Fprint(out, cesmd.Summarize(r))
					if !metadata {
						continue
					}
					for _, f := range r.Metadata().Fields() {
						v := f.Value.String()
						if f.Value.IsNull() {
							v = "-"
						}
						fmt.Fprintf(out, "    %s: %s\n", f.Key, v)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&metadata, "metadata", "m", false, "also print the metadata fields")
	return cmd
}
