/*
 * root.go, part of gocesmd.
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
	"github.com/rmera/gocesmd/internal/config"
	"github.com/rmera/gocesmd/internal/log"
	"github.com/spf13/cobra"
)

// app holds what the subcommands share.
type app struct {
	configFile string
	debug      bool
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "v2conv",
		Short: "Convert CESMD V2 strong-motion files",
		Long: `v2conv reads corrected accelerograms in the CESMD V2 format and writes
each channel as CSV, MAT, HDF5, JSON, MessagePack or a PNG preview.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.Defaults()
			if a.configFile != "" {
				c, err := config.Load(a.configFile)
				if err != nil {
					return err
				}
				a.cfg = c
			}
			return log.Init(a.debug || a.cfg.Debug)
		},
	}
	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "verbose logging")
	root.AddCommand(newConvertCmd(a), newSplitCmd(), newInfoCmd())
	return root
}
