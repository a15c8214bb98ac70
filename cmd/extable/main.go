// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command extable loads text data files into example tables,
// and creates schema and configuration files for them.
package main

import (
	"os"

	"github.com/ntj/ComplexRapidMiner-sub004/cmd/extable/cmd"
	"github.com/ntj/ComplexRapidMiner-sub004/config"
	"github.com/ntj/ComplexRapidMiner-sub004/logx"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	var vv, v, q bool
	root := &cobra.Command{
		Use:          "extable",
		Short:        "extable loads text data files into example tables",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (.toml or .yaml)")
	root.PersistentFlags().BoolVar(&vv, "vv", false, "very verbose: show debug messages")
	root.PersistentFlags().BoolVarP(&v, "verbose", "v", false, "verbose: show info messages")
	root.PersistentFlags().BoolVarP(&q, "quiet", "q", false, "quiet: show only errors")

	openConfig := func() (*config.Config, error) {
		c, err := cmd.OpenConfig(cfgPath)
		if err != nil {
			return nil, err
		}
		level, err := c.Level()
		if err != nil {
			return nil, err
		}
		if vv || v || q {
			level = logx.LevelFromFlags(vv, v, q)
		}
		logx.SetDefault(os.Stderr, level)
		return c, nil
	}

	var lopts cmd.LoadOptions
	load := &cobra.Command{
		Use:   "load DATA",
		Short: "load a data file and print a preview and summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			c, err := openConfig()
			if err != nil {
				return err
			}
			lopts.Data = args[0]
			_, err = cmd.Load(c, cc.OutOrStdout(), lopts)
			return err
		},
	}
	load.Flags().StringVarP(&lopts.Schema, "schema", "s", "schema.yaml", "schema file of the data attributes")
	load.Flags().IntVarP(&lopts.Rows, "rows", "n", 10, "number of rows to preview, all if negative")
	load.Flags().StringVar(&lopts.SaveSchema, "save-schema", "", "file to write the schema with all nominal values to")

	schema := &cobra.Command{
		Use:   "schema NAME:TYPE...",
		Short: "print a schema file for the given attributes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			return cmd.Schema(cc.OutOrStdout(), args)
		},
	}

	initConfig := &cobra.Command{
		Use:   "config FILE",
		Short: "write a configuration file with all default values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			return config.New().Save(args[0])
		},
	}

	root.AddCommand(load, schema, initConfig)
	return root
}
