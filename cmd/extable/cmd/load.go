// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd contains the actual command definitions
// for the commands of the extable tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ntj/ComplexRapidMiner-sub004/attribute"
	"github.com/ntj/ComplexRapidMiner-sub004/config"
	"github.com/ntj/ComplexRapidMiner-sub004/row"
	"github.com/ntj/ComplexRapidMiner-sub004/table"
)

// LoadOptions are the options of the load command.
type LoadOptions struct {
	// Schema is the YAML schema file of the data attributes.
	Schema string

	// Data is the text data file, one row per line.
	Data string

	// Rows is the number of rows to preview, all if negative.
	Rows int

	// SaveSchema is the file to write the schema to after loading,
	// including all nominal values found in the data.
	SaveSchema string
}

// OpenConfig returns the configuration read from path,
// or the default configuration if path is empty.
func OpenConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.New(), nil
	}
	return config.Open(path)
}

// Load reads the data file with the attributes of the schema file into a
// memory table, and writes a preview of the rows and a summary of every
// attribute to w.
func Load(c *config.Config, w io.Writer, opts LoadOptions) (*table.Memory, error) {
	atts, err := openSchema(opts.Schema)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(opts.Data)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rd := row.NewTextReader(f, c.RowFactory(), atts)
	mt, err := table.NewMemoryFromReader(atts, rd, c.TableOptions())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", opts.Data, err)
	}
	mt.Meta.SetName(opts.Data)
	slog.Info("loaded table", "file", opts.Data, "rows", mt.Len(), "attributes", mt.NumAttributes(), "kind", c.RowKind)
	if err := table.Format(mt, w, opts.Rows); err != nil {
		return nil, err
	}
	fmt.Fprintln(w)
	if err := Summary(mt, w); err != nil {
		return nil, err
	}
	if opts.SaveSchema != "" {
		if err := saveSchema(opts.SaveSchema, mt.Attributes()); err != nil {
			return nil, err
		}
	}
	return mt, nil
}

func openSchema(path string) ([]*attribute.Attribute, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return table.OpenSchema(f, attribute.Default)
}

func saveSchema(path string, atts []*attribute.Attribute) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := table.SaveSchema(f, atts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Summary writes one line of statistics for every attribute of the table:
// the mode of nominal attributes, the average, minimum and maximum of
// numeric and date attributes, and the number of missing values.
func Summary(t table.Table, w io.Writer) error {
	atts := t.Attributes()
	for _, a := range atts {
		a.StartCounting()
	}
	rd, err := t.Reader()
	if err != nil {
		return err
	}
	for rd.Next() {
		dr := rd.DataRow()
		for _, a := range atts {
			v, err := dr.Value(a)
			if err != nil {
				return err
			}
			a.CountValue(v, 1)
		}
	}
	if err := rd.Err(); err != nil {
		return err
	}
	for _, a := range atts {
		fmt.Fprintf(w, "%s\t%s", a.Name(), a.ValueType())
		if a.IsNominal() {
			mode, _ := a.Statistic(attribute.Mode)
			fmt.Fprintf(w, "\tmode=%s", a.FormatValue(mode))
		} else if avg, ok := a.Statistic(attribute.Average); ok {
			mn, _ := a.Statistic(attribute.Minimum)
			mx, _ := a.Statistic(attribute.Maximum)
			fmt.Fprintf(w, "\taverage=%s\tminimum=%s\tmaximum=%s", a.FormatValue(avg), a.FormatValue(mn), a.FormatValue(mx))
		}
		unknown, _ := a.Statistic(attribute.Unknown)
		fmt.Fprintf(w, "\tunknown=%g\n", unknown)
	}
	return nil
}
