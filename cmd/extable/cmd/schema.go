// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/ntj/ComplexRapidMiner-sub004/attribute"
	"github.com/ntj/ComplexRapidMiner-sub004/table"
)

// Schema writes the YAML schema of the attributes given as name:type
// pairs, in column order. Names may be empty to generate one, and the
// type defaults to real.
func Schema(w io.Writer, specs []string) error {
	atts := make([]*attribute.Attribute, len(specs))
	for i, s := range specs {
		name, tname, _ := strings.Cut(s, ":")
		vt := attribute.Real
		if tname != "" {
			var err error
			vt, err = attribute.ValueTypesFromString(tname)
			if err != nil {
				return fmt.Errorf("schema: %q: %w", s, err)
			}
		}
		a, err := attribute.New(name, vt)
		if err != nil {
			return fmt.Errorf("schema: %q: %w", s, err)
		}
		a.SetTableIndex(i)
		atts[i] = a
	}
	return table.SaveSchema(w, atts)
}
