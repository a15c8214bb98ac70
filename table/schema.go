// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"io"

	"github.com/ntj/ComplexRapidMiner-sub004/attribute"
	"github.com/ntj/ComplexRapidMiner-sub004/base/metadata"
	"gopkg.in/yaml.v3"
)

// schemaAttribute is the YAML form of one attribute.
type schemaAttribute struct {
	Name         string                  `yaml:"name"`
	Type         attribute.ValueTypes    `yaml:"type"`
	Block        attribute.BlockTypes    `yaml:"block"`
	Index        int                     `yaml:"index"`
	Default      float64                 `yaml:"default"`
	Values       []string                `yaml:"values,omitempty"`
	Annotations  metadata.Data           `yaml:"annotations,omitempty"`
	Construction *attribute.Construction `yaml:"construction,omitempty"`
}

// schema is the YAML form of a list of attributes.
type schema struct {
	Attributes []schemaAttribute `yaml:"attributes"`
}

// SaveSchema writes the attributes as YAML, including their table index,
// default, nominal values, annotations and construction. Views and
// composites cannot be saved.
func SaveSchema(w io.Writer, atts []*attribute.Attribute) error {
	var sc schema
	for _, a := range atts {
		if !a.Stored() {
			return fmt.Errorf("table.SaveSchema: %q: %w", a.Name(), ErrNotStored)
		}
		sa := schemaAttribute{
			Name:         a.Name(),
			Type:         a.ValueType(),
			Block:        a.BlockType(),
			Index:        a.TableIndex(),
			Default:      a.DefaultValue(),
			Annotations:  a.Annotations,
			Construction: a.Construction(),
		}
		if a.IsNominal() {
			sa.Values = a.Mapping().Values()
		}
		sc.Attributes = append(sc.Attributes, sa)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&sc); err != nil {
		return fmt.Errorf("table.SaveSchema: %w", err)
	}
	return enc.Close()
}

// OpenSchema reads attributes written by [SaveSchema], creating them
// with the given factory.
func OpenSchema(r io.Reader, f *attribute.Factory) ([]*attribute.Attribute, error) {
	var sc schema
	if err := yaml.NewDecoder(r).Decode(&sc); err != nil {
		return nil, fmt.Errorf("table.OpenSchema: %w", err)
	}
	atts := make([]*attribute.Attribute, 0, len(sc.Attributes))
	for _, sa := range sc.Attributes {
		a, err := f.NewBlock(sa.Name, sa.Type, sa.Block)
		if err != nil {
			return nil, fmt.Errorf("table.OpenSchema: %q: %w", sa.Name, err)
		}
		a.SetTableIndex(sa.Index)
		a.SetDefault(sa.Default)
		a.Annotations = sa.Annotations
		if sa.Construction != nil {
			a.SetConstruction(sa.Construction)
		}
		for _, v := range sa.Values {
			if a.Mapping() == nil {
				return nil, fmt.Errorf("table.OpenSchema: %q: values given for %v attribute", sa.Name, sa.Type)
			}
			if _, err := a.Mapping().MapString(v); err != nil {
				return nil, fmt.Errorf("table.OpenSchema: %q: %w", sa.Name, err)
			}
		}
		atts = append(atts, a)
	}
	return atts, nil
}
