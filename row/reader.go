// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package row

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/ntj/ComplexRapidMiner-sub004/attribute"
)

// Reader iterates over a sequence of rows.
//
//	for rd.Next() {
//		r := rd.Row()
//	}
//	if err := rd.Err(); err != nil {
//	}
type Reader interface {
	// Next advances to the next row, returning false at the end
	// or on error.
	Next() bool

	// Row returns the current row.
	Row() Row

	// Err returns the error that stopped iteration, if any.
	Err() error
}

// SliceReader is a [Reader] over a slice of rows.
type SliceReader struct {
	rows []Row
	pos  int
}

// NewSliceReader returns a reader over the given rows.
func NewSliceReader(rows ...Row) *SliceReader {
	return &SliceReader{rows: rows, pos: -1}
}

func (sr *SliceReader) Next() bool {
	if sr.pos+1 >= len(sr.rows) {
		sr.pos = len(sr.rows)
		return false
	}
	sr.pos++
	return true
}

func (sr *SliceReader) Row() Row {
	if sr.pos < 0 || sr.pos >= len(sr.rows) {
		return nil
	}
	return sr.rows[sr.pos]
}

func (sr *SliceReader) Err() error { return nil }

// TextReader is a [Reader] parsing one row per line of text.
// Cells are separated by white space, and may be quoted to contain
// white space. Blank lines and lines starting with # are skipped.
type TextReader struct {
	// Factory creates the rows and parses cells.
	Factory *Factory

	// Attributes are the attributes of the cells, in line order.
	Attributes []*attribute.Attribute

	scan *bufio.Scanner
	line int
	row  Row
	err  error
}

// MaxLineSize is the longest line a [TextReader] accepts.
// Wide tables produce long lines, so it is well above the
// [bufio.MaxScanTokenSize] default.
const MaxLineSize = 1 << 30

// NewTextReader returns a reader parsing rows from r.
func NewTextReader(r io.Reader, f *Factory, atts []*attribute.Attribute) *TextReader {
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	return &TextReader{Factory: f, Attributes: atts, scan: scan}
}

func (tr *TextReader) Next() bool {
	tr.row = nil
	if tr.err != nil {
		return false
	}
	for tr.scan.Scan() {
		tr.line++
		line := strings.TrimSpace(tr.scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields, err := shellwords.Parse(line)
		if err != nil {
			tr.err = fmt.Errorf("row.TextReader: line %d: %w", tr.line, err)
			return false
		}
		r, err := tr.Factory.FromStrings(fields, tr.Attributes)
		if err != nil {
			tr.err = fmt.Errorf("row.TextReader: line %d: %w", tr.line, err)
			return false
		}
		tr.row = r
		return true
	}
	tr.err = tr.scan.Err()
	return false
}

func (tr *TextReader) Row() Row { return tr.row }

func (tr *TextReader) Err() error { return tr.err }

// Line returns the number of the last line read.
func (tr *TextReader) Line() int { return tr.line }
