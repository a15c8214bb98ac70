// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bufio"
	"io"
	"math"
)

// Format writes a tab separated preview of the table: a header line of
// attribute names followed by at most maxRows rows (all if maxRows < 0).
// Values are formatted with [attribute.Attribute.FormatValue], and
// values that cannot be read are written as "?".
func Format(t Table, w io.Writer, maxRows int) error {
	bw := bufio.NewWriter(w)
	atts := t.Attributes()
	for i, a := range atts {
		if i > 0 {
			bw.WriteByte('\t')
		}
		bw.WriteString(a.Name())
	}
	bw.WriteByte('\n')
	rd, err := t.Reader()
	if err != nil {
		return err
	}
	for n := 0; (maxRows < 0 || n < maxRows) && rd.Next(); n++ {
		dr := rd.DataRow()
		for i, a := range atts {
			if i > 0 {
				bw.WriteByte('\t')
			}
			v, err := dr.Value(a)
			if err != nil {
				v = math.NaN()
			}
			bw.WriteString(a.FormatValue(v))
		}
		bw.WriteByte('\n')
	}
	if err := rd.Err(); err != nil {
		return err
	}
	return bw.Flush()
}
