// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nominal

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Write writes the values of the mapping in index order:
// a 4-byte big-endian count followed by each value as a
// 2-byte big-endian byte length and its UTF-8 bytes.
func Write(w io.Writer, m Mapping) error {
	vals := m.Values()
	var hdr [4]byte
	binary.BigEndian.PutUint32(hdr[:], uint32(len(vals)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	for _, v := range vals {
		if len(v) > math.MaxUint16 {
			return fmt.Errorf("nominal.Write: value of %d bytes exceeds the maximum of %d", len(v), math.MaxUint16)
		}
		buf := make([]byte, 2+len(v))
		binary.BigEndian.PutUint16(buf, uint16(len(v)))
		copy(buf[2:], v)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// Read reads values written by [Write] and maps them into m with
// [Mapping.MapString] in file order, so indexes follow the file order
// when m starts out empty.
func Read(r io.Reader, m Mapping) error {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return fmt.Errorf("nominal.Read: reading count: %w", err)
	}
	n := binary.BigEndian.Uint32(hdr[:])
	var lb [2]byte
	for i := range n {
		if _, err := io.ReadFull(r, lb[:]); err != nil {
			return fmt.Errorf("nominal.Read: reading length of value %d: %w", i, err)
		}
		buf := make([]byte, binary.BigEndian.Uint16(lb[:]))
		if _, err := io.ReadFull(r, buf); err != nil {
			return fmt.Errorf("nominal.Read: reading value %d: %w", i, err)
		}
		if _, err := m.MapString(string(buf)); err != nil {
			return err
		}
	}
	return nil
}
