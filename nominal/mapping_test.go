// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nominal

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneralRoundTrip(t *testing.T) {
	gm := NewGeneral()
	for i := range 50 {
		s := fmt.Sprintf("value-%d", i)
		idx, err := gm.MapString(s)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
		back, err := gm.MapIndex(idx)
		assert.NoError(t, err)
		assert.Equal(t, s, back)
		assert.Equal(t, idx, gm.Index(s))
	}
	assert.Equal(t, 50, gm.Size())
	assert.Equal(t, -1, gm.Index("unknown"))
	assert.Equal(t, 50, gm.Size())
}

func TestGeneralIndexOutOfRange(t *testing.T) {
	gm := NewGeneral("a")
	_, err := gm.MapIndex(1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	_, err = gm.MapIndex(-1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.True(t, errors.Is(gm.SetMapping("b", 3), ErrIndexOutOfRange))
}

func TestGeneralSetMapping(t *testing.T) {
	gm := NewGeneral("a", "b")
	assert.NoError(t, gm.SetMapping("c", 0))
	assert.Equal(t, -1, gm.Index("a"))
	assert.Equal(t, 0, gm.Index("c"))
	assert.Equal(t, []string{"c", "b"}, gm.Values())
}

func TestGeneralSortMappings(t *testing.T) {
	gm := NewGeneral("pear", "apple", "fig")
	gm.SortMappings()
	assert.Equal(t, []string{"apple", "fig", "pear"}, gm.Values())
	assert.Equal(t, 2, gm.Index("pear"))
	s, err := gm.MapIndex(0)
	assert.NoError(t, err)
	assert.Equal(t, "apple", s)
}

func TestGeneralCloneIndependent(t *testing.T) {
	gm := NewGeneral("x")
	cp := gm.Clone()
	cp.MapString("y")
	assert.Equal(t, 1, gm.Size())
	assert.Equal(t, 2, cp.Size())
	gm.Clear()
	assert.Equal(t, 0, gm.Size())
	assert.Equal(t, 0, cp.Index("x"))
}

func TestBinary(t *testing.T) {
	bm := NewBinary()
	i, err := bm.MapString("no")
	assert.NoError(t, err)
	assert.Equal(t, NegativeIndex, i)
	i, err = bm.MapString("yes")
	assert.NoError(t, err)
	assert.Equal(t, PositiveIndex, i)

	i, err = bm.MapString("no")
	assert.NoError(t, err)
	assert.Equal(t, 0, i)
	i, err = bm.MapString("no")
	assert.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 2, bm.Size())

	_, err = bm.MapString("maybe")
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
	assert.Equal(t, 2, bm.Size())
	assert.Equal(t, "yes", bm.PositiveString())
	assert.Equal(t, "no", bm.NegativeString())

	bm.SortMappings()
	assert.Equal(t, []string{"no", "yes"}, bm.Values())

	_, err = bm.MapIndex(2)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestBinaryPartial(t *testing.T) {
	bm := NewBinary()
	_, err := bm.MapIndex(0)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	bm.MapString("only")
	_, err = bm.MapIndex(1)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Equal(t, []string{"only"}, bm.Values())

	cp := bm.Clone()
	cp.MapString("other")
	assert.Equal(t, 1, bm.Size())
	assert.Equal(t, 2, cp.Size())

	assert.True(t, errors.Is(bm.SetMapping("x", 2), ErrIndexOutOfRange))
	assert.NoError(t, bm.SetMapping("x", 1))
	assert.Equal(t, 1, bm.Index("x"))
	bm.Clear()
	assert.Equal(t, 0, bm.Size())
}

func TestMapNullable(t *testing.T) {
	gm := NewGeneral()
	i, err := MapNullable(gm, nil)
	assert.NoError(t, err)
	assert.Equal(t, -1, i)
	assert.Equal(t, 0, gm.Size())
	s := "v"
	i, err = MapNullable(gm, &s)
	assert.NoError(t, err)
	assert.Equal(t, 0, i)
}

func TestWireFormat(t *testing.T) {
	gm := NewGeneral()
	i, _ := gm.MapString("red")
	assert.Equal(t, 0, i)
	i, _ = gm.MapString("blue")
	assert.Equal(t, 1, i)
	i, _ = gm.MapString("red")
	assert.Equal(t, 0, i)
	assert.Equal(t, 2, gm.Size())

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, gm))
	assert.Equal(t, []byte{0, 0, 0, 2, 0, 3, 'r', 'e', 'd', 0, 4, 'b', 'l', 'u', 'e'}, buf.Bytes())

	rd := NewGeneral()
	require.NoError(t, Read(&buf, rd))
	s, err := rd.MapIndex(0)
	assert.NoError(t, err)
	assert.Equal(t, "red", s)
	s, err = rd.MapIndex(1)
	assert.NoError(t, err)
	assert.Equal(t, "blue", s)
	assert.True(t, Equal(gm, rd))
}

func TestReadTruncated(t *testing.T) {
	err := Read(bytes.NewReader([]byte{0, 0, 0, 1, 0, 5, 'a'}), NewGeneral())
	assert.Error(t, err)
	err = Read(bytes.NewReader([]byte{0, 0, 0, 3, 0, 1, 'a', 0, 1, 'b', 0, 1, 'c'}), NewBinary())
	assert.True(t, errors.Is(err, ErrCapacityExceeded))
}
