// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"sync"
	"testing"

	"github.com/ntj/ComplexRapidMiner-sub004/nominal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamer(t *testing.T) {
	nm := NewNamer()
	assert.Equal(t, "gensym", nm.Next("gensym"))
	assert.Equal(t, "gensym1", nm.Next("gensym"))
	assert.Equal(t, "gensym2", nm.Next("gensym"))
	assert.Equal(t, "x", nm.Next("x"))
	nm.Reset()
	assert.Equal(t, "gensym", nm.Next("gensym"))
}

func TestNamerConcurrent(t *testing.T) {
	nm := NewNamer()
	var mu sync.Mutex
	seen := map[string]bool{}
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				n := nm.Next("g")
				mu.Lock()
				seen[n] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 800)
}

func TestFactoryGensym(t *testing.T) {
	f := NewFactory(nil)
	a, err := f.New("", Real)
	require.NoError(t, err)
	b, err := f.New("", Integer)
	require.NoError(t, err)
	assert.Equal(t, "gensym", a.Name())
	assert.Equal(t, "gensym1", b.Name())
	assert.Equal(t, -1, a.TableIndex())
	assert.Equal(t, "gensym", a.Construction().String())
}

func TestFactoryKinds(t *testing.T) {
	f := NewFactory(nil)
	for _, vt := range ValueTypesValues() {
		a, err := f.New("a", vt)
		if vt == AttributeValue {
			assert.ErrorIs(t, err, ErrUnsupportedValueType)
			continue
		}
		require.NoError(t, err, vt.String())
		assert.Equal(t, vt, a.ValueType())
		assert.Equal(t, vt.IsNominal(), a.IsNominal(), vt.String())
		assert.Equal(t, !vt.IsComposite(), a.Stored(), vt.String())
	}
	b, err := f.New("b", Binary)
	require.NoError(t, err)
	assert.IsType(t, &nominal.Binary{}, b.Mapping())

	_, err = f.New("bad", ValueTypes(99))
	assert.ErrorIs(t, err, ErrUnsupportedValueType)
	assert.Panics(t, func() { Must("bad", AttributeValue) })
}

func TestCloneWithFunctionName(t *testing.T) {
	f := NewFactory(nil)
	a, err := f.New("age", Real)
	require.NoError(t, err)
	a.SetTableIndex(2)
	l := f.CloneWithFunctionName(a, "log")
	assert.Equal(t, "log(age)", l.Name())
	assert.Equal(t, 2, l.TableIndex())
	assert.Equal(t, "age", a.Name())
	assert.Equal(t, "log(age)", l.Construction().String())
	assert.Equal(t, 1, l.Construction().Depth())

	s := f.CloneWithFunctionName(l, "sqrt")
	assert.Equal(t, "sqrt(log(age))", s.Name())
	assert.Equal(t, 2, s.Construction().Depth())

	same := f.CloneWithFunctionName(a, "")
	assert.True(t, same.Equal(a))
}

func TestChangeValueType(t *testing.T) {
	f := NewFactory(nil)
	a, err := f.New("c", General)
	require.NoError(t, err)
	a.SetTableIndex(5)
	a.SetDefault(1)
	for _, s := range []string{"x", "y", "z"} {
		_, err := a.Mapping().MapString(s)
		require.NoError(t, err)
	}

	s, err := f.ChangeValueType(a, String)
	require.NoError(t, err)
	assert.Equal(t, String, s.ValueType())
	assert.Equal(t, 5, s.TableIndex())
	assert.Equal(t, 1.0, s.DefaultValue())
	assert.Equal(t, []string{"x", "y", "z"}, s.Mapping().Values())
	assert.NotSame(t, a.Mapping(), s.Mapping())

	r, err := f.ChangeValueType(a, Real)
	require.NoError(t, err)
	assert.Nil(t, r.Mapping())
	assert.Equal(t, 5, r.TableIndex())

	_, err = f.ChangeValueType(a, Binary)
	assert.ErrorIs(t, err, nominal.ErrCapacityExceeded)
}
