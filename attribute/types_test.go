// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueTypesIsA(t *testing.T) {
	assert.True(t, Binary.IsA(Nominal))
	assert.True(t, Binary.IsA(AttributeValue))
	assert.True(t, Binary.IsA(Binary))
	assert.False(t, Nominal.IsA(Binary))
	assert.True(t, Integer.IsNumeric())
	assert.False(t, Date.IsNumeric())
	assert.True(t, Date.IsDateTime())
	assert.True(t, Gauss.IsComposite())
	assert.Equal(t, Nominal, FilePath.Parent())
	assert.Equal(t, AttributeValue, Numeric.Parent())
	assert.Equal(t, "", Real.Layout())
	assert.Equal(t, TimeLayout, Time.Layout())
}

func TestValueTypesText(t *testing.T) {
	for _, vt := range ValueTypesValues() {
		b, err := vt.MarshalText()
		require.NoError(t, err)
		var got ValueTypes
		require.NoError(t, got.UnmarshalText(b))
		assert.Equal(t, vt, got)
	}
	assert.Equal(t, "date_time", DateTime.String())
	_, err := ValueTypesFromString("quaternion")
	assert.ErrorIs(t, err, ErrUnsupportedValueType)

	vt, err := ValueTypesFromString("File_Path")
	require.NoError(t, err)
	assert.Equal(t, FilePath, vt)
	assert.Equal(t, "ValueTypes(99)", ValueTypes(99).String())
	assert.False(t, ValueTypes(99).IsValid())
	assert.False(t, ValueTypes(99).IsA(AttributeValue))
	assert.Len(t, Real.Strings(), int(ValueTypesN))
	assert.Equal(t, "histogram", Real.Strings()[ValueTypesN-1])
}

func TestBlockTypes(t *testing.T) {
	bt, err := BlockTypesFromString("value_series_start")
	require.NoError(t, err)
	assert.Equal(t, ValueSeriesStart, bt)
	assert.True(t, bt.IsSeries())
	assert.False(t, SingleValue.IsSeries())
	_, err = BlockTypesFromString("nope")
	assert.Error(t, err)
}
