// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attribute

import (
	"fmt"
	"strconv"
	"strings"
)

const _ValueTypesName = "attribute_valuenominalbinarygeneralstringfile_pathnumericintegerrealdate_timedatetimerelationalmapdata_maparraycomplex_compositematrixtensorpoint_listuniformgausshistogram"

var _ValueTypesIndex = [...]uint8{0, 15, 22, 28, 35, 41, 50, 57, 64, 68, 77, 81, 85, 95, 98, 106, 111, 128, 134, 140, 150, 157, 162, 171}

// ValueTypesN is the highest valid value for type ValueTypes, plus one.
const ValueTypesN ValueTypes = 23

func (i ValueTypes) String() string {
	if i < 0 || i >= ValueTypes(len(_ValueTypesIndex)-1) {
		return "ValueTypes(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _ValueTypesName[_ValueTypesIndex[i]:_ValueTypesIndex[i+1]]
}

var _ValueTypesValues = []ValueTypes{AttributeValue, Nominal, Binary, General, String, FilePath, Numeric, Integer, Real, DateTime, Date, Time, Relational, Map, DataMap, Array, ComplexComposite, Matrix, Tensor, PointList, Uniform, Gauss, Histogram}

var _ValueTypesNameToValueMap = map[string]ValueTypes{
	_ValueTypesName[0:15]:    AttributeValue,
	_ValueTypesName[15:22]:   Nominal,
	_ValueTypesName[22:28]:   Binary,
	_ValueTypesName[28:35]:   General,
	_ValueTypesName[35:41]:   String,
	_ValueTypesName[41:50]:   FilePath,
	_ValueTypesName[50:57]:   Numeric,
	_ValueTypesName[57:64]:   Integer,
	_ValueTypesName[64:68]:   Real,
	_ValueTypesName[68:77]:   DateTime,
	_ValueTypesName[77:81]:   Date,
	_ValueTypesName[81:85]:   Time,
	_ValueTypesName[85:95]:   Relational,
	_ValueTypesName[95:98]:   Map,
	_ValueTypesName[98:106]:  DataMap,
	_ValueTypesName[106:111]: Array,
	_ValueTypesName[111:128]: ComplexComposite,
	_ValueTypesName[128:134]: Matrix,
	_ValueTypesName[134:140]: Tensor,
	_ValueTypesName[140:150]: PointList,
	_ValueTypesName[150:157]: Uniform,
	_ValueTypesName[157:162]: Gauss,
	_ValueTypesName[162:171]: Histogram,
}

// SetString sets the enum value from its
// string representation, and returns an
// error if the string is invalid.
func (i *ValueTypes) SetString(s string) error {
	if val, ok := _ValueTypesNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _ValueTypesNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s does not belong to ValueTypes values", s)
}

// Values returns all possible values this
// enum type has. This slice will be in the
// same order as those returned by Strings.
func (i ValueTypes) Values() []ValueTypes {
	return _ValueTypesValues
}

// Strings returns the string encodings of
// all possible values this enum type has.
// This slice will be in the same order as
// those returned by Values.
func (i ValueTypes) Strings() []string {
	strs := make([]string, len(_ValueTypesValues))
	for k, v := range _ValueTypesValues {
		strs[k] = v.String()
	}
	return strs
}

// IsValid returns whether the value is a
// valid option for its enum type.
func (i ValueTypes) IsValid() bool {
	return i >= 0 && i < ValueTypesN
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i ValueTypes) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *ValueTypes) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}

const _BlockTypesName = "attribute_blocksingle_valuevalue_seriesvalue_series_startvalue_series_endvalue_matrixvalue_matrix_startvalue_matrix_endvalue_matrix_row_start"

var _BlockTypesIndex = [...]uint8{0, 15, 27, 39, 57, 73, 85, 103, 119, 141}

// BlockTypesN is the highest valid value for type BlockTypes, plus one.
const BlockTypesN BlockTypes = 9

func (i BlockTypes) String() string {
	if i < 0 || i >= BlockTypes(len(_BlockTypesIndex)-1) {
		return "BlockTypes(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _BlockTypesName[_BlockTypesIndex[i]:_BlockTypesIndex[i+1]]
}

var _BlockTypesValues = []BlockTypes{AttributeBlock, SingleValue, ValueSeries, ValueSeriesStart, ValueSeriesEnd, ValueMatrix, ValueMatrixStart, ValueMatrixEnd, ValueMatrixRowStart}

var _BlockTypesNameToValueMap = map[string]BlockTypes{
	_BlockTypesName[0:15]:    AttributeBlock,
	_BlockTypesName[15:27]:   SingleValue,
	_BlockTypesName[27:39]:   ValueSeries,
	_BlockTypesName[39:57]:   ValueSeriesStart,
	_BlockTypesName[57:73]:   ValueSeriesEnd,
	_BlockTypesName[73:85]:   ValueMatrix,
	_BlockTypesName[85:103]:  ValueMatrixStart,
	_BlockTypesName[103:119]: ValueMatrixEnd,
	_BlockTypesName[119:141]: ValueMatrixRowStart,
}

// SetString sets the enum value from its
// string representation, and returns an
// error if the string is invalid.
func (i *BlockTypes) SetString(s string) error {
	if val, ok := _BlockTypesNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _BlockTypesNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s does not belong to BlockTypes values", s)
}

// Values returns all possible values this
// enum type has. This slice will be in the
// same order as those returned by Strings.
func (i BlockTypes) Values() []BlockTypes {
	return _BlockTypesValues
}

// Strings returns the string encodings of
// all possible values this enum type has.
// This slice will be in the same order as
// those returned by Values.
func (i BlockTypes) Strings() []string {
	strs := make([]string, len(_BlockTypesValues))
	for k, v := range _BlockTypesValues {
		strs[k] = v.String()
	}
	return strs
}

// IsValid returns whether the value is a
// valid option for its enum type.
func (i BlockTypes) IsValid() bool {
	return i >= 0 && i < BlockTypesN
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i BlockTypes) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *BlockTypes) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
