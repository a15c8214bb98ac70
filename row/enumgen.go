// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package row

import (
	"fmt"
	"strconv"
	"strings"
)

const _KindsName = "double_arrayfloat_arraylong_arrayint_arrayshort_arraybyte_arrayboolean_arraydouble_sparse_arrayfloat_sparse_arraylong_sparse_arrayint_sparse_arrayshort_sparse_arraybyte_sparse_arrayboolean_sparse_arraysparse_map"

var _KindsIndex = [...]uint8{0, 12, 23, 33, 42, 53, 63, 76, 95, 113, 130, 146, 164, 181, 201, 211}

// KindsN is the highest valid value for type Kinds, plus one.
const KindsN Kinds = 15

func (i Kinds) String() string {
	if i < 0 || i >= Kinds(len(_KindsIndex)-1) {
		return "Kinds(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _KindsName[_KindsIndex[i]:_KindsIndex[i+1]]
}

var _KindsValues = []Kinds{DoubleArray, FloatArray, LongArray, IntArray, ShortArray, ByteArray, BooleanArray, DoubleSparseArray, FloatSparseArray, LongSparseArray, IntSparseArray, ShortSparseArray, ByteSparseArray, BooleanSparseArray, SparseMap}

var _KindsNameToValueMap = map[string]Kinds{
	_KindsName[0:12]:    DoubleArray,
	_KindsName[12:23]:   FloatArray,
	_KindsName[23:33]:   LongArray,
	_KindsName[33:42]:   IntArray,
	_KindsName[42:53]:   ShortArray,
	_KindsName[53:63]:   ByteArray,
	_KindsName[63:76]:   BooleanArray,
	_KindsName[76:95]:   DoubleSparseArray,
	_KindsName[95:113]:  FloatSparseArray,
	_KindsName[113:130]: LongSparseArray,
	_KindsName[130:146]: IntSparseArray,
	_KindsName[146:164]: ShortSparseArray,
	_KindsName[164:181]: ByteSparseArray,
	_KindsName[181:201]: BooleanSparseArray,
	_KindsName[201:211]: SparseMap,
}

// SetString sets the enum value from its
// string representation, and returns an
// error if the string is invalid.
func (i *Kinds) SetString(s string) error {
	if val, ok := _KindsNameToValueMap[s]; ok {
		*i = val
		return nil
	}
	if val, ok := _KindsNameToValueMap[strings.ToLower(s)]; ok {
		*i = val
		return nil
	}
	return fmt.Errorf("%s does not belong to Kinds values", s)
}

// Values returns all possible values this
// enum type has. This slice will be in the
// same order as those returned by Strings.
func (i Kinds) Values() []Kinds {
	return _KindsValues
}

// Strings returns the string encodings of
// all possible values this enum type has.
// This slice will be in the same order as
// those returned by Values.
func (i Kinds) Strings() []string {
	strs := make([]string, len(_KindsValues))
	for k, v := range _KindsValues {
		strs[k] = v.String()
	}
	return strs
}

// IsValid returns whether the value is a
// valid option for its enum type.
func (i Kinds) IsValid() bool {
	return i >= 0 && i < KindsN
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (i Kinds) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (i *Kinds) UnmarshalText(text []byte) error {
	return i.SetString(string(text))
}
