// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/ntj/ComplexRapidMiner-sub004/base/errors"
)

// SetFromDefaults sets the fields of the given struct pointer from their
// `def:` struct field tags, recursing into nested structs without one.
// Fields implementing [encoding.TextUnmarshaler] are set from the tag text.
// Errors are automatically logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return errors.Log(fmt.Errorf("config.SetFromDefaults: need a non-nil struct pointer, got %T", cfg))
	}
	return errors.Log(setFromDefaults(v.Elem()))
}

func setFromDefaults(val reflect.Value) error {
	typ := val.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("def")
		if !ok {
			if f.Type.Kind() == reflect.Struct {
				errs = append(errs, setFromDefaults(fv))
			}
			continue
		}
		if err := setString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// setString sets the value from its textual form.
func setString(fv reflect.Value, s string) error {
	if tu, ok := fv.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		fv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetInt(n)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(s, fv.Type().Bits())
		if err != nil {
			return err
		}
		fv.SetFloat(x)
	default:
		return fmt.Errorf("unsupported kind %v", fv.Kind())
	}
	return nil
}
