// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors extends the standard library errors package with
// helpers for errors that are logged or recovered rather than returned,
// such as a cell that cannot be parsed while reading a data file.
// It re-exports the standard library functions that the rest of the
// module uses, so it can be imported in place of the standard package.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"strconv"
)

var (
	// New is the standard library [errors.New] function.
	New = errors.New

	// Is is the standard library [errors.Is] function.
	Is = errors.Is

	// Join is the standard library [errors.Join] function.
	Join = errors.Join
)

// Log logs the given error at the error level if it is non-nil,
// and returns it unchanged. The intended usage is:
//
//	return errors.Log(c.Close())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Warn recovers from err by returning fallback in place of v. The
// failure is logged at the warning level together with the given
// key-value attributes. If err is nil, v is returned. The intended
// usage is:
//
//	return errors.Warn(strconv.ParseFloat(s, 64))(math.NaN(), "value", s)
func Warn[T any](v T, err error) func(fallback T, args ...any) T {
	return func(fallback T, args ...any) T {
		if err == nil {
			return v
		}
		slog.Warn(err.Error(), args...)
		return fallback
	}
}

// Must panics if err is non-nil, and otherwise returns v.
// It is intended for static definitions that cannot fail
// in a correct program.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(fmt.Errorf("%w | %s", err, CallerInfo()))
	}
	return v
}

// Ignore1 ignores an error return value for a function returning
// a value and an error, allowing direct usage of the value.
func Ignore1[T any](v T, err error) T {
	return v
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
