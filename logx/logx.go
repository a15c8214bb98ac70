// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the selection of the user log level and
// the construction of [slog] loggers for command line tools.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the verbosity level that the user has selected for
// what logging messages should be shown. Messages at levels at or
// above this level will be shown. The default user verbosity level
// is [slog.LevelWarn], or [slog.LevelDebug] with the debug build tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [UserLevel])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return UserLevel
	}
}

// NewLogger returns a logger writing text records at or above
// the given level to w.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetDefault sets [UserLevel] and makes a logger writing to w
// at that level the default [slog] logger.
func SetDefault(w io.Writer, level slog.Level) {
	UserLevel = level
	slog.SetDefault(NewLogger(w, level))
}
