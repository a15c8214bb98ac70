// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, UserLevel, LevelFromFlags(false, false, false))
}

func TestNewLogger(t *testing.T) {
	var b bytes.Buffer
	l := NewLogger(&b, slog.LevelWarn)
	l.Info("hidden")
	l.Warn("shown", "value", "x")
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "level=WARN msg=shown value=x")
}

func TestSetDefault(t *testing.T) {
	old, oldLevel := slog.Default(), UserLevel
	defer func() {
		slog.SetDefault(old)
		UserLevel = oldLevel
	}()
	var b bytes.Buffer
	SetDefault(&b, slog.LevelError)
	assert.Equal(t, slog.LevelError, UserLevel)
	slog.Warn("hidden")
	slog.Error("shown")
	assert.NotContains(t, b.String(), "hidden")
	assert.Contains(t, b.String(), "msg=shown")
}
