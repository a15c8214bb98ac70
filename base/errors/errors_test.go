// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errCell = New("cell error")

func parse(s string) (int, error) {
	if s == "" {
		return 0, errCell
	}
	return len(s), nil
}

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	err := Log(fmt.Errorf("wrapped: %w", errCell))
	assert.True(t, Is(err, errCell))
	assert.Equal(t, 4, Ignore1(parse("four")))
	assert.Equal(t, 0, Ignore1(parse("")))
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	assert.Equal(t, 3, Warn(parse("abc"))(-1))
	assert.Empty(t, buf.String())

	assert.Equal(t, -1, Warn(parse(""))(-1, "column", "age"))
	assert.Contains(t, buf.String(), "cell error")
	assert.Contains(t, buf.String(), "column=age")

	v := Warn(strconv.ParseFloat("x", 64))(math.NaN())
	assert.True(t, math.IsNaN(v))
}

func TestMust(t *testing.T) {
	assert.Equal(t, 2, Must(parse("ab")))
	assert.Panics(t, func() { Must(parse("")) })
}
