/*
 * logger_test.go, part of molecool.
 *
 * Copyright 2026 The molecool authors.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(Te *testing.T) {
	for in, want := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"INFO":  zapcore.InfoLevel,
		"":      zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		got, err := ParseLevel(in)
		require.NoError(Te, err, in)
		assert.Equal(Te, want, got, in)
	}
	_, err := ParseLevel("loud")
	assert.Error(Te, err)
}

func TestNewLoggerToFile(Te *testing.T) {
	out := filepath.Join(Te.TempDir(), "log.json")
	l, err := NewLogger(LogConfig{Level: "warn", Format: "json", OutputPaths: []string{out}})
	require.NoError(Te, err)
	l.Info("not shown")
	l.Named("bonds").Warn("shown", Int("atoms", 3), Err(errors.New("boom")))
	require.NoError(Te, l.Sync())
	b, err := os.ReadFile(out)
	require.NoError(Te, err)
	s := string(b)
	assert.Equal(Te, 1, strings.Count(strings.TrimSpace(s), "\n")+1)
	assert.Contains(Te, s, `"msg":"shown"`)
	assert.Contains(Te, s, `"logger":"bonds"`)
	assert.Contains(Te, s, `"atoms":3`)
	assert.Contains(Te, s, `"error":"boom"`)
}

func TestNewLoggerErrors(Te *testing.T) {
	_, err := NewLogger(LogConfig{Level: "chatty"})
	assert.Error(Te, err)
	_, err = NewLogger(LogConfig{Format: "xml"})
	assert.Error(Te, err)
}

func TestObservedLogger(Te *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewLoggerFromCore(core).With(String("file", "water.xyz"))
	l.Debug("reading")
	l.Error("failed")
	require.Equal(Te, 2, logs.Len())
	assert.Equal(Te, "water.xyz", logs.All()[1].ContextMap()["file"])
	assert.NotNil(Te, l.Zap())
	n := NewNopLogger()
	n.Error("nothing")
	assert.NoError(Te, n.Sync())
}
