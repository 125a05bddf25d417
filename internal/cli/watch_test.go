/*
 * watch_test.go, part of molecool.
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

package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rmera/molecool/internal/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWatchFile(Te *testing.T) {
	dir := Te.TempDir()
	fname := filepath.Join(dir, "water.xyz")
	data, err := os.ReadFile(testdata("water.xyz"))
	require.NoError(Te, err)
	require.NoError(Te, os.WriteFile(fname, data, 0o644))

	core, logs := observer.New(zapcore.WarnLevel)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	draws := make(chan int, 16)
	n := 0
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, fname, logging.NewLoggerFromCore(core), func() error {
			n++
			draws <- n
			if n == 2 {
				return errors.New("half-written file")
			}
			return nil
		})
	}()
	waitDraw := func() {
		select {
		case <-draws:
		case <-time.After(10 * time.Second):
			Te.Fatal("timed out waiting for a redraw")
		}
	}
	waitDraw() //the first drawing
	require.NoError(Te, os.WriteFile(fname, data, 0o644))
	waitDraw()
	//other files in the directory are ignored
	require.NoError(Te, os.WriteFile(filepath.Join(dir, "other.xyz"), data, 0o644))
	cancel()
	select {
	case err := <-done:
		require.NoError(Te, err)
	case <-time.After(10 * time.Second):
		Te.Fatal("watchFile did not return after cancel")
	}
	require.GreaterOrEqual(Te, logs.FilterMessage("drawing failed").Len(), 1)
}
