/*
 * config_test.go, part of molecool.
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(Te *testing.T, content string) string {
	Te.Helper()
	path := filepath.Join(Te.TempDir(), "molecool.yaml")
	require.NoError(Te, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(Te *testing.T) {
	cfg, err := Default()
	require.NoError(Te, err)
	assert.Equal(Te, 1.5, cfg.Bonds.Max)
	assert.Equal(Te, 0.0, cfg.Bonds.Min)
	assert.Equal(Te, 300, cfg.Plot.DPI)
	assert.Equal(Te, -60.0, cfg.Plot.Azimuth)
	assert.Equal(Te, 30.0, cfg.Plot.Elevation)
	assert.Equal(Te, 2.0, cfg.Plot.HistMax)
	assert.Equal(Te, 50, cfg.Plot.Bins)
	assert.Equal(Te, "info", cfg.Log.Level)
	assert.Equal(Te, "console", cfg.Log.Format)
}

func TestLoadFile(Te *testing.T) {
	path := writeConfig(Te, `
bonds:
  max: 1.6
plot:
  azimuth: 0
  dpi: 150
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(Te, err)
	assert.Equal(Te, 1.6, cfg.Bonds.Max)
	assert.Equal(Te, 0.0, cfg.Bonds.Min)
	//an explicit zero is kept
	assert.Equal(Te, 0.0, cfg.Plot.Azimuth)
	assert.Equal(Te, 150, cfg.Plot.DPI)
	assert.Equal(Te, 12.0, cfg.Plot.Width)
	assert.Equal(Te, "debug", cfg.Log.Level)
}

func TestEnvOverridesFile(Te *testing.T) {
	path := writeConfig(Te, "bonds:\n  max: 1.6\n")
	Te.Setenv("MOLECOOL_BONDS_MAX", "2.5")
	Te.Setenv("MOLECOOL_PLOT_BINS", "20")
	cfg, err := Load(path)
	require.NoError(Te, err)
	assert.Equal(Te, 2.5, cfg.Bonds.Max)
	assert.Equal(Te, 20, cfg.Plot.Bins)
}

func TestLoadWithoutFile(Te *testing.T) {
	wd, err := os.Getwd()
	require.NoError(Te, err)
	require.NoError(Te, os.Chdir(Te.TempDir()))
	defer os.Chdir(wd)
	Te.Setenv("HOME", Te.TempDir())
	cfg, err := Load("")
	require.NoError(Te, err)
	assert.Equal(Te, 1.5, cfg.Bonds.Max)
}

func TestLoadErrors(Te *testing.T) {
	_, err := Load(filepath.Join(Te.TempDir(), "missing.yaml"))
	assert.Error(Te, err)
	_, err = Load(writeConfig(Te, "bonds: [1, 2\n"))
	assert.Error(Te, err)
}

func TestValidate(Te *testing.T) {
	for name, content := range map[string]string{
		"negative min":  "bonds:\n  min: -0.1\n",
		"empty window":  "bonds:\n  max: 1\n  min: 1\n",
		"zero dpi":      "plot:\n  dpi: 0\n",
		"bad size":      "plot:\n  width: -3\n",
		"hist range":    "plot:\n  hist_min: 3\n",
		"too few bins":  "plot:\n  bins: 1\n",
		"bad log level": "log:\n  level: chatty\n",
		"bad format":    "log:\n  format: xml\n",
	} {
		_, err := Load(writeConfig(Te, content))
		assert.Error(Te, err, name)
	}
}
