/*
 * config.go, part of molecool.
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

//Package config loads the settings of the molecool command from a YAML file,
//MOLECOOL_* environment variables and defaults, using viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rmera/molecool/internal/logging"
	"github.com/spf13/viper"
)

//envPrefix is the prefix of the environment variables, so bonds.max is
//read from MOLECOOL_BONDS_MAX.
const envPrefix = "MOLECOOL"

//FileName is the name, without extension, of the config file searched for
//when none is given.
const FileName = "molecool"

//BondsConfig sets the distance window, in A, for two atoms to be considered bonded.
type BondsConfig struct {
	Max float64 `mapstructure:"max"`
	Min float64 `mapstructure:"min"`
}

//PlotConfig sets up the molecule and histogram plots.
type PlotConfig struct {
	Width     float64 `mapstructure:"width"`  //cm
	Height    float64 `mapstructure:"height"` //cm
	DPI       int     `mapstructure:"dpi"`
	Azimuth   float64 `mapstructure:"azimuth"`   //degrees
	Elevation float64 `mapstructure:"elevation"` //degrees
	HistMin   float64 `mapstructure:"hist_min"`
	HistMax   float64 `mapstructure:"hist_max"`
	Bins      int     `mapstructure:"bins"` //dividers, one more than the bins
}

//Config holds all the settings.
type Config struct {
	Bonds BondsConfig       `mapstructure:"bonds"`
	Plot  PlotConfig        `mapstructure:"plot"`
	Log   logging.LogConfig `mapstructure:"log"`
}

//defaults, keyed as in the config file.
var defaults = map[string]interface{}{
	"bonds.max":      1.5,
	"bonds.min":      0.0,
	"plot.width":     12.0,
	"plot.height":    12.0,
	"plot.dpi":       300,
	"plot.azimuth":   -60.0,
	"plot.elevation": 30.0,
	"plot.hist_min":  0.0,
	"plot.hist_max":  2.0,
	"plot.bins":      50,
	"log.level":      "info",
	"log.format":     "console",
}

//newViper returns a viper with the defaults set, reading YAML and
//MOLECOOL_ environment variables.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	return v
}

//Default returns the configuration with only the defaults and the environment applied.
func Default() (*Config, error) {
	return unmarshalAndValidate(newViper())
}

//Load reads the config file path. If path is empty, a molecool.yaml file is searched for in
//the current directory and in $HOME/.config/molecool, and the defaults are used if there is none.
//Environment variables override the file.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/molecool")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading %q: %w", path, err)
		}
	}
	return unmarshalAndValidate(v)
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshalling: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

//Validate returns an error describing the first invalid setting in c, or nil.
func (c *Config) Validate() error {
	switch {
	case c.Bonds.Min < 0:
		return fmt.Errorf("config: bonds.min must be >= 0, got %g", c.Bonds.Min)
	case c.Bonds.Max <= c.Bonds.Min:
		return fmt.Errorf("config: bonds.max (%g) must be larger than bonds.min (%g)", c.Bonds.Max, c.Bonds.Min)
	case c.Plot.Width <= 0 || c.Plot.Height <= 0:
		return fmt.Errorf("config: plot.width and plot.height must be positive")
	case c.Plot.DPI <= 0:
		return fmt.Errorf("config: plot.dpi must be positive, got %d", c.Plot.DPI)
	case c.Plot.HistMax <= c.Plot.HistMin:
		return fmt.Errorf("config: plot.hist_max (%g) must be larger than plot.hist_min (%g)", c.Plot.HistMax, c.Plot.HistMin)
	case c.Plot.Bins < 2:
		return fmt.Errorf("config: plot.bins must be at least 2, got %d", c.Plot.Bins)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json", "":
	default:
		return fmt.Errorf("config: log.format must be console or json, got %q", c.Log.Format)
	}
	return nil
}
