/*
 * logger.go, part of molecool.
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

//Package logging provides the structured logger used by the molecool command,
//backed by zap.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//Field is a key-value pair attached to a log entry.
type Field = zap.Field

//Field constructors.
var (
	String  = zap.String
	Int     = zap.Int
	Float64 = zap.Float64
	Bool    = zap.Bool
	Strings = zap.Strings
	Any     = zap.Any
)

//Err attaches err under the key "error".
func Err(err error) Field { return zap.Error(err) }

//Logger is the logging interface for the command and its subcommands.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	//With returns a child Logger that adds fields to every entry.
	With(fields ...Field) Logger

	//Named returns a child Logger with name appended to the current name.
	Named(name string) Logger

	//Zap returns the underlying zap logger, to hand it to the library packages.
	Zap() *zap.Logger

	//Sync flushes any buffered entry.
	Sync() error
}

//LogConfig sets up a Logger.
type LogConfig struct {
	Level       string   `mapstructure:"level"`  //debug, info, warn or error
	Format      string   `mapstructure:"format"` //console or json
	OutputPaths []string `mapstructure:"output_paths"`
}

type zapLogger struct {
	z *zap.Logger
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, fields...) }
func (l *zapLogger) With(fields ...Field) Logger      { return &zapLogger{z: l.z.With(fields...)} }
func (l *zapLogger) Named(name string) Logger         { return &zapLogger{z: l.z.Named(name)} }
func (l *zapLogger) Zap() *zap.Logger                 { return l.z }
func (l *zapLogger) Sync() error                      { return l.z.Sync() }

//ParseLevel returns the zap level for s. It returns an error for unknown levels.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info", "":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("logging: unknown level %q", s)
}

//NewLogger builds a zap-backed Logger. Entries go to stderr unless
//cfg.OutputPaths says otherwise, so they don't mix with the command's results.
func NewLogger(cfg LogConfig) (Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if len(cfg.OutputPaths) == 0 {
		cfg.OutputPaths = []string{"stderr"}
	}
	var encCfg zapcore.EncoderConfig
	encoding := "console"
	switch strings.ToLower(cfg.Format) {
	case "json":
		encCfg = zap.NewProductionEncoderConfig()
		encoding = "json"
	case "console", "":
		encCfg = zap.NewDevelopmentEncoderConfig()
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Encoding:          encoding,
		EncoderConfig:     encCfg,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}
	z, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: building zap logger: %w", err)
	}
	return &zapLogger{z: z}, nil
}

//NewLoggerFromCore returns a Logger writing to core. Mostly for tests, with
//zaptest/observer.
func NewLoggerFromCore(core zapcore.Core) Logger {
	return &zapLogger{z: zap.New(core)}
}

//NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return &zapLogger{z: zap.NewNop()}
}
