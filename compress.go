/*
 * compress.go, part of molecool.
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

package chem

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

//compression returns the compression suffix of fname ("gz" or "zst"), or
//the empty string if the file is not compressed.
func compression(fname string) string {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".gz", ".gzip":
		return "gz"
	case ".zst", ".zstd":
		return "zst"
	}
	return ""
}

//formatExt returns the lowercase extension of fname, without the dot,
//ignoring a compression suffix. "water.xyz.zst" gives "xyz".
func formatExt(fname string) string {
	if compression(fname) != "" {
		fname = strings.TrimSuffix(fname, filepath.Ext(fname))
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(fname)), ".")
}

//multiCloser closes a decompressor and the file under it.
type multiCloser struct {
	io.Reader
	closers []func() error
}

func (m *multiCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//openRead opens fname and returns a reader that will
//read data from the file, either 'as is' or decompressing first, depending on the file extension.
//Supported compressions are gzip (.gz) and z-standard (.zst, .zstd).
func openRead(fname string) (io.ReadCloser, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, newCError("", err, "os.Open", "openRead")
	}
	reader := bufio.NewReader(f)
	switch compression(fname) {
	case "gz":
		gz, err := gzip.NewReader(reader)
		if err != nil {
			f.Close()
			return nil, newCError("Can't read gzip header of "+fname, err, "openRead")
		}
		return &multiCloser{gz, []func() error{gz.Close, f.Close}}, nil
	case "zst":
		zr, err := zstd.NewReader(reader)
		if err != nil {
			f.Close()
			return nil, newCError("Can't read zstd stream of "+fname, err, "openRead")
		}
		//zstd's Close doesn't return an error.
		zclose := func() error { zr.Close(); return nil }
		return &multiCloser{zr, []func() error{zclose, f.Close}}, nil
	}
	logger.Debug("reading uncompressed file", zap.String("file", fname))
	return &multiCloser{reader, []func() error{f.Close}}, nil
}

//multiWriteCloser flushes and closes a compressor, and then the file under it.
type multiWriteCloser struct {
	io.Writer
	closers []func() error
}

func (m *multiWriteCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

//createWrite creates fname and returns a writer that will write data, crude or
//compressed with gzip or z-standard, depending on the file extension.
func createWrite(fname string) (io.WriteCloser, error) {
	f, err := os.Create(fname)
	if err != nil {
		return nil, newCError("", err, "os.Create", "createWrite")
	}
	buf := bufio.NewWriter(f)
	switch compression(fname) {
	case "gz":
		gz := gzip.NewWriter(buf)
		return &multiWriteCloser{gz, []func() error{gz.Close, buf.Flush, f.Close}}, nil
	case "zst":
		zw, err := zstd.NewWriter(buf, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, newCError("Can't create zstd stream for "+fname, err, "createWrite")
		}
		return &multiWriteCloser{zw, []func() error{zw.Close, buf.Flush, f.Close}}, nil
	}
	return &multiWriteCloser{buf, []func() error{buf.Flush, f.Close}}, nil
}
