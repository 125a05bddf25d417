/*
 * chemplot.go, part of molecool.
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

//Package chemplot draws molecules and bond-length histograms with gonum/plot.
package chemplot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

//Defaults for the Options.
const (
	DefaultDPI  = 300
	DefaultSize = 12 * vg.Centimeter
)

//ErrSymbolsCoords is returned when the coordinates and symbols given don't
//refer to the same number of atoms.
var ErrSymbolsCoords = errors.New("molecool/chemplot: make sure coordinates and symbols reference the same number of atoms")

//Options are common to all the plots.
type Options struct {
	Output string    //File to save the plot to. The format is taken from the extension. If empty, the plot is not saved.
	Width  vg.Length //zero means DefaultSize
	Height vg.Length //zero means DefaultSize
	DPI    int       //only used for raster formats (png, jpeg, tiff). Zero means DefaultDPI.
	Title  string
}

//withDefaults returns a copy of O with the zero fields set to their defaults.
func (O Options) withDefaults() Options {
	if O.Width <= 0 {
		O.Width = DefaultSize
	}
	if O.Height <= 0 {
		O.Height = DefaultSize
	}
	if O.DPI <= 0 {
		O.DPI = DefaultDPI
	}
	return O
}

//Save writes p to the file named in O.Output. Raster formats are drawn at O.DPI,
//the rest (svg, pdf, eps, tex) are handled by plot.Save. Does nothing if O.Output is empty.
func Save(p *plot.Plot, O Options) error {
	if O.Output == "" {
		return nil
	}
	O = O.withDefaults()
	ext := strings.ToLower(filepath.Ext(O.Output))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
	default:
		if err := p.Save(O.Width, O.Height, O.Output); err != nil {
			return fmt.Errorf("chemplot.Save: %w", err)
		}
		return nil
	}
	c := vgimg.NewWith(vgimg.UseWH(O.Width, O.Height), vgimg.UseDPI(O.DPI), vgimg.UseBackgroundColor(color.White))
	p.Draw(draw.New(c))
	var wt io.WriterTo
	switch ext {
	case ".png":
		wt = vgimg.PngCanvas{Canvas: c}
	case ".jpg", ".jpeg":
		wt = vgimg.JpegCanvas{Canvas: c}
	default:
		wt = vgimg.TiffCanvas{Canvas: c}
	}
	f, err := os.Create(O.Output)
	if err != nil {
		return fmt.Errorf("chemplot.Save: %w", err)
	}
	if _, err = wt.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("chemplot.Save: writing %s: %w", O.Output, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("chemplot.Save: closing %s: %w", O.Output, err)
	}
	return nil
}
