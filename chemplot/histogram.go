/*
 * histogram.go, part of molecool.
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

package chemplot

import (
	"fmt"
	"image/color"

	chem "github.com/rmera/molecool"
	"github.com/rmera/molecool/histo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

//Defaults for the bond-length histogram, in A.
const (
	DefaultHistMin = 0.0
	DefaultHistMax = 2.0
	DefaultBins    = 50 //number of dividers, so there is one bin less
)

//HistogramOptions control BondHistogram.
type HistogramOptions struct {
	Options
	Min  float64 //Lower bound of the bond lengths shown
	Max  float64 //Upper bound of the bond lengths shown
	Bins int     //Number of evenly spaced dividers between Min and Max.
}

//DefaultHistogramOptions returns the options used when BondHistogram gets nil.
func DefaultHistogramOptions() *HistogramOptions {
	return &HistogramOptions{Options: Options{}.withDefaults(), Min: DefaultHistMin, Max: DefaultHistMax, Bins: DefaultBins}
}

//BondHistogramData bins the lengths of bonds between opts.Min and opts.Max,
//both included. Lengths outside that range are not counted.
func BondHistogramData(bonds []*chem.Bond, opts *HistogramOptions) (*histo.Data, error) {
	if opts == nil {
		opts = DefaultHistogramOptions()
	}
	nbins := opts.Bins
	if nbins == 0 {
		nbins = DefaultBins
	}
	dividers, err := histo.Dividers(opts.Min, opts.Max, nbins)
	if err != nil {
		return nil, fmt.Errorf("chemplot.BondHistogramData: %w", err)
	}
	return histo.NewData(dividers, chem.BondLengths(bonds)), nil
}

//BondHistogram draws a histogram of the lengths of bonds. The plot is saved if
//opts.Output is not empty. A nil opts means DefaultHistogramOptions.
func BondHistogram(bonds []*chem.Bond, opts *HistogramOptions) (*plot.Plot, error) {
	if opts == nil {
		opts = DefaultHistogramOptions()
	}
	data, err := BondHistogramData(bonds, opts)
	if err != nil {
		return nil, err
	}
	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, 0, data.Len()),
		FillColor: color.RGBA{R: 31, G: 119, B: 180, A: 255},
		LineStyle: plotter.DefaultLineStyle,
	}
	for i := 0; i < data.Len(); i++ {
		lo, hi, v := data.Bin(i)
		h.Bins = append(h.Bins, plotter.HistogramBin{Min: lo, Max: hi, Weight: v})
	}
	if data.Len() > 0 {
		lo, hi, _ := data.Bin(0)
		h.Width = hi - lo
	}
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "Bond Length (angstrom)"
	p.Y.Label.Text = "Number of Bonds"
	p.X.Min, p.X.Max = opts.Min, opts.Max
	p.Add(h)
	if data.Max() == 0 {
		p.Y.Min, p.Y.Max = 0, 1
	}
	if err := Save(p, opts.Options); err != nil {
		return p, err
	}
	return p, nil
}
