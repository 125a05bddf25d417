/*
 * hist.go, part of molecool.
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
	"github.com/rmera/molecool/chemplot"
	"github.com/rmera/molecool/internal/logging"
	"github.com/spf13/cobra"
)

func newHistCommand() *cobra.Command {
	var (
		output, title    string
		dpi, bins, frame int
		hmin, hmax       float64
	)
	cmd := &cobra.Command{
		Use:   "hist FILE -o IMAGE",
		Short: "Plot the histogram of bond lengths of a molecule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			mol, err := readMolecule(app, args[0], frame)
			if err != nil {
				return err
			}
			bonds, err := bondList(cmd, app, mol, frame)
			if err != nil {
				return err
			}
			opts := &chemplot.HistogramOptions{
				Options: plotOptions(app, output, title, dpi),
				Min:     app.Config.Plot.HistMin,
				Max:     app.Config.Plot.HistMax,
				Bins:    app.Config.Plot.Bins,
			}
			fl := cmd.Flags()
			if fl.Changed("hist-min") {
				opts.Min = hmin
			}
			if fl.Changed("hist-max") {
				opts.Max = hmax
			}
			if fl.Changed("bins") {
				opts.Bins = bins
			}
			if _, err := chemplot.BondHistogram(bonds, opts); err != nil {
				return err
			}
			app.Logger.Info("histogram drawn", logging.String("input", args[0]), logging.String("output", output),
				logging.Int("bonds", len(bonds)))
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&output, "output", "o", "", "image file to write")
	fl.StringVar(&title, "title", "", "title of the plot")
	fl.IntVar(&dpi, "dpi", 0, "resolution of raster images (default from config)")
	fl.IntVar(&frame, "frame", 0, "frame of the file to use")
	fl.Float64Var(&hmin, "hist-min", chemplot.DefaultHistMin, "lower bound of the bond lengths shown (default from config)")
	fl.Float64Var(&hmax, "hist-max", chemplot.DefaultHistMax, "upper bound of the bond lengths shown (default from config)")
	fl.IntVar(&bins, "bins", chemplot.DefaultBins, "number of evenly spaced dividers, that is bins+1 (default from config)")
	addBondFlags(cmd)
	cmd.MarkFlagRequired("output")
	return cmd
}
