/*
 * draw.go, part of molecool.
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
	chem "github.com/rmera/molecool"
	"github.com/rmera/molecool/chemplot"
	"github.com/rmera/molecool/internal/logging"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
)

//drawFlags are shared by the draw and watch commands.
type drawFlags struct {
	output  string
	noBonds bool
	dpi     int
	frame   int
	title   string
	azim    float64
	elev    float64
}

func (f *drawFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "image file to write; the format is taken from the extension (png, jpg, tiff, svg, pdf, eps)")
	fl.BoolVar(&f.noBonds, "no-bonds", false, "draw only the atoms")
	fl.IntVar(&f.dpi, "dpi", 0, "resolution of raster images (default from config)")
	fl.IntVar(&f.frame, "frame", 0, "frame of the file to draw")
	fl.StringVar(&f.title, "title", "", "title of the plot")
	fl.Float64Var(&f.azim, "azimuth", 0, "azimuth of the view, in degrees (default from config)")
	fl.Float64Var(&f.elev, "elevation", 0, "elevation of the view, in degrees (default from config)")
	addBondFlags(cmd)
	cmd.MarkFlagRequired("output")
}

//plotOptions builds the common plot options from the config, with the
//output file and, if positive, the dpi given.
func plotOptions(app *appContext, output, title string, dpi int) chemplot.Options {
	o := chemplot.Options{
		Output: output,
		Title:  title,
		Width:  vg.Length(app.Config.Plot.Width) * vg.Centimeter,
		Height: vg.Length(app.Config.Plot.Height) * vg.Centimeter,
		DPI:    app.Config.Plot.DPI,
	}
	if dpi > 0 {
		o.DPI = dpi
	}
	return o
}

//drawMolecule reads fname and draws it as requested in f.
func (f *drawFlags) drawMolecule(cmd *cobra.Command, app *appContext, fname string) error {
	mol, err := readMolecule(app, fname, f.frame)
	if err != nil {
		return err
	}
	opts := &chemplot.MoleculeOptions{
		Options:   plotOptions(app, f.output, f.title, f.dpi),
		Azimuth:   app.Config.Plot.Azimuth,
		Elevation: app.Config.Plot.Elevation,
	}
	if cmd.Flags().Changed("azimuth") {
		opts.Azimuth = f.azim
	}
	if cmd.Flags().Changed("elevation") {
		opts.Elevation = f.elev
	}
	var bonds []*chem.Bond
	if !f.noBonds {
		bonds, err = bondList(cmd, app, mol, f.frame)
		if err != nil {
			return err
		}
	}
	if _, err := chemplot.DrawMolecule(mol.Coords[f.frame], mol.Symbols(), bonds, opts); err != nil {
		return err
	}
	app.Logger.Info("molecule drawn", logging.String("input", fname), logging.String("output", f.output),
		logging.Int("atoms", mol.Len()), logging.Int("bonds", len(bonds)))
	return nil
}

func newDrawCommand() *cobra.Command {
	f := &drawFlags{}
	cmd := &cobra.Command{
		Use:   "draw FILE -o IMAGE",
		Short: "Draw a molecule",
		Long:  "Draw the atoms of a molecule coloured by element and, unless --no-bonds is given, its bonds.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			return f.drawMolecule(cmd, app, args[0])
		},
	}
	f.register(cmd)
	return cmd
}
