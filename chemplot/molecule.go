/*
 * molecule.go, part of molecool.
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
	"math"
	"sort"

	chem "github.com/rmera/molecool"
	v3 "github.com/rmera/molecool/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//View angles used when no MoleculeOptions are given, in degrees.
const (
	DefaultAzimuth   = -60.0
	DefaultElevation = 30.0
)

//MoleculeOptions control DrawMolecule.
type MoleculeOptions struct {
	Options
	Azimuth   float64 //Rotation of the view around the z axis, in degrees.
	Elevation float64 //Angle of the view above the xy plane, in degrees.
}

//DefaultMoleculeOptions returns the options used when DrawMolecule gets nil.
func DefaultMoleculeOptions() *MoleculeOptions {
	return &MoleculeOptions{Options: Options{}.withDefaults(), Azimuth: DefaultAzimuth, Elevation: DefaultElevation}
}

//viewMatrix returns the 3x3 matrix that takes cartesian coordinates to view
//coordinates: horizontal, vertical and depth (larger is closer to the viewer).
func viewMatrix(azimuth, elevation float64) *mat.Dense {
	az := chem.Deg2Rad(azimuth)
	el := chem.Deg2Rad(elevation)
	//columns: screen x, screen y, towards the viewer.
	return mat.NewDense(3, 3, []float64{
		-math.Sin(az), -math.Sin(el) * math.Cos(az), math.Cos(el) * math.Cos(az),
		math.Cos(az), -math.Sin(el) * math.Sin(az), math.Cos(el) * math.Sin(az),
		0, math.Cos(el), math.Sin(el),
	})
}

//Project centers coords on their centroid and returns them rotated to the view
//given by azimuth and elevation, in degrees. The first two columns of each row are the position on the
//screen, the third is the depth, larger for points closer to the viewer.
func Project(coords *v3.Matrix, azimuth, elevation float64) *v3.Matrix {
	centered := v3.Zeros(coords.NVecs())
	centered.SubVec(coords, chem.Centroid(coords))
	ret := v3.Zeros(coords.NVecs())
	ret.Mul(centered, viewMatrix(azimuth, elevation))
	return ret
}

//markerRadius shrinks the atoms as the molecule grows.
func markerRadius(natoms int) vg.Length {
	//the area goes as 200/natoms times the default marker.
	r := 0.5 * math.Sqrt(36*200/float64(natoms))
	return vg.Points(math.Max(2, math.Min(r, 20)))
}

//edgedCircle is a filled circle with a thin black border.
type edgedCircle struct{}

func (edgedCircle) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	draw.CircleGlyph{}.DrawGlyph(c, sty, pt)
	draw.RingGlyph{}.DrawGlyph(c, draw.GlyphStyle{Color: color.Black, Radius: sty.Radius}, pt)
}

//DrawMolecule draws the atoms in coords as circles coloured by element, as seen
//from the point of view given in opts. bonds can be nil. Otherwise, each bond is drawn as a black segment.
//The plot is saved if opts.Output is not empty. A nil opts means DefaultMoleculeOptions.
//It returns an error if the numbers of coordinates and symbols differ, or if a bond refers to
//a non-existent atom.
func DrawMolecule(coords *v3.Matrix, symbols []string, bonds []*chem.Bond, opts *MoleculeOptions) (*plot.Plot, error) {
	if opts == nil {
		opts = DefaultMoleculeOptions()
	}
	if coords == nil || coords.NVecs() != len(symbols) {
		n := 0
		if coords != nil {
			n = coords.NVecs()
		}
		return nil, fmt.Errorf("chemplot.DrawMolecule: %d coordinates, %d symbols: %w", n, len(symbols), ErrSymbolsCoords)
	}
	natoms := len(symbols)
	if natoms == 0 {
		return nil, fmt.Errorf("chemplot.DrawMolecule: no atoms to draw")
	}
	for _, b := range bonds {
		if b.At1 < 0 || b.At2 < 0 || b.At1 >= natoms || b.At2 >= natoms {
			return nil, fmt.Errorf("chemplot.DrawMolecule: bond %s refers to atoms out of range", b)
		}
	}
	proj := Project(coords, opts.Azimuth, opts.Elevation)
	//back to front, so closer atoms hide the ones behind.
	order := make([]int, natoms)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return proj.At(order[i], 2) < proj.At(order[j], 2) })
	pts := make(plotter.XYs, natoms)
	var extent float64
	for k, i := range order {
		pts[k].X = proj.At(i, 0)
		pts[k].Y = proj.At(i, 1)
		extent = math.Max(extent, math.Max(math.Abs(pts[k].X), math.Abs(pts[k].Y)))
	}
	p := plot.New()
	p.Title.Text = opts.Title
	p.HideAxes()
	//same range in both axes, so the molecule is not deformed.
	extent += 1
	p.X.Min, p.X.Max = -extent, extent
	p.Y.Min, p.Y.Max = -extent, extent
	for _, b := range bonds {
		l, err := plotter.NewLine(plotter.XYs{
			{X: proj.At(b.At1, 0), Y: proj.At(b.At1, 1)},
			{X: proj.At(b.At2, 0), Y: proj.At(b.At2, 1)},
		})
		if err != nil {
			return nil, fmt.Errorf("chemplot.DrawMolecule: bond %s: %w", b, err)
		}
		l.Color = color.Black
		l.Width = vg.Points(1.5)
		p.Add(l)
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("chemplot.DrawMolecule: %w", err)
	}
	radius := markerRadius(natoms)
	s.GlyphStyleFunc = func(k int) draw.GlyphStyle {
		return draw.GlyphStyle{Color: chem.Color(symbols[order[k]]), Radius: radius, Shape: edgedCircle{}}
	}
	p.Add(s)
	if err := Save(p, opts.Options); err != nil {
		return p, err
	}
	return p, nil
}
