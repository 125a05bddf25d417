/*
 * chemplot_test.go, part of molecool.
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
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	chem "github.com/rmera/molecool"
	"github.com/rmera/molecool/histo"
	v3 "github.com/rmera/molecool/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func readMol(Te *testing.T, name string) (*chem.Molecule, []*chem.Bond) {
	Te.Helper()
	mol, err := chem.ReadFile(filepath.Join("..", "testdata", name))
	require.NoError(Te, err)
	bonds, err := chem.BondList(mol.Coords[0], chem.DefaultMaxBond, chem.DefaultMinBond)
	require.NoError(Te, err)
	return mol, bonds
}

func TestDrawMolecule(Te *testing.T) {
	mol, bonds := readMol(Te, "water.xyz")
	out := filepath.Join(Te.TempDir(), "water.png")
	opts := DefaultMoleculeOptions()
	opts.Output = out
	opts.DPI = 100
	opts.Width = 2 * vg.Inch
	opts.Height = 2 * vg.Inch
	p, err := DrawMolecule(mol.Coords[0], mol.Symbols(), bonds, opts)
	require.NoError(Te, err)
	require.NotNil(Te, p)
	f, err := os.Open(out)
	require.NoError(Te, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(Te, err)
	assert.Equal(Te, 200, cfg.Width)
	assert.Equal(Te, 200, cfg.Height)
}

func TestDrawMoleculeNoBondsNoSave(Te *testing.T) {
	mol, _ := readMol(Te, "benzene.xyz")
	p, err := DrawMolecule(mol.Coords[0], mol.Symbols(), nil, nil)
	require.NoError(Te, err)
	assert.Equal(Te, p.X.Max-p.X.Min, p.Y.Max-p.Y.Min)
}

func TestDrawMoleculeSVG(Te *testing.T) {
	mol, bonds := readMol(Te, "benzene.xyz")
	out := filepath.Join(Te.TempDir(), "benzene.svg")
	_, err := DrawMolecule(mol.Coords[0], mol.Symbols(), bonds, &MoleculeOptions{Options: Options{Output: out}, Elevation: 90})
	require.NoError(Te, err)
	st, err := os.Stat(out)
	require.NoError(Te, err)
	assert.Greater(Te, st.Size(), int64(0))
}

func TestDrawMoleculeErrors(Te *testing.T) {
	mol, _ := readMol(Te, "water.xyz")
	_, err := DrawMolecule(mol.Coords[0], []string{"O", "H"}, nil, nil)
	assert.True(Te, errors.Is(err, ErrSymbolsCoords))
	_, err = DrawMolecule(mol.Coords[0], mol.Symbols(), []*chem.Bond{{At1: 0, At2: 3}}, nil)
	assert.Error(Te, err)
	_, err = DrawMolecule(mol.Coords[0], mol.Symbols(), nil, &MoleculeOptions{Options: Options{Output: filepath.Join(Te.TempDir(), "water.xyz")}})
	assert.Error(Te, err)
}

func TestProject(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{1, 2, 3, -1, -2, -3})
	require.NoError(Te, err)
	//looking from the +x axis, y goes right, z goes up and x comes to the viewer.
	proj := Project(coords, 0, 0)
	assert.InDelta(Te, 2.0, proj.At(0, 0), 1e-12)
	assert.InDelta(Te, 3.0, proj.At(0, 1), 1e-12)
	assert.InDelta(Te, 1.0, proj.At(0, 2), 1e-12)
	//from the top, depth is z.
	proj = Project(coords, 0, 90)
	assert.InDelta(Te, 3.0, proj.At(0, 2), 1e-12)
	assert.InDelta(Te, -3.0, proj.At(1, 2), 1e-12)
	//rotations keep distances
	proj = Project(coords, DefaultAzimuth, DefaultElevation)
	d, err := chem.Distance(proj.VecView(0), proj.VecView(1))
	require.NoError(Te, err)
	assert.InDelta(Te, 2*3.7416573867739413, d, 1e-9)
}

func TestMarkerRadius(Te *testing.T) {
	assert.Equal(Te, vg.Points(20), markerRadius(1))
	assert.Equal(Te, vg.Points(2), markerRadius(100000))
	assert.Greater(Te, markerRadius(3), markerRadius(12))
}

func TestBondHistogram(Te *testing.T) {
	_, bonds := readMol(Te, "benzene.xyz")
	data, err := BondHistogramData(bonds, nil)
	require.NoError(Te, err)
	assert.Equal(Te, DefaultBins-1, data.Len())
	assert.Equal(Te, 12, data.Total())
	//C-H bonds are 1.08 A, C-C are 1.39 A
	assert.Equal(Te, 6.0, data.View()[26])
	assert.Equal(Te, 6.0, data.View()[34])
	out := filepath.Join(Te.TempDir(), "hist.png")
	opts := DefaultHistogramOptions()
	opts.Output = out
	opts.DPI = 72
	p, err := BondHistogram(bonds, opts)
	require.NoError(Te, err)
	assert.Equal(Te, "Bond Length (angstrom)", p.X.Label.Text)
	assert.Equal(Te, "Number of Bonds", p.Y.Label.Text)
	_, err = os.Stat(out)
	assert.NoError(Te, err)
}

func TestBondHistogramEdges(Te *testing.T) {
	bonds := []*chem.Bond{{Dist: 0}, {Dist: 2}, {Dist: 2.5}}
	data, err := BondHistogramData(bonds, nil)
	require.NoError(Te, err)
	lo, hi, v := data.Bin(data.Len() - 1)
	assert.Equal(Te, DefaultHistMax, hi)
	assert.InDelta(Te, 2-2.0/49, lo, 1e-12)
	assert.Equal(Te, 1.0, v)
	assert.Equal(Te, 1.0, data.View()[0])
	assert.Equal(Te, 2, data.Total())
}

func TestBondHistogramEmptyAndErrors(Te *testing.T) {
	p, err := BondHistogram(nil, nil)
	require.NoError(Te, err)
	assert.Equal(Te, 1.0, p.Y.Max)
	_, err = BondHistogram(nil, &HistogramOptions{Min: 2, Max: 1, Bins: 10})
	assert.True(Te, errors.Is(err, histo.ErrDividers))
	_, err = BondHistogram(nil, &HistogramOptions{Min: 0, Max: 2, Bins: 1})
	assert.True(Te, errors.Is(err, histo.ErrDividers))
}
