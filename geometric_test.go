/*
 * geometric_test.go, part of molecool.
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
	"errors"
	"math"
	"testing"

	v3 "github.com/rmera/molecool/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//vec returns a 1x3 matrix with the given coordinates.
func vec(x, y, z float64) *v3.Matrix {
	v, err := v3.NewMatrix([]float64{x, y, z})
	if err != nil {
		panic(err)
	}
	return v
}

func TestDistance(Te *testing.T) {
	d, err := Distance(vec(0, 0, 0), vec(0, 1, 0))
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, d, 1e-12)
	d, err = Distance(vec(1, 2, 3), vec(4, 6, 3))
	require.NoError(Te, err)
	assert.InDelta(Te, 5.0, d, 1e-12)
}

func TestDistanceSamePoint(Te *testing.T) {
	_, err := Distance(vec(1, 1, 1), vec(1, 1, 1))
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, ErrSamePoint))
}

func TestDistancePanicsOnNil(Te *testing.T) {
	assert.Panics(Te, func() { Distance(nil, vec(0, 0, 0)) })
}

func TestBondAngle(Te *testing.T) {
	a := vec(0, 0, -1)
	b := vec(0, 1, 0)
	c := vec(1, 0, 0)
	assert.InDelta(Te, 60.0, BondAngle(a, b, c, true), 1e-10)
	assert.InDelta(Te, math.Pi/3, BondAngle(a, b, c), 1e-12)
	assert.InDelta(Te, math.Pi/3, BondAngle(a, b, c, false), 1e-12)
	//right angle
	assert.InDelta(Te, 90.0, BondAngle(vec(0, 0, -1), vec(0, 0, 0), vec(1, 0, 0), true), 1e-10)
	//collinear points
	assert.InDelta(Te, 180.0, BondAngle(vec(-1, 0, 0), vec(0, 0, 0), vec(1, 0, 0), true), 1e-10)
	assert.Equal(Te, 0.0, BondAngle(vec(1, 0, 0), vec(0, 0, 0), vec(2, 0, 0)))
}

func TestDihedral(Te *testing.T) {
	a := vec(1, 0, 0)
	b := vec(0, 0, 0)
	c := vec(0, 1, 0)
	assert.InDelta(Te, -90.0, Rad2Deg(Dihedral(a, b, c, vec(0, 1, 1))), 1e-10)
	assert.InDelta(Te, 0.0, Rad2Deg(Dihedral(a, b, c, vec(1, 1, 0))), 1e-10)
	assert.InDelta(Te, 180.0, math.Abs(Rad2Deg(Dihedral(a, b, c, vec(-1, 1, 0)))), 1e-10)
}

func TestDegRad(Te *testing.T) {
	assert.InDelta(Te, math.Pi, Deg2Rad(180), 1e-12)
	assert.InDelta(Te, 45.0, Rad2Deg(math.Pi/4), 1e-12)
}

func TestDistanceMatrix(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 3, 4, 0, 0, 0, 1})
	require.NoError(Te, err)
	dm, err := DistanceMatrix(coords)
	require.NoError(Te, err)
	assert.Equal(Te, 3, dm.SymmetricDim())
	assert.InDelta(Te, 5.0, dm.At(0, 1), 1e-12)
	assert.InDelta(Te, 5.0, dm.At(1, 0), 1e-12)
	assert.InDelta(Te, 1.0, dm.At(2, 0), 1e-12)
	assert.Equal(Te, 0.0, dm.At(1, 1))
	same, err := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 0})
	require.NoError(Te, err)
	_, err = DistanceMatrix(same)
	assert.True(Te, errors.Is(err, ErrSamePoint))
}

func TestCenters(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 2, 0, 0})
	require.NoError(Te, err)
	c := Centroid(coords)
	assert.Equal(Te, []float64{1, 0, 0}, c.RawRowView(0))
	com, err := CenterOfMass(coords, []float64{3, 1})
	require.NoError(Te, err)
	assert.InDelta(Te, 0.5, com.At(0, 0), 1e-12)
	com, err = CenterOfMass(coords, nil)
	require.NoError(Te, err)
	assert.InDelta(Te, 1.0, com.At(0, 0), 1e-12)
	_, err = CenterOfMass(coords, []float64{1})
	assert.True(Te, errors.Is(err, ErrSymbolsCoords))
}
