/*
 * geometric.go, part of molecool.
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
	"fmt"
	"math"

	v3 "github.com/rmera/molecool/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//checkVecs panics if any of the given matrices is nil or is not a single vector.
func checkVecs(vecs ...*v3.Matrix) {
	for number, point := range vecs {
		if point == nil {
			panic(PanicMsg(fmt.Sprintf("molecool: Vector %d is nil", number)))
		}
		if pr, pc := point.Dims(); pr != 1 || pc != 3 {
			panic(PanicMsg(fmt.Sprintf("molecool: Vector %d has invalid shape", number)))
		}
	}
}

//Distance returns the euclidean distance between the points a and b.
//It returns an error wrapping ErrSamePoint if both points are the same.
func Distance(a, b *v3.Matrix) (float64, error) {
	checkVecs(a, b)
	d := floats.Distance(a.RawRowView(0), b.RawRowView(0), 2)
	if d == 0 {
		return 0, newCError(fmt.Sprintf("Points %v and %v", a.RawRowView(0), b.RawRowView(0)), ErrSamePoint, "Distance")
	}
	return d, nil
}

//Angle takes 2 vectors and calculates the angle in radians between them.
//It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm() * v2.Norm()
	dotprod := v1.Dot(v2)
	argument := dotprod / normproduct
	//Take care of floating point math errors
	if math.Abs(argument-1) <= appzero || argument > 1 {
		argument = 1
	} else if math.Abs(argument+1) <= appzero || argument < -1 {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//BondAngle returns the angle ABC, formed at the vertex b by the vectors b-a and b-c.
//The angle is in radians, unless degrees is given and true.
func BondAngle(a, b, c *v3.Matrix, degrees ...bool) float64 {
	checkVecs(a, b, c)
	ab := v3.Zeros(1)
	cb := v3.Zeros(1)
	ab.Sub(b, a)
	cb.Sub(b, c)
	angle := Angle(ab, cb)
	if len(degrees) > 0 && degrees[0] {
		return Rad2Deg(angle)
	}
	return angle
}

//Dihedral calculates the dihedral between the points a, b, c, d, where the first plane
//is defined by abc and the second by bcd. The result is in radians, in the range (-pi, pi].
func Dihedral(a, b, c, d *v3.Matrix) float64 {
	checkVecs(a, b, c, d)
	//bma=b minus a
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bmascaled := v3.Zeros(1)
	bma.Sub(b, a)
	cmb.Sub(c, b)
	dmc.Sub(d, c)
	bmascaled.Scale(cmb.Norm(), bma)
	first := bmascaled.Dot(cross(cmb, dmc))
	v1 := cross(bma, cmb)
	v2 := cross(cmb, dmc)
	second := v1.Dot(v2)
	return math.Atan2(first, second)
}

//cross returns the cross product of the first vectors of a and b.
func cross(a, b *v3.Matrix) *v3.Matrix {
	c := v3.Zeros(1)
	c.Cross(a, b)
	return c
}

//DistanceMatrix returns a symmetric matrix with all the pairwise distances between
//the points in coords. Returns an error wrapping ErrSamePoint if two points are the same.
func DistanceMatrix(coords *v3.Matrix) (*mat.SymDense, error) {
	n := coords.NVecs()
	ret := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := Distance(coords.VecView(i), coords.VecView(j))
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("DistanceMatrix: atoms %d and %d", i, j))
			}
			ret.SetSym(i, j, d)
		}
	}
	return ret, nil
}

//Centroid returns the geometric center of the points in coords.
func Centroid(coords *v3.Matrix) *v3.Matrix {
	n := coords.NVecs()
	ret := v3.Zeros(1)
	if n == 0 {
		return ret
	}
	row := ret.RawRowView(0)
	for i := 0; i < n; i++ {
		floats.Add(row, coords.RawRowView(i))
	}
	floats.Scale(1/float64(n), row)
	return ret
}

//CenterOfMass returns the center of mass of the points in geometry, with
//the masses given. If masses is nil, all atoms are given the same mass.
func CenterOfMass(geometry *v3.Matrix, masses []float64) (*v3.Matrix, error) {
	if geometry == nil {
		return nil, newCError("nil matrix to get the center of mass", nil, "CenterOfMass")
	}
	if masses == nil {
		return Centroid(geometry), nil
	}
	n := geometry.NVecs()
	if len(masses) != n {
		return nil, newCError(fmt.Sprintf("%d masses given for %d atoms", len(masses), n), ErrSymbolsCoords, "CenterOfMass")
	}
	total := floats.Sum(masses)
	if total == 0 {
		return nil, newCError("total mass is zero", nil, "CenterOfMass")
	}
	ret := v3.Zeros(1)
	row := ret.RawRowView(0)
	for i := 0; i < n; i++ {
		floats.AddScaled(row, masses[i], geometry.RawRowView(i))
	}
	floats.Scale(1/total, row)
	return ret, nil
}
