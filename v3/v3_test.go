/*
 * v3_test.go, part of molecool.
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

package v3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// Returns an identity matrix spanning span cols and rows
func gnEye(span int) *mat.Dense {
	A := mat.NewDense(span, span, nil)
	for i := 0; i < span; i++ {
		A.Set(i, i, 1.0)
	}
	return A
}

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	assert.Equal(Te, 2, A.NVecs())
	_, err = NewMatrix([]float64{1, 2, 3, 4})
	assert.Error(Te, err)
	_, err = NewMatrix(nil)
	assert.Error(Te, err)
}

func TestMulIdentity(Te *testing.T) {
	A, err := NewMatrix([]float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	T := Zeros(3)
	T.Mul(A, gnEye(3))
	assert.True(Te, mat.Equal(A, T))
	//the receiver is also an argument
	A.Mul(A, gnEye(3))
	assert.True(Te, mat.Equal(A, T))
}

func TestVecView(Te *testing.T) {
	A, err := NewMatrix([]float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	View := A.VecView(1)
	View.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0))
	assert.Equal(Te, 1, View.NVecs())
}

func TestSomeVecs(Te *testing.T) {
	a := []float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}
	A, err := NewMatrix(a)
	require.NoError(Te, err)
	B := Zeros(3)
	cind := []int{1, 3, 5}
	require.NoError(Te, B.SomeVecsSafe(A, cind))
	assert.Equal(Te, []float64{4, 5, 6}, B.RawRowView(0))
	assert.Equal(Te, []float64{16, 17, 18}, B.RawRowView(2))
	B.Set(1, 1, 55)
	A.SetVecs(B, cind)
	assert.Equal(Te, 55.0, A.At(3, 1))
	//out of range
	err = B.SomeVecsSafe(A, []int{0, 1, 9})
	assert.Error(Te, err)
}

func TestAddSubVec(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(Te, err)
	row, err := NewMatrix([]float64{10, 20, 30})
	require.NoError(Te, err)
	B := Zeros(2)
	B.AddVec(A, row)
	assert.Equal(Te, []float64{14, 25, 36}, B.RawRowView(1))
	B.SubVec(B, row)
	assert.True(Te, mat.Equal(A, B))
}

func TestCrossDotNorm(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	assert.Equal(Te, []float64{0, 0, 1}, z.RawRowView(0))
	assert.Equal(Te, 0.0, x.Dot(y))
	v, _ := NewMatrix([]float64{3, 4, 0})
	assert.InDelta(Te, 5.0, v.Norm(), 1e-12)
	v.Unit(v)
	assert.InDelta(Te, 1.0, v.Norm(), 1e-12)
	assert.InDelta(Te, 0.6, v.At(0, 0), 1e-12)
}

func TestSwapAndString(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2, 3, 3, 3})
	A.SwapVecs(0, 2)
	assert.Equal(Te, 3.0, A.At(0, 0))
	assert.Equal(Te, 1.0, A.At(2, 2))
	assert.Contains(Te, A.String(), "3.00")
	assert.Panics(Te, func() { A.SwapVecs(0, 3) })
}

