/*
 * bonds_test.go, part of molecool.
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
	"testing"

	v3 "github.com/rmera/molecool/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBondListWater(Te *testing.T) {
	mol, err := XYZFileRead("testdata/water.xyz")
	require.NoError(Te, err)
	bonds, err := BondList(mol.Coords[0], DefaultMaxBond, DefaultMinBond)
	require.NoError(Te, err)
	require.Len(Te, bonds, 2)
	m := BondMap(bonds)
	assert.InDelta(Te, 0.957311, m[[2]int{0, 1}], 1e-6)
	assert.InDelta(Te, 0.957311, m[[2]int{0, 2}], 1e-6)
	_, ok := m[[2]int{1, 2}]
	assert.False(Te, ok)
	//the H-H distance is 1.514 A
	bonds, err = BondList(mol.Coords[0], 1.6, 0)
	require.NoError(Te, err)
	assert.Len(Te, bonds, 3)
}

func TestBondListWindowIsStrict(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0, 3, 0, 0})
	require.NoError(Te, err)
	//0-1 is 1 A, 1-2 is 2 A and 0-2 is 3 A
	bonds, err := BondList(coords, 2.5, 1)
	require.NoError(Te, err)
	require.Len(Te, bonds, 1)
	assert.Equal(Te, 1, bonds[0].At1)
	assert.Equal(Te, 2, bonds[0].At2)
	assert.InDelta(Te, 2.0, bonds[0].Dist, 1e-12)
	bonds, err = BondList(coords, 2, 0.5)
	require.NoError(Te, err)
	require.Len(Te, bonds, 1)
	assert.Equal(Te, 0, bonds[0].At1)
	bonds, err = BondList(coords, 2.0000001, 0.9999999)
	require.NoError(Te, err)
	assert.Len(Te, bonds, 2)
}

func TestBondListBenzene(Te *testing.T) {
	mol, err := XYZFileRead("testdata/benzene.xyz")
	require.NoError(Te, err)
	bonds, err := BondList(mol.Coords[0], DefaultMaxBond, DefaultMinBond)
	require.NoError(Te, err)
	require.Len(Te, bonds, 12)
	for i, b := range bonds {
		assert.Less(Te, b.At1, b.At2)
		assert.Equal(Te, i, b.Index)
		if i > 0 {
			prev := bonds[i-1]
			assert.True(Te, prev.At1 < b.At1 || (prev.At1 == b.At1 && prev.At2 < b.At2))
		}
	}
	lengths := BondLengths(bonds)
	assert.Len(Te, lengths, 12)
	assert.InDelta(Te, 1.39, lengths[0], 1e-5)
}

func TestBondListErrors(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	require.NoError(Te, err)
	_, err = BondList(coords, 1.5, -0.1)
	assert.True(Te, errors.Is(err, ErrNegativeMinBond))
	_, err = BondList(coords, 1, 1)
	assert.True(Te, errors.Is(err, ErrBondWindow))
	_, err = BondList(nil, 1.5, 0)
	assert.Error(Te, err)
	dup, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0, 0, 0, 0})
	require.NoError(Te, err)
	_, err = BondList(dup, 1.5, 0)
	assert.True(Te, errors.Is(err, ErrSamePoint))
}

func TestBondListSingleAtom(Te *testing.T) {
	coords, err := v3.NewMatrix([]float64{0, 0, 0})
	require.NoError(Te, err)
	bonds, err := BondList(coords, 1.5, 0)
	require.NoError(Te, err)
	assert.Empty(Te, bonds)
}

func TestBondString(Te *testing.T) {
	b := &Bond{At1: 0, At2: 2, Dist: 0.957311}
	assert.Equal(Te, "(0, 2): 0.957311", b.String())
	assert.Equal(Te, 2, b.Cross(0))
	assert.Equal(Te, 0, b.Cross(2))
	assert.Panics(Te, func() { b.Cross(1) })
}

func TestAssignBonds(Te *testing.T) {
	mol, err := XYZFileRead("testdata/benzene.xyz")
	require.NoError(Te, err)
	bonds, err := AssignBonds(mol.Coords[0], mol)
	require.NoError(Te, err)
	assert.Len(Te, bonds, 12)
	for i := 0; i < 6; i++ {
		assert.Len(Te, mol.Atom(i).Bonds, 3, "carbon %d", i)
		assert.Len(Te, mol.Atom(i+6).Bonds, 1, "hydrogen %d", i+6)
	}
	require.NoError(Te, RemoveBond(mol.Atom(6).Bonds[0], mol))
	assert.Empty(Te, mol.Atom(6).Bonds)
	assert.Len(Te, mol.Atom(0).Bonds, 2)
}
