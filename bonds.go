/*
 * bonds.go, part of molecool.
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
	"sort"

	v3 "github.com/rmera/molecool/v3"
)

//Default window for BondList, in A.
const (
	DefaultMaxBond = 1.5
	DefaultMinBond = 0.0
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

//Bond is a bond between the atoms with indexes At1 and At2. At1 is always
//smaller than At2.
type Bond struct {
	Index int
	At1   int
	At2   int
	Dist  float64
	Order float64 //Order 0 means undetermined
}

//String returns a short representation of the bond.
func (B *Bond) String() string {
	return fmt.Sprintf("(%d, %d): %.6f", B.At1, B.At2, B.Dist)
}

//Cross returns the index of the atom at the other side of the bond from the atom with index origin.
func (B *Bond) Cross(origin int) int {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!") //I think this got to be a programming error, so a panic is warranted.
}

//BondList finds the bonds in a set of coordinates based on a distance criterion.
//Every pair of atoms i<j whose distance d satisfies minBond < d < maxBond
//is bonded. The bonds are returned ordered by At1 and then At2.
//It returns an error if minBond is negative, if maxBond is not larger than minBond,
//or if two atoms are located at the same point.
func BondList(coords *v3.Matrix, maxBond, minBond float64) ([]*Bond, error) {
	if coords == nil {
		return nil, newCError("nil coordinates", nil, "BondList")
	}
	if minBond < 0 {
		return nil, newCError(fmt.Sprintf("min bond %f", minBond), ErrNegativeMinBond, "BondList")
	}
	if maxBond <= minBond {
		return nil, newCError(fmt.Sprintf("max bond %f, min bond %f", maxBond, minBond), ErrBondWindow, "BondList")
	}
	bonds := make([]*Bond, 0, coords.NVecs())
	tot := coords.NVecs()
	for i := 0; i < tot; i++ {
		t1 := coords.VecView(i)
		for j := i + 1; j < tot; j++ {
			d, err := Distance(t1, coords.VecView(j))
			if err != nil {
				return nil, errDecorate(err, fmt.Sprintf("BondList: atoms %d and %d", i, j))
			}
			if d > minBond && d < maxBond {
				bonds = append(bonds, &Bond{Index: len(bonds), At1: i, At2: j, Dist: d})
			}
		}
	}
	return bonds, nil
}

//BondMap returns a map from the pair of indexes of each bond to its length.
func BondMap(bonds []*Bond) map[[2]int]float64 {
	ret := make(map[[2]int]float64, len(bonds))
	for _, b := range bonds {
		ret[[2]int{b.At1, b.At2}] = b.Dist
	}
	return ret
}

//BondLengths returns the lengths of the given bonds, in the same order.
func BondLengths(bonds []*Bond) []float64 {
	ret := make([]float64, 0, len(bonds))
	for _, b := range bonds {
		ret = append(ret, b.Dist)
	}
	return ret
}

//return a new *Bond slice with the element id removed
func takefromslice(bonds []*Bond, id int) []*Bond {
	newb := make([]*Bond, 0, len(bonds))
	for _, v := range bonds {
		if v.Index != id {
			newb = append(newb, v)
		}
	}
	return newb
}

//RemoveBond removes the bond b from the Bonds slices of both atoms it joins in mol.
func RemoveBond(b *Bond, mol Atomer) error {
	at1 := mol.Atom(b.At1)
	at2 := mol.Atom(b.At2)
	lenb1 := len(at1.Bonds)
	lenb2 := len(at2.Bonds)
	at1.Bonds = takefromslice(at1.Bonds, b.Index)
	at2.Bonds = takefromslice(at2.Bonds, b.Index)
	msg := ""
	if len(at1.Bonds) == lenb1 {
		msg = fmt.Sprintf(" from atom. Index:%d", b.At1)
	}
	if len(at2.Bonds) == lenb2 {
		if msg != "" {
			msg = msg + " and"
		}
		msg = msg + fmt.Sprintf(" from atom. Index:%d", b.At2)
	}
	if msg != "" {
		return newCError(fmt.Sprintf("Failed to remove bond Index:%d%s", b.Index, msg), nil, "RemoveBond")
	}
	return nil
}

//AssignBonds assigns bonds to a molecule based on a simple distance
//criterion, similar to that described in DOI:10.1186/1758-2946-3-33.
//Two atoms are bonded if their distance is larger than 0.63 A and smaller than the sum
//of their covalent radii plus 0.45 A. Atoms with more bonds than their element allows
//lose their longest bonds. The bonds are attached to the atoms and also returned.
func AssignBonds(coord *v3.Matrix, mol AtomIndexesFiller) ([]*Bond, error) {
	// might get slow for
	//large systems. It's really not thought
	//for proteins or macromolecules.
	mol.FillIndexes()
	tot := mol.Len()
	if coord.NVecs() != tot {
		return nil, newCError(fmt.Sprintf("%d coordinates for %d atoms", coord.NVecs(), tot), ErrSymbolsCoords, "AssignBonds")
	}
	bonds := make([]*Bond, 0, tot)
	var nextIndex int
	for i := 0; i < tot; i++ {
		mol.Atom(i).Bonds = nil
	}
	for i := 0; i < tot; i++ {
		t1 := coord.VecView(i)
		at1 := mol.Atom(i)
		cov1 := symbolCovrad[at1.Symbol]
		if cov1 == 0 {
			return nil, newCError(fmt.Sprintf("Couldn't find the covalent radii for %s %d", at1.Symbol, i), nil, "AssignBonds")
		}
		for j := i + 1; j < tot; j++ {
			at2 := mol.Atom(j)
			cov2 := symbolCovrad[at2.Symbol]
			if cov2 == 0 {
				return nil, newCError(fmt.Sprintf("Couldn't find the covalent radii for %s %d", at2.Symbol, j), nil, "AssignBonds")
			}
			d, err := Distance(t1, coord.VecView(j))
			if err != nil {
				return nil, errDecorate(err, "AssignBonds")
			}
			if d < cov1+cov2+bondtol && d > tooclose {
				b := &Bond{Index: nextIndex, Dist: d, At1: i, At2: j}
				at1.Bonds = append(at1.Bonds, b)
				at2.Bonds = append(at2.Bonds, b)
				bonds = append(bonds, b)
				nextIndex++
			}
		}
	}
	//Now we check that no atom has too many bonds.
	removed := make([]int, 0)
	for i := 0; i < tot; i++ {
		at := mol.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max {
			longest := at.Bonds[len(at.Bonds)-1]
			if err := RemoveBond(longest, mol); err != nil {
				return nil, errDecorate(err, "AssignBonds")
			}
			removed = append(removed, longest.Index)
		}
	}
	ret := make([]*Bond, 0, len(bonds))
	for _, b := range bonds {
		if !isInInt(removed, b.Index) {
			ret = append(ret, b)
		}
	}
	return ret, nil
}
