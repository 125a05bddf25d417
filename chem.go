/*
 * chem.go, part of molecool.
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

	v3 "github.com/rmera/molecool/v3"
)

/**Note: Many functions here panic instead of returning errors. This is because they are "fundamental"
 * functions. If something goes wrong here, the program is most likely wrong and should
 * crash. Most panics are related to using the function on a nil object or trying to access out-of bounds
 * fields**/

//Atom contains the atoms read except for the coordinates, which will be in a matrix
//and the b-factors, which are in a separate slice of float64.
type Atom struct {
	Name      string  //PDB name of the atom
	ID        int     //The PDB index of the atom
	Index     int     //The place of the atom in a set. I.e. the first atom would have index 0, etc.
	MolName   string  //PDB name of the residue or molecule (3-letter code for residues)
	MolID     int     //PDB index of the corresponding residue or molecule
	Chain     string  //One-character PDB name for a chain.
	Symbol    string  //Chemical element symbol
	Het       bool    //is the atom an hetatm in the pdb file?
	Occupancy float64 //a PDB crystallographic field, often used to store values of interest.
	Charge    float64 //Partial charge on an atom
	Mass      float64
	Vdw       float64
	Bonds     []*Bond //The bonds connecting the atom to others.
}

//Copy returns a copy of the Atom object.
//Bonds are not copied, as they reference other atoms.
func (N *Atom) Copy() *Atom {
	if N == nil {
		panic(ErrNilData)
	}
	A := *N
	A.Bonds = nil
	return &A
}

/*****Topology type***/

//Topology contains information about a molecule which is not expected to change in time (i.e. everything except for coordinates and b-factors)
type Topology struct {
	Atoms []*Atom
}

//NewTopology returns a topology with the given atoms. Returns an error if
//ats is empty.
func NewTopology(ats []*Atom) (*Topology, error) {
	if len(ats) == 0 {
		return nil, newCError("Supplied an empty atom slice", ErrNoAtoms, "NewTopology")
	}
	top := &Topology{Atoms: ats}
	top.FillIndexes()
	return top, nil
}

//NewTopologyFromSymbols returns a topology with one atom per symbol given.
//Masses and van der Waals radii are filled from the element tables.
func NewTopologyFromSymbols(symbols []string) (*Topology, error) {
	ats := make([]*Atom, 0, len(symbols))
	for i, s := range symbols {
		ats = append(ats, &Atom{Symbol: s, Name: s, ID: i + 1})
	}
	top, err := NewTopology(ats)
	if err != nil {
		return nil, errDecorate(err, "NewTopologyFromSymbols")
	}
	top.FillMasses()
	top.FillVdw()
	return top, nil
}

//Atom returns the Atom corresponding to the index i
//of the Atom slice in the Topology. Panics if
//out of range.
func (T *Topology) Atom(i int) *Atom {
	if i < 0 || i >= T.Len() {
		panic(ErrAtomOutOfRange)
	}
	return T.Atoms[i]
}

//Len returns the number of atoms in the topology.
func (T *Topology) Len() int {
	return len(T.Atoms)
}

//FillIndexes sets the Index value of each atom to that corresponding to its
//place in the topology.
func (T *Topology) FillIndexes() {
	for i, v := range T.Atoms {
		v.Index = i
	}
}

//Symbols returns the element symbols of all the atoms, in order.
func (T *Topology) Symbols() []string {
	ret := make([]string, 0, T.Len())
	for _, v := range T.Atoms {
		ret = append(ret, v.Symbol)
	}
	return ret
}

//FillMasses fills the Mass field of the atoms that lack it, from the element
//tables.
func (T *Topology) FillMasses() {
	for _, v := range T.Atoms {
		if v.Mass == 0 {
			v.Mass = symbolMass[v.Symbol]
		}
	}
}

//FillVdw fills the Vdw field of the atoms that lack it, from the element
//tables.
func (T *Topology) FillVdw() {
	for _, v := range T.Atoms {
		if v.Vdw == 0 {
			v.Vdw = symbolVdwrad[v.Symbol]
		}
	}
}

//Masses returns a slice of float64 with the masses of the atoms in the topology, or nil and an error if they have not been calculated
func (T *Topology) Masses() ([]float64, error) {
	mass := make([]float64, T.Len())
	for i, v := range T.Atoms {
		if v.Mass == 0 {
			return nil, newCError(fmt.Sprintf("Not all the masses have been obtained: %d %s", i, v.Symbol), nil, "Masses")
		}
		mass[i] = v.Mass
	}
	return mass, nil
}

//CopyAtoms returns a new topology with copies of the atoms of T.
func (T *Topology) CopyAtoms() *Topology {
	top := &Topology{Atoms: make([]*Atom, 0, T.Len())}
	for _, v := range T.Atoms {
		top.Atoms = append(top.Atoms, v.Copy())
	}
	return top
}

/**Type Molecule**/

//Molecule contains all the info for a molecule in many states. The info that is expected to change between states,
//Coordinates and b-factors are stored separately from other atomic info.
type Molecule struct {
	*Topology
	Coords   []*v3.Matrix
	Bfactors [][]float64
}

//NewMolecule makes a molecule with ats atoms, coords coordinates and bfactors b-factors
//and returns it. bfactors can be nil, in which case they are set to zero.
//It returns an error if the number of coordinates in any frame doesn't
//match the number of atoms.
func NewMolecule(coords []*v3.Matrix, ats Atomer, bfactors [][]float64) (*Molecule, error) {
	if ats == nil || ats.Len() == 0 {
		return nil, newCError("Supplied a nil or empty topology", ErrNoAtoms, "NewMolecule")
	}
	if len(coords) == 0 {
		return nil, newCError("Supplied no coordinates", nil, "NewMolecule")
	}
	mol := new(Molecule)
	if top, ok := ats.(*Topology); ok {
		mol.Topology = top
	} else if m, ok := ats.(*Molecule); ok {
		mol.Topology = m.Topology
	} else {
		mol.Topology = &Topology{Atoms: make([]*Atom, ats.Len())}
		for i := 0; i < ats.Len(); i++ {
			mol.Atoms[i] = ats.Atom(i)
		}
	}
	mol.Coords = coords
	mol.Bfactors = bfactors
	if err := mol.Corrupted(); err != nil {
		return nil, errDecorate(err, "NewMolecule")
	}
	return mol, nil
}

//Corrupted checks whether the molecule is corrupted, i.e. the
//coordinates don't match the number of atoms.
//Missing or incomplete b-factors are replaced by zeroes.
func (M *Molecule) Corrupted() error {
	for i, v := range M.Coords {
		if v == nil || v.NVecs() != M.Len() {
			n := 0
			if v != nil {
				n = v.NVecs()
			}
			return newCError(fmt.Sprintf("Inconsistent coordinates/atoms in frame %d: Atoms %d, coords: %d", i, M.Len(), n), ErrSymbolsCoords, "Corrupted")
		}
	}
	//Since bfactors are not as important as coordinates, we will just fill with
	//zeroes anything that is lacking or incomplete instead of returning an error.
	for i := range M.Coords {
		if len(M.Bfactors) <= i {
			M.Bfactors = append(M.Bfactors, make([]float64, M.Len()))
		} else if len(M.Bfactors[i]) != M.Len() {
			M.Bfactors[i] = make([]float64, M.Len())
		}
	}
	return nil
}

//Coord returns a view of the coords for the atom atom in the frame frame.
//panics if frame or coords are out of range.
func (M *Molecule) Coord(atom, frame int) *v3.Matrix {
	if frame < 0 || frame >= len(M.Coords) {
		panic(ErrFrameOutOfRange)
	}
	if atom < 0 || atom >= M.Coords[frame].NVecs() {
		panic(ErrAtomOutOfRange)
	}
	return M.Coords[frame].VecView(atom)
}

//LenFrames returns the number of frames in the molecule
func (M *Molecule) LenFrames() int {
	return len(M.Coords)
}

//Copy returns a deep copy of the molecule, without bonds.
func (M *Molecule) Copy() *Molecule {
	mol := &Molecule{Topology: M.CopyAtoms()}
	for i, v := range M.Coords {
		mol.Coords = append(mol.Coords, v.Clone())
		if i < len(M.Bfactors) {
			mol.Bfactors = append(mol.Bfactors, append([]float64(nil), M.Bfactors[i]...))
		}
	}
	return mol
}
