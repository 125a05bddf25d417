/*
 * doc.go, part of molecool.
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

/*
Package chem is the main package of the molecool library. It provides atom and molecule
structures, reads and writes PDB and XYZ files, and measures molecules.

	**molecool Capabilities**

	Reads/writes PDB and XYZ files, plain or compressed (gzip, zstd),
	including multi-model PDBs and multi-frame XYZs.

	Calculates distances, angles and dihedrals between atoms.

	Builds bond lists, either from a simple distance window
	(BondList) or from covalent radii (AssignBonds).

	Draws molecules and bond length histograms (see the chemplot
	subpackage, which uses gonum/plot).

molecool uses its own matrix type for coordinates, v3.Matrix, based on gonum's mat.Dense.
Each row of a v3.Matrix represents one point in space.

A typical session:

	mol, err := chem.XYZFileRead("water.xyz")
	if err != nil {
		//handle
	}
	bonds, err := chem.BondList(mol.Coords[0], chem.DefaultMaxBond, chem.DefaultMinBond)
	if err != nil {
		//handle
	}
	for _, b := range bonds {
		fmt.Println(mol.Atom(b.At1).Symbol, mol.Atom(b.At2).Symbol, b.Dist)
	}
*/
package chem
