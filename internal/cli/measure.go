/*
 * measure.go, part of molecool.
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
	"fmt"

	chem "github.com/rmera/molecool"
	"github.com/spf13/cobra"
)

func newMeasureCommand() *cobra.Command {
	var frame int
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Measure distances, angles and dihedrals between atoms",
	}
	cmd.PersistentFlags().IntVar(&frame, "frame", 0, "frame of the file to use")

	distance := &cobra.Command{
		Use:   "distance FILE I J",
		Short: "Distance between atoms I and J, in A",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			mol, at, err := measureSetup(cmd, args, frame)
			if err != nil {
				return err
			}
			d, err := chem.Distance(mol.Coord(at[0], frame), mol.Coord(at[1], frame))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", d)
			return nil
		},
	}

	var degrees bool
	angle := &cobra.Command{
		Use:   "angle FILE I J K",
		Short: "Angle I-J-K, with the vertex in J",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			mol, at, err := measureSetup(cmd, args, frame)
			if err != nil {
				return err
			}
			a := chem.BondAngle(mol.Coord(at[0], frame), mol.Coord(at[1], frame), mol.Coord(at[2], frame), degrees)
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", a)
			return nil
		},
	}
	angle.Flags().BoolVar(&degrees, "degrees", false, "report the angle in degrees instead of radians")

	var dihDegrees bool
	dihedral := &cobra.Command{
		Use:   "dihedral FILE I J K L",
		Short: "Dihedral between the planes I-J-K and J-K-L",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			mol, at, err := measureSetup(cmd, args, frame)
			if err != nil {
				return err
			}
			d := chem.Dihedral(mol.Coord(at[0], frame), mol.Coord(at[1], frame), mol.Coord(at[2], frame), mol.Coord(at[3], frame))
			if dihDegrees {
				d = chem.Rad2Deg(d)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", d)
			return nil
		},
	}
	dihedral.Flags().BoolVar(&dihDegrees, "degrees", false, "report the dihedral in degrees instead of radians")

	cmd.AddCommand(distance, angle, dihedral)
	return cmd
}

//measureSetup reads the molecule in args[0] and parses the atom indexes in the rest of args.
func measureSetup(cmd *cobra.Command, args []string, frame int) (*chem.Molecule, []int, error) {
	app, err := getApp(cmd)
	if err != nil {
		return nil, nil, err
	}
	mol, err := readMolecule(app, args[0], frame)
	if err != nil {
		return nil, nil, err
	}
	at, err := atomIndexes(mol, args[1:])
	if err != nil {
		return nil, nil, err
	}
	return mol, at, nil
}
