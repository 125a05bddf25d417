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

package cli

import (
	"encoding/json"
	"fmt"

	chem "github.com/rmera/molecool"
	"github.com/rmera/molecool/internal/logging"
	"github.com/spf13/cobra"
)

//bondJSON is the --json output for one bond.
type bondJSON struct {
	At1    int     `json:"at1"`
	At2    int     `json:"at2"`
	Length float64 `json:"length"`
}

func newBondsCommand() *cobra.Command {
	var asJSON, covalent bool
	var frame int
	cmd := &cobra.Command{
		Use:   "bonds FILE",
		Short: "List the bonds in a molecule",
		Long: "List every pair of atoms i<j whose distance is strictly between --min and --max,\n" +
			"as \"(i, j): length\". Atom indexes start from 0.\n" +
			"With --covalent, two atoms are bonded when their distance is below the sum of their\n" +
			"covalent radii plus 0.45 A, and atoms keep at most as many bonds as their element allows.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			mol, err := readMolecule(app, args[0], frame)
			if err != nil {
				return err
			}
			var bonds []*chem.Bond
			if covalent {
				bonds, err = chem.AssignBonds(mol.Coords[frame], mol)
				app.Logger.Debug("covalent bonds assigned", logging.Int("bonds", len(bonds)))
			} else {
				bonds, err = bondList(cmd, app, mol, frame)
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				js := make([]bondJSON, 0, len(bonds))
				for _, b := range bonds {
					js = append(js, bondJSON{At1: b.At1, At2: b.At2, Length: b.Dist})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(js)
			}
			for _, b := range bonds {
				fmt.Fprintln(out, b)
			}
			return nil
		},
	}
	addBondFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the bonds as JSON")
	cmd.Flags().BoolVar(&covalent, "covalent", false, "use covalent radii instead of the --min/--max window")
	cmd.MarkFlagsMutuallyExclusive("covalent", "max")
	cmd.MarkFlagsMutuallyExclusive("covalent", "min")
	cmd.Flags().IntVar(&frame, "frame", 0, "frame of the file to use")
	return cmd
}
