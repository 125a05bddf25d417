/*
 * convert.go, part of molecool.
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
	"github.com/rmera/molecool/internal/logging"
	"github.com/spf13/cobra"
)

func newConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert a molecule between the xyz and PDB formats",
		Long: "Convert a molecule between the xyz and PDB formats. The formats are taken from the extensions.\n" +
			"All the frames are written. A .gz or .zst suffix compresses or decompresses the file.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			mol, err := readMolecule(app, args[0], 0)
			if err != nil {
				return err
			}
			if err := chem.WriteFile(args[1], mol); err != nil {
				return fmt.Errorf("writing %s: %w", args[1], err)
			}
			app.Logger.Info("molecule converted", logging.String("input", args[0]), logging.String("output", args[1]),
				logging.Int("frames", mol.LenFrames()))
			return nil
		},
	}
}
