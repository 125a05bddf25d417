/*
 * root.go, part of molecool.
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

//Package cli implements the molecool command line, with cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	chem "github.com/rmera/molecool"
	"github.com/rmera/molecool/internal/config"
	"github.com/rmera/molecool/internal/logging"
	"github.com/spf13/cobra"
)

//Version is set at build time with -ldflags.
var Version = "dev"

//rootOptions are the global flags.
type rootOptions struct {
	ConfigPath string
	LogLevel   string
}

//appContext carries what every subcommand needs.
type appContext struct {
	Config *config.Config
	Logger logging.Logger
}

type appContextKey struct{}

//NewRootCommand returns the molecool command with all its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "molecool",
		Short: "Read, measure and draw small molecules",
		Long: "molecool reads molecules from xyz and PDB files (optionally gzip or zstd compressed),\n" +
			"finds bonds from interatomic distances, measures distances and angles, and draws\n" +
			"the molecule and its bond-length histogram.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app, err := getApp(cmd); err == nil {
				_ = app.Logger.Sync() //stderr can't always be synced
			}
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default: ./molecool.yaml or $HOME/.config/molecool/molecool.yaml)")
	pf.StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn or error (overrides the config)")
	cmd.AddCommand(
		newBondsCommand(),
		newMeasureCommand(),
		newDrawCommand(),
		newHistCommand(),
		newConvertCommand(),
		newWatchCommand(),
	)
	return cmd
}

//setup loads the configuration, builds the logger and stores both in the command's context.
func setup(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		if _, err := logging.ParseLevel(opts.LogLevel); err != nil {
			return err
		}
		cfg.Log.Level = opts.LogLevel
	}
	logger, err := logging.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	chem.SetLogger(logger.Zap())
	logger.Debug("configuration loaded",
		logging.Float64("bonds.max", cfg.Bonds.Max), logging.Float64("bonds.min", cfg.Bonds.Min))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, appContextKey{}, &appContext{Config: cfg, Logger: logger.Named(cmd.Name())}))
	return nil
}

//getApp returns the appContext stored by setup.
func getApp(cmd *cobra.Command) (*appContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, errors.New("cli: command has no context")
	}
	app, ok := ctx.Value(appContextKey{}).(*appContext)
	if !ok || app == nil {
		return nil, errors.New("cli: command context not initialized")
	}
	return app, nil
}

//Execute runs the molecool command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

//readMolecule reads fname and checks that frame exists in it.
func readMolecule(app *appContext, fname string, frame int) (*chem.Molecule, error) {
	mol, err := chem.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	if frame < 0 || frame >= mol.LenFrames() {
		return nil, fmt.Errorf("frame %d requested, %s has %d", frame, fname, mol.LenFrames())
	}
	app.Logger.Debug("molecule read", logging.String("file", fname),
		logging.Int("atoms", mol.Len()), logging.Int("frames", mol.LenFrames()))
	return mol, nil
}

//atomIndexes parses args as atom indexes of mol, starting from 0.
func atomIndexes(mol *chem.Molecule, args []string) ([]int, error) {
	ret := make([]int, 0, len(args))
	for _, a := range args {
		i, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid atom index %q: %w", a, err)
		}
		if i < 0 || i >= mol.Len() {
			return nil, fmt.Errorf("atom index %d out of range, the molecule has %d atoms", i, mol.Len())
		}
		ret = append(ret, i)
	}
	return ret, nil
}

//bondList finds the bonds in frame of mol with the window from the flags,
//or from the config when the flags are not set.
func bondList(cmd *cobra.Command, app *appContext, mol *chem.Molecule, frame int) ([]*chem.Bond, error) {
	max, min := app.Config.Bonds.Max, app.Config.Bonds.Min
	if f := cmd.Flags().Lookup("max"); f != nil && f.Changed {
		max, _ = cmd.Flags().GetFloat64("max")
	}
	if f := cmd.Flags().Lookup("min"); f != nil && f.Changed {
		min, _ = cmd.Flags().GetFloat64("min")
	}
	bonds, err := chem.BondList(mol.Coords[frame], max, min)
	if err != nil {
		return nil, err
	}
	app.Logger.Debug("bonds found", logging.Int("bonds", len(bonds)),
		logging.Float64("max", max), logging.Float64("min", min))
	return bonds, nil
}

//addBondFlags adds the --max and --min flags to cmd.
func addBondFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("max", chem.DefaultMaxBond, "maximum bond length, in A (default from config)")
	cmd.Flags().Float64("min", chem.DefaultMinBond, "minimum bond length, in A (default from config)")
}
