/*
 * watch.go, part of molecool.
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
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rmera/molecool/internal/logging"
	"github.com/spf13/cobra"
)

func newWatchCommand() *cobra.Command {
	f := &drawFlags{}
	cmd := &cobra.Command{
		Use:   "watch FILE -o IMAGE",
		Short: "Draw a molecule again every time its file changes",
		Long: "Draw a molecule like the draw command, and draw it again each time the file is written,\n" +
			"until interrupted. Errors reading the file are logged and the command keeps waiting.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return watchFile(ctx, args[0], app.Logger, func() error {
				return f.drawMolecule(cmd, app, args[0])
			})
		},
	}
	f.register(cmd)
	return cmd
}

//watchFile calls redraw once, and then every time fname is written or created,
//until ctx is done. Errors from redraw are logged, not returned.
func watchFile(ctx context.Context, fname string, log logging.Logger, redraw func() error) error {
	abs, err := filepath.Abs(fname)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	//the directory is watched, as many editors replace the file instead of writing it.
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	log = log.With(logging.String("file", fname))
	if err := redraw(); err != nil {
		log.Warn("drawing failed", logging.Err(err))
	}
	log.Info("watching for changes")
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			log.Debug("file changed", logging.String("op", ev.Op.String()))
			if err := redraw(); err != nil {
				log.Warn("drawing failed", logging.Err(err))
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", logging.Err(err))
		}
	}
}
