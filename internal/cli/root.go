// Package cli wires the pom commands: quest CRUD, chain cascades and the log
// view.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmtrjoy/pom/internal/config"
	"github.com/dmtrjoy/pom/internal/db"
	"github.com/dmtrjoy/pom/internal/term"
)

// App carries the dependencies every command runs against: one store handle
// per invocation, opened once and injected here.
type App struct {
	Store   *db.DB
	Painter term.Painter
	In      io.Reader
	Out     io.Writer
}

// Execute parses the command line and runs the selected command.
func Execute(version string) error {
	app := &App{In: os.Stdin, Out: os.Stdout}
	var configPath string

	root := &cobra.Command{
		Use:           "pom",
		Short:         "pom — a personal quest log",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			store, err := db.Open(cfg.Database.Path)
			if err != nil {
				return err
			}
			app.Store = store
			app.Painter = term.NewPainter(cfg.Output.Color, os.Stdout)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Store != nil {
				app.Store.Close()
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml")

	root.AddCommand(
		addCmd(app),
		acceptCmd(app),
		completeCmd(app),
		abandonCmd(app),
		deleteCmd(app),
		modifyCmd(app),
		logCmd(app),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
