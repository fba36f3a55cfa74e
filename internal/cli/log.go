package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmtrjoy/pom/internal/chain"
)

func logCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "log",
		Short: "Show every quest chain as a tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			quests, err := app.Store.List()
			if err != nil {
				return err
			}
			if len(quests) == 0 {
				fmt.Fprintln(app.Out, "No quests yet")
				return nil
			}
			forest := chain.Build(quests)
			fmt.Fprintln(app.Out, chain.Render(forest, app.Painter))
			return nil
		},
	}
}
