package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmtrjoy/pom/internal/db"
)

func modifyCmd(app *App) *cobra.Command {
	var objective, statusName, tierName string

	cmd := &cobra.Command{
		Use:   "modify <id>",
		Short: "Modify a quest's objective, status or tier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			q, err := app.Store.Get(id)
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("objective") {
				q.Objective = objective
				changed = true
			}
			if cmd.Flags().Changed("status") {
				if q.Status, err = db.ParseStatus(statusName); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("tier") {
				if q.Tier, err = db.ParseTier(tierName); err != nil {
					return err
				}
				changed = true
			}
			if !changed {
				fmt.Fprintf(app.Out, "Nothing to modify on quest %d\n", id)
				return nil
			}

			if err := app.Store.Update(q); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Modified quest %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&objective, "objective", "", "new objective")
	cmd.Flags().StringVar(&statusName, "status", "", "new status")
	cmd.Flags().StringVar(&tierName, "tier", "", "new tier")
	return cmd
}
