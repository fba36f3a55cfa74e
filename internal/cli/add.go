package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmtrjoy/pom/internal/db"
)

func addCmd(app *App) *cobra.Command {
	var statusName, tierName string
	var parentID int64

	cmd := &cobra.Command{
		Use:   "add <objective>",
		Short: "Add a quest",
		Long: `Add a quest to the log. With --sub, the new quest becomes a secondary
quest chained to an existing main quest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			objective := args[0]
			if strings.TrimSpace(objective) == "" {
				return errors.New("objective must not be empty")
			}

			status := db.Pending
			if statusName != "" {
				var err error
				if status, err = db.ParseStatus(statusName); err != nil {
					return err
				}
			}
			tier := db.Common
			if tierName != "" {
				var err error
				if tier, err = db.ParseTier(tierName); err != nil {
					return err
				}
			}
			var chainID *int64
			if cmd.Flags().Changed("sub") {
				chainID = &parentID
			}

			id, err := app.Store.Add(db.NewQuest(objective, status, tier, chainID))
			if err != nil {
				if errors.Is(err, db.ErrConstraint) {
					return fmt.Errorf("no quest with id %d to chain under", parentID)
				}
				return err
			}
			fmt.Fprintf(app.Out, "Added quest %d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&statusName, "status", "", "initial status (default pending)")
	cmd.Flags().StringVar(&tierName, "tier", "", "quest tier (default common)")
	cmd.Flags().Int64Var(&parentID, "sub", 0, "id of the main quest to chain this quest under")
	return cmd
}
