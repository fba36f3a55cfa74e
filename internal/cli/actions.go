package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmtrjoy/pom/internal/db"
)

func acceptCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "accept <id>",
		Short: "Take on a quest (set it to ongoing)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.accept(id)
		},
	}
}

func completeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Complete a quest, and its whole chain if it is a main quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.cascadeStatus(id, db.Completed, "complete", "completed")
		},
	}
}

func abandonCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "abandon <id>",
		Short: "Abandon a quest, and its whole chain if it is a main quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.cascadeStatus(id, db.Abandoned, "abandon", "abandoned")
		},
	}
}

func deleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a quest, and its whole chain if it is a main quest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.deleteChain(id)
		},
	}
}

// accept flips a single quest to ongoing. It never cascades: taking on a main
// quest says nothing about its secondary quests.
func (app *App) accept(id int64) error {
	q, err := app.Store.Get(id)
	if err != nil {
		return err
	}
	if q.Status == db.Ongoing {
		fmt.Fprintf(app.Out, "Quest %d is already ongoing\n", id)
		return nil
	}
	q.Status = db.Ongoing
	if err := app.Store.Update(q); err != nil {
		return err
	}
	fmt.Fprintf(app.Out, "Accepted quest %d\n", id)
	return nil
}

// cascadeStatus applies a status overwrite to a quest and all of its
// descendants. When the quest has children the user must confirm first;
// declining leaves everything untouched.
func (app *App) cascadeStatus(id int64, target db.Status, verb, past string) error {
	q, err := app.Store.Get(id)
	if err != nil {
		return err
	}
	if q.Status == target {
		fmt.Fprintf(app.Out, "Quest %d is already %s\n", id, past)
		return nil
	}

	children, err := app.Store.HasChildren(id)
	if err != nil {
		return err
	}
	if children {
		ok, err := app.confirm(fmt.Sprintf(
			"Quest %d is a main quest; %s it and all of its secondary quests? [y/N] ", id, verb))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(app.Out, "Skipped; quest %d is unchanged\n", id)
			return nil
		}
	}

	n, err := app.Store.SetStatusSubtree(id, target)
	if err != nil {
		return err
	}
	if n > 1 {
		fmt.Fprintf(app.Out, "%s chain %d (%d quests)\n", capitalize(past), id, n)
	} else {
		fmt.Fprintf(app.Out, "%s quest %d\n", capitalize(past), id)
	}
	return nil
}

// deleteChain removes a quest and every quest chained under it, after
// confirmation when the quest has children.
func (app *App) deleteChain(id int64) error {
	if _, err := app.Store.Get(id); err != nil {
		return err
	}

	children, err := app.Store.HasChildren(id)
	if err != nil {
		return err
	}
	if children {
		ok, err := app.confirm(fmt.Sprintf(
			"Quest %d is a main quest; delete it and all of its secondary quests? [y/N] ", id))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(app.Out, "Skipped; quest %d is unchanged\n", id)
			return nil
		}
	}

	n, err := app.Store.DeleteSubtree(id)
	if err != nil {
		return err
	}
	if n > 1 {
		fmt.Fprintf(app.Out, "Deleted chain %d (%d quests)\n", id, n)
	} else {
		fmt.Fprintf(app.Out, "Deleted quest %d\n", id)
	}
	return nil
}

// confirm prints the prompt and reads one line from stdin. Only a
// case-insensitive "y" or "yes" proceeds; anything else, including EOF,
// declines.
func (app *App) confirm(prompt string) (bool, error) {
	fmt.Fprint(app.Out, prompt)
	line, err := bufio.NewReader(app.In).ReadString('\n')
	if err != nil && line == "" {
		return false, nil
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid quest id %q", arg)
	}
	return id, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
