package cli

import (
	"context"
	"fmt"

	"github.com/lmoretti/respite/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List open tasks from the connected workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Tasks.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTasks(list))
			return nil
		},
	}
}
