package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Abhinav6284/Planora/internal/filter"
	"github.com/Abhinav6284/Planora/internal/model"
)

func addTask(topLevel *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTaskList(cmd, a)
	addTaskAdd(cmd, a)
	addTaskDone(cmd, a)
	addTaskRm(cmd, a)

	topLevel.AddCommand(cmd)
}

func addTaskList(parent *cobra.Command, a *app) {
	var status, priority, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks, optionally filtered",
		Example: `
planora task list
planora task list --status todo --priority high
planora task list --search design
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			tasks := filter.Tasks(a.store.Tasks(), filter.Criteria{
				Status:   model.Status(status),
				Priority: model.Priority(priority),
				Search:   search,
			})
			renderTasks(tasks)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status (todo, in-progress, completed)")
	cmd.Flags().StringVar(&priority, "priority", "", "filter by priority (low, medium, high)")
	cmd.Flags().StringVar(&search, "search", "", "match against title and description")

	parent.AddCommand(cmd)
}

func addTaskAdd(parent *cobra.Command, a *app) {
	var desc, due, priority, status string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		Example: `
planora task add Review pull requests --priority high --due 2026-09-05
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			draft := model.Task{
				Title:       strings.Join(args, " "),
				Description: desc,
				Status:      model.Status(status),
				Priority:    model.Priority(priority),
			}
			if due != "" {
				d, err := model.ParseDate(due)
				if err != nil {
					return fmt.Errorf("parse --due: %w", err)
				}
				draft.DueDate = &d
			}
			task, err := a.store.CreateTask(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created task %d: %s\n", task.ID, task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&desc, "desc", "", "task description")
	cmd.Flags().StringVar(&due, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&priority, "priority", "", "priority (low, medium, high; default medium)")
	cmd.Flags().StringVar(&status, "status", "", "status (todo, in-progress, completed; default todo)")

	parent.AddCommand(cmd)
}

func addTaskDone(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task between completed and todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			task, err := a.store.ToggleTaskStatus(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Task %d is now %s\n", task.ID, task.Status)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func addTaskRm(parent *cobra.Command, a *app) {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			if err := a.store.DeleteTask(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %d\n", id)
			return nil
		},
	}
	parent.AddCommand(cmd)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
