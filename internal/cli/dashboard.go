package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/Abhinav6284/Planora/internal/dashboard"
	"github.com/Abhinav6284/Planora/internal/model"
)

func addDashboard(topLevel *cobra.Command, a *app) {
	var stats bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the overview counters and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			today := model.DateOf(time.Now())
			renderSummary(dashboard.Summarize(a.store.Tasks(), a.store.Projects(), today))
			if stats {
				renderStats(dashboard.Stats(a.store.Tasks(), today))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "include weekly completion and priority breakdown")

	topLevel.AddCommand(cmd)
}

func renderSummary(s dashboard.Summary) {
	bold := color.New(color.Bold).SprintFunc()

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Tasks"), bold("Done"), bold("Projects"), bold("Overdue"))
	tbl.AddRow(s.TotalTasks, s.CompletedTasks, s.ActiveProjects, colorCount(s.OverdueTasks))
	fmt.Fprintln(color.Output, tbl)

	if len(s.RecentTasks) > 0 {
		fmt.Fprintf(color.Output, "\n%s\n", bold("Recent tasks"))
		renderTasks(s.RecentTasks)
	}
	if len(s.TopProjects) > 0 {
		fmt.Fprintf(color.Output, "\n%s\n", bold("Projects"))
		renderProjects(s.TopProjects)
	}
}

func renderStats(st dashboard.TaskStats) {
	bold := color.New(color.Bold).SprintFunc()
	days := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

	fmt.Fprintf(color.Output, "\n%s\n", bold("Completed this week"))
	tbl := uitable.New()
	tbl.Separator = "  "
	for i, day := range days {
		n := st.WeeklyCompletion[i]
		tbl.AddRow(day, n, strings.Repeat("█", n))
	}
	fmt.Fprintln(color.Output, tbl)

	fmt.Fprintf(color.Output, "\n%s\n", bold("Priority"))
	pri := uitable.New()
	pri.Separator = "  "
	pri.AddRow("high", st.HighPriority)
	pri.AddRow("medium", st.MediumPriority)
	pri.AddRow("low", st.LowPriority)
	fmt.Fprintln(color.Output, pri)
}

func colorCount(n int) string {
	if n > 0 {
		return color.RedString("%d", n)
	}
	return fmt.Sprintf("%d", n)
}
