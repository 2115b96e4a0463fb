package cli

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/Abhinav6284/Planora/internal/calendar"
	"github.com/Abhinav6284/Planora/internal/model"
)

func addCalendar(topLevel *cobra.Command, a *app) {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of tasks by due date",
		Example: `
planora calendar
planora calendar --month 2026-09
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			year, mon := now.Year(), now.Month()
			if month != "" {
				t, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("parse --month: want YYYY-MM, got %q", month)
				}
				year, mon = t.Year(), t.Month()
			}

			if err := a.connect(cmd.Context()); err != nil {
				return err
			}
			m := calendar.ProjectMonth(year, mon, a.store.Tasks(), model.DateOf(now))
			renderMonth(m, mon)
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to show (YYYY-MM; default: current)")

	topLevel.AddCommand(cmd)
}

func renderMonth(m calendar.Month, mon time.Month) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(color.Output, "%s\n", bold(fmt.Sprintf("%s %d", mon, m.Year)))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Su", "Mo", "Tu", "We", "Th", "Fr", "Sa")
	for w := 0; w < 6; w++ {
		row := make([]interface{}, 0, 7)
		for _, cell := range m.Week(w) {
			row = append(row, renderCell(cell))
		}
		tbl.AddRow(row...)
	}
	fmt.Fprintln(color.Output, tbl)

	// days with work, in grid order
	for _, cell := range m.Cells {
		if !cell.InMonth || len(cell.Tasks) == 0 {
			continue
		}
		fmt.Fprintf(color.Output, "%s\n", bold(cell.Date.String()))
		for _, t := range cell.Visible {
			fmt.Fprintf(color.Output, "  - %s\n", t.Title)
		}
		if cell.OverflowCount > 0 {
			fmt.Fprintf(color.Output, "  +%d more\n", cell.OverflowCount)
		}
	}
}

func renderCell(cell calendar.Cell) string {
	s := fmt.Sprintf("%2d", cell.Date.Day)
	if n := len(cell.Tasks); n > 0 {
		s = fmt.Sprintf("%s·%d", s, n)
	}
	switch {
	case cell.IsToday:
		return color.New(color.FgGreen, color.Bold).Sprint(s)
	case !cell.InMonth:
		return color.New(color.Faint).Sprint(s)
	default:
		return s
	}
}
