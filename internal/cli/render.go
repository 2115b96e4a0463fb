package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Abhinav6284/Planora/internal/model"
)

func renderTasks(tasks []model.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(color.Output, "No tasks.")
		return
	}

	bold := color.New(color.Bold).SprintFunc()
	tbl := uitable.New()
	tbl.MaxColWidth = 50
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("STATUS"), bold("PRI"), bold("DUE"), bold("TITLE"))
	for _, t := range tasks {
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.String()
		}
		tbl.AddRow(t.ID, renderStatus(t.Status), renderPriority(t.Priority), due, t.Title)
	}
	fmt.Fprintln(color.Output, tbl)
}

func renderProjects(projects []model.Project) {
	if len(projects) == 0 {
		fmt.Fprintln(color.Output, "No projects.")
		return
	}

	bold := color.New(color.Bold).SprintFunc()
	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("TASKS"), bold("NAME"), bold("DESCRIPTION"))
	for _, p := range projects {
		tbl.AddRow(p.ID, p.TaskCount, p.Name, p.Description)
	}
	fmt.Fprintln(color.Output, tbl)
}

func renderNotes(notes []model.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(color.Output, "No notes.")
		return
	}

	bold := color.New(color.Bold).SprintFunc()
	tbl := uitable.New()
	tbl.MaxColWidth = 70
	tbl.Wrap = true
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("TITLE"), bold("CONTENT"))
	for _, n := range notes {
		tbl.AddRow(n.ID, n.Title, n.Content)
	}
	fmt.Fprintln(color.Output, tbl)
}

func renderStatus(s model.Status) string {
	switch s {
	case model.StatusCompleted:
		return color.GreenString(string(s))
	case model.StatusInProgress:
		return color.YellowString(string(s))
	default:
		return string(s)
	}
}

func renderPriority(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return color.RedString(string(p))
	case model.PriorityLow:
		return color.New(color.Faint).Sprint(string(p))
	default:
		return string(p)
	}
}
