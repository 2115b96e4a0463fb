// Package calendar projects a month plus a task list into the fixed 42-cell
// grid the calendar view renders. Pure data out, no clock reads: the caller
// supplies "today" so projection stays deterministic.
package calendar

import (
	"time"

	"github.com/Abhinav6284/Planora/internal/model"
)

// MaxVisiblePerDay is how many tasks a day cell shows before collapsing the
// rest into a "+N more" overflow.
const MaxVisiblePerDay = 3

type Cell struct {
	Date    model.Date
	InMonth bool
	IsToday bool

	// Tasks due on this day, in source-list order.
	Tasks []model.Task

	// Visible is the first MaxVisiblePerDay of Tasks; OverflowCount is
	// how many were cut.
	Visible       []model.Task
	OverflowCount int
}

type Month struct {
	Year  int
	Month time.Month
	Cells [42]Cell
}

// ProjectMonth lays out six full weeks: back up from the first of the month
// to the most recent Sunday (or the first itself), then emit 42 consecutive
// days, bucketing tasks by exact due date.
func ProjectMonth(year int, month time.Month, tasks []model.Task, today model.Date) Month {
	first := model.NewDate(year, month, 1)
	start := first.AddDays(-int(first.Weekday()))

	byDay := make(map[model.Date][]model.Task)
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		byDay[*t.DueDate] = append(byDay[*t.DueDate], t)
	}

	m := Month{Year: year, Month: month}
	for i := range m.Cells {
		day := start.AddDays(i)
		bucket := byDay[day]

		visible := bucket
		overflow := 0
		if len(bucket) > MaxVisiblePerDay {
			visible = bucket[:MaxVisiblePerDay]
			overflow = len(bucket) - MaxVisiblePerDay
		}

		m.Cells[i] = Cell{
			Date:          day,
			InMonth:       day.Month == month && day.Year == year,
			IsToday:       day.Equal(today),
			Tasks:         bucket,
			Visible:       visible,
			OverflowCount: overflow,
		}
	}
	return m
}

// Week returns the seven cells of week n (0-5).
func (m Month) Week(n int) []Cell {
	return m.Cells[n*7 : n*7+7]
}
