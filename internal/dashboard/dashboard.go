// Package dashboard reduces store snapshots into the summary counters and
// analytics figures the overview screens show.
package dashboard

import (
	"github.com/Abhinav6284/Planora/internal/model"
)

type Summary struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
	ActiveProjects int `json:"active_projects"`
	OverdueTasks   int `json:"overdue_tasks"`

	// Display slices in current list order, not re-sorted.
	RecentTasks []model.Task    `json:"recent_tasks"`
	TopProjects []model.Project `json:"top_projects"`
}

const (
	recentTaskCount = 5
	topProjectCount = 3
)

// Summarize counts the headline numbers over a snapshot. A task is overdue
// when its due date is strictly before today and it is not completed. Every
// existing project counts as active; no finer distinction is tracked.
func Summarize(tasks []model.Task, projects []model.Project, today model.Date) Summary {
	s := Summary{
		TotalTasks:     len(tasks),
		ActiveProjects: len(projects),
	}
	for _, t := range tasks {
		if t.Status == model.StatusCompleted {
			s.CompletedTasks++
			continue
		}
		if t.DueDate != nil && t.DueDate.Before(today) {
			s.OverdueTasks++
		}
	}

	s.RecentTasks = append([]model.Task(nil), tasks[:min(recentTaskCount, len(tasks))]...)
	s.TopProjects = append([]model.Project(nil), projects[:min(topProjectCount, len(projects))]...)
	return s
}

// TaskStats feeds the analytics charts: completions per weekday over the
// trailing week and the priority split of open work.
type TaskStats struct {
	// WeeklyCompletion is indexed Monday..Sunday.
	WeeklyCompletion [7]int `json:"weekly_completion"`

	HighPriority   int `json:"high_priority"`
	MediumPriority int `json:"medium_priority"`
	LowPriority    int `json:"low_priority"`
}

// Stats buckets completed tasks by the weekday of their due date within the
// seven days ending today. Priority counts cover the whole snapshot.
func Stats(tasks []model.Task, today model.Date) TaskStats {
	var st TaskStats
	weekStart := today.AddDays(-6)

	for _, t := range tasks {
		switch t.Priority {
		case model.PriorityHigh:
			st.HighPriority++
		case model.PriorityMedium:
			st.MediumPriority++
		case model.PriorityLow:
			st.LowPriority++
		}

		if t.Status != model.StatusCompleted || t.DueDate == nil {
			continue
		}
		d := *t.DueDate
		if d.Before(weekStart) || today.Before(d) {
			continue
		}
		// time.Weekday has Sunday == 0; the chart runs Monday..Sunday.
		idx := (int(d.Weekday()) + 6) % 7
		st.WeeklyCompletion[idx]++
	}
	return st
}
