package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhinav6284/Planora/internal/model"
)

func due(y int, m time.Month, d int) *model.Date {
	date := model.NewDate(y, m, d)
	return &date
}

func TestSummarize_Counters(t *testing.T) {
	today := model.NewDate(2025, time.September, 20)
	tasks := []model.Task{
		{ID: 1, Status: model.StatusCompleted, DueDate: due(2025, time.September, 1)},
		{ID: 2, Status: model.StatusTodo, DueDate: due(2025, time.September, 10)},       // overdue
		{ID: 3, Status: model.StatusInProgress, DueDate: due(2025, time.September, 19)}, // overdue
		{ID: 4, Status: model.StatusTodo, DueDate: due(2025, time.September, 20)},       // due today, not overdue
		{ID: 5, Status: model.StatusTodo},
	}
	projects := []model.Project{{ID: 1}, {ID: 2}}

	s := Summarize(tasks, projects, today)

	assert.Equal(t, 5, s.TotalTasks)
	assert.Equal(t, 1, s.CompletedTasks)
	assert.Equal(t, 2, s.ActiveProjects)
	assert.Equal(t, 2, s.OverdueTasks)
}

func TestSummarize_CompletedNeverOverdue(t *testing.T) {
	today := model.NewDate(2025, time.September, 20)
	tasks := []model.Task{
		{ID: 1, Status: model.StatusCompleted, DueDate: due(2025, time.September, 1)},
	}

	s := Summarize(tasks, nil, today)
	assert.Zero(t, s.OverdueTasks)
}

func TestSummarize_DisplaySlicesKeepOrderAndCaps(t *testing.T) {
	tasks := make([]model.Task, 8)
	for i := range tasks {
		tasks[i] = model.Task{ID: int64(i + 1)}
	}
	projects := make([]model.Project, 5)
	for i := range projects {
		projects[i] = model.Project{ID: int64(i + 1)}
	}

	s := Summarize(tasks, projects, model.Date{})

	require.Len(t, s.RecentTasks, 5)
	assert.Equal(t, int64(1), s.RecentTasks[0].ID)
	require.Len(t, s.TopProjects, 3)
	assert.Equal(t, int64(1), s.TopProjects[0].ID)
}

func TestSummarize_FewerItemsThanCaps(t *testing.T) {
	s := Summarize([]model.Task{{ID: 1}}, nil, model.Date{})
	assert.Len(t, s.RecentTasks, 1)
	assert.Empty(t, s.TopProjects)
}

func TestStats_PriorityBreakdownCoversAllTasks(t *testing.T) {
	tasks := []model.Task{
		{Priority: model.PriorityHigh},
		{Priority: model.PriorityHigh, Status: model.StatusCompleted},
		{Priority: model.PriorityMedium},
		{Priority: model.PriorityLow},
	}

	st := Stats(tasks, model.NewDate(2025, time.September, 20))

	assert.Equal(t, 2, st.HighPriority)
	assert.Equal(t, 1, st.MediumPriority)
	assert.Equal(t, 1, st.LowPriority)
}

func TestStats_WeeklyCompletionWindow(t *testing.T) {
	// Saturday the 20th; the window runs Sunday 14th through Saturday 20th.
	today := model.NewDate(2025, time.September, 20)
	tasks := []model.Task{
		{Status: model.StatusCompleted, DueDate: due(2025, time.September, 15)}, // Monday
		{Status: model.StatusCompleted, DueDate: due(2025, time.September, 15)},
		{Status: model.StatusCompleted, DueDate: due(2025, time.September, 20)}, // Saturday
		{Status: model.StatusCompleted, DueDate: due(2025, time.September, 13)}, // before window
		{Status: model.StatusCompleted, DueDate: due(2025, time.September, 21)}, // after today
		{Status: model.StatusTodo, DueDate: due(2025, time.September, 16)},      // not completed
		{Status: model.StatusCompleted},                                         // no due date
	}

	st := Stats(tasks, today)

	assert.Equal(t, [7]int{2, 0, 0, 0, 0, 1, 0}, st.WeeklyCompletion)
}
