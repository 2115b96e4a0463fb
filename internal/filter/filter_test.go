package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abhinav6284/Planora/internal/model"
)

var sample = []model.Task{
	{ID: 1, Title: "Design homepage", Description: "wireframes first", Status: model.StatusTodo, Priority: model.PriorityHigh},
	{ID: 2, Title: "Fix login bug", Status: model.StatusInProgress, Priority: model.PriorityHigh},
	{ID: 3, Title: "Write release notes", Description: "cover the new design", Status: model.StatusCompleted, Priority: model.PriorityLow},
	{ID: 4, Title: "Update dependencies", Status: model.StatusTodo, Priority: model.PriorityMedium},
}

func ids(tasks []model.Task) []int64 {
	out := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestTasks_EmptyCriteriaKeepsEverything(t *testing.T) {
	c := Criteria{}
	assert.True(t, c.Empty())
	assert.Equal(t, []int64{1, 2, 3, 4}, ids(Tasks(sample, c)))
}

func TestTasks_ByStatus(t *testing.T) {
	got := Tasks(sample, Criteria{Status: model.StatusTodo})
	assert.Equal(t, []int64{1, 4}, ids(got))
}

func TestTasks_ByPriority(t *testing.T) {
	got := Tasks(sample, Criteria{Priority: model.PriorityHigh})
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestTasks_SearchIsCaseInsensitive(t *testing.T) {
	got := Tasks(sample, Criteria{Search: "DESIGN"})
	// matches title of 1 and description of 3
	assert.Equal(t, []int64{1, 3}, ids(got))
}

func TestTasks_AllPredicatesMustMatch(t *testing.T) {
	got := Tasks(sample, Criteria{Status: model.StatusTodo, Priority: model.PriorityHigh, Search: "design"})
	assert.Equal(t, []int64{1}, ids(got))

	got = Tasks(sample, Criteria{Status: model.StatusCompleted, Priority: model.PriorityHigh})
	assert.Empty(t, got)
}

func TestTasks_PreservesInputOrder(t *testing.T) {
	got := Tasks(sample, Criteria{Priority: model.PriorityHigh})
	assert.Equal(t, []int64{1, 2}, ids(got))
}

func TestNotes_SearchTitleAndContent(t *testing.T) {
	notes := []model.Note{
		{ID: 1, Title: "Meeting notes", Content: "discuss roadmap"},
		{ID: 2, Title: "Ideas", Content: "brainstorm the Roadmap page"},
		{ID: 3, Title: "Groceries", Content: "eggs, milk"},
	}

	got := Notes(notes, "roadmap")
	assert.Len(t, got, 2)

	got = Notes(notes, "")
	assert.Len(t, got, 3)
}
