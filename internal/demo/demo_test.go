package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abhinav6284/Planora/internal/model"
)

func TestFixturesAreWellFormed(t *testing.T) {
	seenTask := map[int64]bool{}
	for _, task := range Tasks() {
		assert.NotZero(t, task.ID)
		assert.False(t, seenTask[task.ID], "duplicate task id %d", task.ID)
		seenTask[task.ID] = true
		assert.NotEmpty(t, task.Title)
		assert.True(t, task.Status.Valid(), "task %d status %q", task.ID, task.Status)
		assert.True(t, task.Priority.Valid(), "task %d priority %q", task.ID, task.Priority)
	}
	assert.Len(t, Tasks(), 8)
	assert.Len(t, Projects(), 5)
	assert.Len(t, Notes(), 5)
}

func TestFixturesReturnFreshSlices(t *testing.T) {
	a := Tasks()
	a[0].Title = "mutated"
	assert.NotEqual(t, "mutated", Tasks()[0].Title)
}

func TestDemoUser(t *testing.T) {
	u := User()
	assert.Equal(t, model.User{Name: "Demo User", Email: "demo@planora.com"}, u)
}
