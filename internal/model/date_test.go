package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-09-20")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.September, 20), d)
}

func TestParseDate_TruncatesTimestamps(t *testing.T) {
	d, err := ParseDate("2025-09-20T15:04:05Z")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.September, 20), d)
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("20/09/2025")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestAddDays_RollsOverMonthAndYear(t *testing.T) {
	assert.Equal(t, NewDate(2025, time.October, 1), NewDate(2025, time.September, 30).AddDays(1))
	assert.Equal(t, NewDate(2026, time.January, 1), NewDate(2025, time.December, 31).AddDays(1))
	assert.Equal(t, NewDate(2025, time.August, 31), NewDate(2025, time.September, 1).AddDays(-1))
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.September, 20)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-09-20"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.Equal(t, d, parsed)
}

func TestDate_ZeroMarshalsAsNull(t *testing.T) {
	b, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))

	var d Date
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())
}

func TestTask_DueDateOmittedVsNull(t *testing.T) {
	task := Task{ID: 1, Title: "undated"}
	b, err := json.Marshal(task)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "due_date")

	var parsed Task
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"title":"dated","due_date":"2025-09-20"}`), &parsed))
	require.NotNil(t, parsed.DueDate)
	assert.Equal(t, NewDate(2025, time.September, 20), *parsed.DueDate)
}

func TestDate_Ordering(t *testing.T) {
	a := NewDate(2025, time.September, 19)
	b := NewDate(2025, time.September, 20)
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))
}
