package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Activity(t *testing.T) {
	c := Catalog{Phases: []Phase{
		{ID: 1, Days: []Day{{ID: 4, Range: "Day 4", Activities: []string{"read", "write"}}}},
	}}

	text, day, ok := c.Activity(NewActivityID(1, 4, 1))
	assert.True(t, ok)
	assert.Equal(t, "write", text)
	assert.Equal(t, "Day 4", day.Range)

	assert.False(t, c.Contains(NewActivityID(1, 4, 2)))
	assert.False(t, c.Contains(NewActivityID(1, 5, 0)))
	assert.False(t, c.Contains(NewActivityID(2, 4, 0)))
	assert.Equal(t, 2, c.TotalActivities())
}
