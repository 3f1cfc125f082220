package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGridShape(t *testing.T) {
	// April 2026 starts on a Wednesday and has 30 days.
	today := time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(2026, time.April, today, "")

	assert.Equal(t, "April 2026", grid.Label)
	assert.Equal(t, 3, grid.Leading)
	require.Len(t, grid.Cells, 33)

	for i := 0; i < grid.Leading; i++ {
		assert.Zero(t, grid.Cells[i].Day, "leading cell %d must be blank", i)
		assert.True(t, grid.Cells[i].Disabled, "leading cell %d must be disabled", i)
	}
	assert.Equal(t, 1, grid.Cells[grid.Leading].Day)
	assert.Equal(t, 30, grid.Cells[len(grid.Cells)-1].Day)
	assert.Equal(t, time.April, grid.Month)
}

func TestBuildMonthGridDisablesPastAndWeekends(t *testing.T) {
	today := time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(2026, time.April, today, "")

	byDay := make(map[int]int)
	for i, c := range grid.Cells {
		if c.Day > 0 {
			byDay[c.Day] = i
		}
	}

	assert.True(t, grid.Cells[byDay[14]].Disabled, "yesterday must be disabled")
	assert.False(t, grid.Cells[byDay[16]].Disabled, "tomorrow must be selectable")
	assert.True(t, grid.Cells[byDay[4]].Disabled, "Saturday must be disabled")
	assert.True(t, grid.Cells[byDay[5]].Disabled, "Sunday must be disabled")

	cell := grid.Cells[byDay[15]]
	assert.True(t, cell.Today)
	assert.False(t, cell.Disabled, "today itself stays selectable")
	assert.Equal(t, "2026-04-15", cell.Date)
}

func TestBuildMonthGridMarksSelected(t *testing.T) {
	today := time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(2026, time.April, today, "2026-04-20")

	var selected int
	for _, c := range grid.Cells {
		if c.Selected {
			selected++
			assert.Equal(t, 20, c.Day)
			assert.False(t, c.Disabled)
		}
	}
	assert.Equal(t, 1, selected)
}

func TestBuildMonthGridSelectedOutsideMonth(t *testing.T) {
	today := time.Date(2026, time.April, 15, 10, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(2026, time.May, today, "2026-04-20")

	for _, c := range grid.Cells {
		assert.False(t, c.Selected)
	}
}
