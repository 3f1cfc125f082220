package booking

import (
	"time"

	"campuscare/models"
)

// BuildMonthGrid produces the calendar grid for the given month. The grid is
// pure data: leading blank cells pad to the weekday of the 1st, past days and
// weekends are disabled, and the today/selected flags are set relative to the
// supplied clock. Rendering is left entirely to the client.
func BuildMonthGrid(year int, month time.Month, today time.Time, selected string) *models.MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, today.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	grid := &models.MonthGrid{
		Year:    year,
		Month:   month,
		Label:   first.Format("January 2006"),
		Leading: int(first.Weekday()),
	}

	for i := 0; i < grid.Leading; i++ {
		grid.Cells = append(grid.Cells, models.DayCell{Disabled: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
		cell := models.DayCell{
			Day:      day,
			Date:     date.Format("2006-01-02"),
			Disabled: date.Before(midnight) || isWeekend(date),
			Today:    date.Equal(midnight),
			Selected: selected != "" && date.Format("2006-01-02") == selected,
		}
		grid.Cells = append(grid.Cells, cell)
	}
	return grid
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
