package models

import "time"

// DayCell is one cell of the date-picker grid. Leading cells (before day 1)
// have Day == 0 and are always disabled.
type DayCell struct {
	Day      int    `json:"day"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD, empty for leading cells
	Disabled bool   `json:"disabled"`
	Today    bool   `json:"today"`
	Selected bool   `json:"selected"`
}

// MonthGrid is the full date-picker payload for one month.
type MonthGrid struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Label   string     `json:"label"` // e.g. "September 2026"
	Leading int        `json:"leading"`
	Cells   []DayCell  `json:"cells"`
}

// TimeSlot is one bookable half-hour window on a selected date. Slots are
// ephemeral: they are regenerated on every date selection.
type TimeSlot struct {
	Time    string `json:"time"`    // HH:MM, 24h
	Display string `json:"display"` // e.g. "2:30 PM"
}
