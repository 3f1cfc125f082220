package booking

import (
	"fmt"
	"time"

	"campuscare/models"
)

// Working hours for counseling sessions. Slots start every half hour; the
// last slot begins 30 minutes before close.
const (
	workDayOpenMinute  = 8 * 60
	workDayCloseMinute = 17 * 60
	slotStepMinutes    = 30
)

// GenerateTimeSlots builds the bookable slots for a date. Slots that have
// already started are skipped when the date is today, and each remaining slot
// is filtered through the availability source. Returns ErrNoSlots when
// nothing survives filtering.
func GenerateTimeSlots(date string, now time.Time, src AvailabilitySource) ([]models.TimeSlot, error) {
	isToday := date == now.Format("2006-01-02")
	nowMinute := now.Hour()*60 + now.Minute()

	var slots []models.TimeSlot
	for minute := workDayOpenMinute; minute < workDayCloseMinute; minute += slotStepMinutes {
		if isToday && minute <= nowMinute {
			continue
		}
		if !src.IsAvailable(date, minute) {
			continue
		}
		hhmm := minuteToClock(minute)
		slots = append(slots, models.TimeSlot{
			Time:    hhmm,
			Display: FormatSlotTime(hhmm),
		})
	}
	if len(slots) == 0 {
		return nil, ErrNoSlots
	}
	return slots, nil
}

func minuteToClock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

func clockToMinute(hhmm string) (int, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatSlotTime converts a 24-hour "HH:MM" value to its 12-hour display
// form, e.g. "14:30" -> "2:30 PM".
func FormatSlotTime(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

// ParseSlotDisplay is the inverse of FormatSlotTime, converting a 12-hour
// display value back to "HH:MM".
func ParseSlotDisplay(display string) (string, error) {
	t, err := time.Parse("3:04 PM", display)
	if err != nil {
		return "", fmt.Errorf("invalid time display %q: %w", display, err)
	}
	return t.Format("15:04"), nil
}
