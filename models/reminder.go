package models

// ReminderPayload is the asynq task payload for appointment reminders.
type ReminderPayload struct {
	UserID     string `json:"userId"`
	BookingRef string `json:"bookingRef"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	FireDate   string `json:"fireDate"`
}
