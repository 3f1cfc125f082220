package models

import "time"

// Wizard step numbers. The flow is strictly linear: forward moves are gated
// by per-step validation, backward moves are unconditional.
const (
	StepService   = 1
	StepCounselor = 2
	StepSchedule  = 3
	StepDetails   = 4
	StepReview    = 5
)

// WizardSession is the state of one booking wizard flow. It lives in Redis
// for the duration of the session and is mutated only through the wizard
// service.
type WizardSession struct {
	SessionID         string    `json:"sessionId"`
	UserID            string    `json:"userId,omitempty"`
	CurrentStep       int       `json:"currentStep"`
	SelectedService   string    `json:"selectedService,omitempty"`
	SelectedCounselor string    `json:"selectedCounselor,omitempty"`
	SelectedDate      string    `json:"selectedDate,omitempty"` // YYYY-MM-DD
	SelectedTime      string    `json:"selectedTime,omitempty"` // HH:MM, 24h
	CreatedAt         time.Time `json:"createdAt"`
	LastUpdatedAt     time.Time `json:"lastUpdatedAt"`
}

// PersonalDetails is collected at the details step and snapshotted into the
// booking record at confirmation. It is not stored incrementally.
type PersonalDetails struct {
	FirstName        string `bson:"first_name" json:"firstName"`
	LastName         string `bson:"last_name" json:"lastName"`
	StudentID        string `bson:"student_id" json:"studentId"`
	CourseYear       string `bson:"course_year" json:"courseYear"`
	Email            string `bson:"email" json:"email"`
	Phone            string `bson:"phone" json:"phone"`
	PreferredContact string `bson:"preferred_contact,omitempty" json:"preferredContact,omitempty"`
	SessionFormat    string `bson:"session_format,omitempty" json:"sessionFormat,omitempty"`
	Concerns         string `bson:"concerns,omitempty" json:"concerns,omitempty"`
	EmergencyContact string `bson:"emergency_contact,omitempty" json:"emergencyContact,omitempty"`
}

// ConsentFlags captures the agreement checkboxes from the details step.
// Cancellation and student-enrollment consent are required; privacy consent
// is recorded as submitted.
type ConsentFlags struct {
	Privacy      bool `bson:"privacy" json:"privacy"`
	Cancellation bool `bson:"cancellation" json:"cancellation"`
	Student      bool `bson:"student" json:"student"`
}

// BookingSummary is the review-step snapshot shown before confirmation.
type BookingSummary struct {
	ServiceName   string `json:"serviceName"`
	Duration      string `json:"duration"`
	Fee           string `json:"fee"`
	CounselorName string `json:"counselorName"`
	Date          string `json:"date,omitempty"`
	Time          string `json:"time,omitempty"`
	TimeDisplay   string `json:"timeDisplay,omitempty"`
}

// BookingConfirmation is returned to the client after a successful
// confirmation, whether or not the remote persist succeeded.
type BookingConfirmation struct {
	Reference     string `json:"reference"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	TimeDisplay   string `json:"timeDisplay"`
	CounselorName string `json:"counselorName"`
	Status        string `json:"status"`
}

// DetailsForm carries the details-step submission exactly as entered. The
// form is validated when advancing to review and again at confirmation; it is
// never cached in the session.
type DetailsForm struct {
	Details  PersonalDetails `json:"details"`
	Consents ConsentFlags    `json:"consents"`
}
