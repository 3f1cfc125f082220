package models

import "time"

// Booking status values produced by this service.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed booking record. It is created once at
// confirmation and never mutated except for a status change on cancellation.
type Booking struct {
	ID            string          `bson:"id" json:"id"`               // Document id (UUID)
	Reference     string          `bson:"reference" json:"reference"` // Human-facing code, e.g. "CC482913K7DQ2M"
	UserID        string          `bson:"user_id,omitempty" json:"userId,omitempty"`
	Service       string          `bson:"service" json:"service"`
	ServiceName   string          `bson:"service_name" json:"serviceName"`
	Counselor     string          `bson:"counselor" json:"counselor"`
	CounselorName string          `bson:"counselor_name" json:"counselorName"`
	Date          string          `bson:"date" json:"date"` // YYYY-MM-DD
	Time          string          `bson:"time" json:"time"` // HH:MM, 24h
	Duration      string          `bson:"duration" json:"duration"`
	Details       PersonalDetails `bson:"details" json:"details"`
	Consents      ConsentFlags    `bson:"consents" json:"consents"`
	Status        string          `bson:"status" json:"status"`
	CreatedAt     time.Time       `bson:"created_at" json:"createdAt"`
}
