package models

import "time"

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id,omitempty" json:"userId,omitempty"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	StudentID   string    `bson:"student_id,omitempty" json:"studentId,omitempty"`
	CourseYear  string    `bson:"course_year,omitempty" json:"courseYear,omitempty"`
	Subject     string    `bson:"subject" json:"subject"`
	Message     string    `bson:"message" json:"message"`
	Urgency     string    `bson:"urgency" json:"urgency"` // low | medium | high
	Consent     bool      `bson:"consent" json:"consent"`
	SubmittedAt time.Time `bson:"submitted_at" json:"submittedAt"`
}
