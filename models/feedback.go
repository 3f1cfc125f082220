package models

import "time"

// Feedback is one entry on the feedback board. When Anonymous is set the
// identifying fields are left empty.
type Feedback struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id,omitempty" json:"userId,omitempty"`
	Rating      int       `bson:"rating" json:"rating"` // 1..5
	Type        string    `bson:"type,omitempty" json:"type,omitempty"`
	Service     string    `bson:"service,omitempty" json:"service,omitempty"`
	Title       string    `bson:"title,omitempty" json:"title,omitempty"`
	Message     string    `bson:"message" json:"message"`
	Improvement string    `bson:"improvement,omitempty" json:"improvement,omitempty"`
	Anonymous   bool      `bson:"anonymous" json:"anonymous"`
	Name        string    `bson:"name,omitempty" json:"name,omitempty"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	StudentID   string    `bson:"student_id,omitempty" json:"studentId,omitempty"`
	SubmittedAt time.Time `bson:"submitted_at" json:"submittedAt"`
}
