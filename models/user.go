package models

import "time"

// User represents a portal account. Students register with their
// institutional email address.
type User struct {
	ID           string    `bson:"id" json:"id"`
	FirstName    string    `bson:"first_name" json:"firstName"`
	LastName     string    `bson:"last_name" json:"lastName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	StudentID    string    `bson:"student_id,omitempty" json:"studentId,omitempty"`
	CourseYear   string    `bson:"course_year,omitempty" json:"courseYear,omitempty"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string    `bson:"role" json:"role"` // "student" or "counselor"
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRegistrationData is the payload accepted at registration.
type UserRegistrationData struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	StudentID  string `json:"studentId"`
	CourseYear string `json:"courseYear"`
	Phone      string `json:"phone"`
}

// ProfileUpdate carries the mutable profile fields.
type ProfileUpdate struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	CourseYear string `json:"courseYear"`
	Phone      string `json:"phone"`
	FCMToken   string `json:"fcmToken"`
}
