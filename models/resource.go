package models

import "time"

// Resource is a static library entry (exercise, guide, hotline, etc).
type Resource struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Category    string `json:"category"` // self-help | crisis | academic | community
	Description string `json:"description"`
	Duration    string `json:"duration,omitempty"`
}

// Resource activity kinds.
const (
	ResourceActivityStarted = "started"
	ResourceActivitySaved   = "saved"
)

// ResourceActivity records that a user started or saved a resource.
type ResourceActivity struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"userId"`
	ResourceKey string    `bson:"resource_key" json:"resourceKey"`
	Kind        string    `bson:"kind" json:"kind"`
	RecordedAt  time.Time `bson:"recorded_at" json:"recordedAt"`
}
