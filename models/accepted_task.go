package models

import "time"

// AcceptedTask records a successfully approved Application. Job fields are
// denormalized at approval time; the record is never updated, only deleted
// when the task is completed or cancelled.
type AcceptedTask struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	JobID      string    `gorm:"size:64;index" json:"jobId"`
	Title      string    `gorm:"size:200" json:"title,omitempty"`
	Category   string    `gorm:"size:100" json:"category,omitempty"`
	Summary    string    `gorm:"type:text" json:"summary,omitempty"`
	CoverImage string    `gorm:"size:500" json:"coverImage,omitempty"`
	PostedBy   string    `gorm:"size:100" json:"postedBy,omitempty"`
	UserEmail  string    `gorm:"size:100;index" json:"userEmail"`
	AcceptedBy string    `gorm:"size:100" json:"acceptedBy"`
	AcceptedAt time.Time `json:"acceptedAt"`
}
