package models

import (
	"time"

	"gorm.io/datatypes"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Application is a claim by a prospective worker to take on a Job. JobID is
// the decimal string form of the Job's id, as submitted by the applicant.
type Application struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	JobID          string            `gorm:"size:64;index;not null" json:"jobId"`
	ApplicantEmail string            `gorm:"size:100;index;not null" json:"applicantEmail"`
	ApplicantName  string            `gorm:"size:100" json:"applicantName,omitempty"`
	Message        string            `gorm:"type:text" json:"message,omitempty"`
	Status         ApplicationStatus `gorm:"size:20;default:'pending'" json:"status"`
	DecidedBy      *string           `gorm:"size:100" json:"decidedBy,omitempty"`
	DecidedAt      *time.Time        `json:"decidedAt,omitempty"`
	Extra          datatypes.JSONMap `gorm:"type:jsonb" json:"-"`
	CreatedAt      time.Time         `json:"createdAt"`
}

func (a Application) MarshalJSON() ([]byte, error) {
	type alias Application
	return marshalWithExtra(alias(a), a.Extra)
}
