package model

import "time"

// OfferStatus is the applicant's answer to an offer
type OfferStatus string

// Offer statuses
const (
	OfferStatusPending  OfferStatus = "Pending"
	OfferStatusAccepted OfferStatus = "Accepted"
	OfferStatusRejected OfferStatus = "Rejected"
)

// Offer is a job offer made for an application after interview
type Offer struct {
	ID            uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	ApplicationID uint        `gorm:"not null;uniqueIndex" json:"application_id"`
	Application   Application `gorm:"foreignKey:ApplicationID;references:ID" json:"-"`
	Salary        float64     `gorm:"type:numeric(14,2);not null" json:"salary"`
	JoiningDate   time.Time   `gorm:"type:timestamptz;not null" json:"joining_date"`
	Status        OfferStatus `gorm:"type:text;not null;default:'Pending'" json:"status"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// OfferView is offer with the job it was made for
type OfferView struct {
	Offer
	JobID    uint   `json:"job_id"`
	JobTitle string `json:"job_title"`
}
