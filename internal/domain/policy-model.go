package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Policy statuses are caller-supplied; nothing transitions them automatically,
// not even past EndDate.
const (
	PolicyStatusActive     = "Active"
	PolicyStatusPending    = "Pending"
	PolicyStatusRenewalDue = "Renewal Due"
)

func ValidPolicyStatus(s string) bool {
	switch s {
	case PolicyStatusActive, PolicyStatusPending, PolicyStatusRenewalDue:
		return true
	}
	return false
}

type Policy struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Company   string    `gorm:"not null" json:"company"`
	Value     float64   `gorm:"not null" json:"value"`
	Premium   float64   `gorm:"not null" json:"premium"`
	StartDate time.Time `gorm:"not null" json:"startDate"`
	EndDate   time.Time `gorm:"not null" json:"endDate"`
	Status    string    `gorm:"type:varchar(20);not null;default:Active" json:"status"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"userId"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (p *Policy) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
