package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Nominee carries a denormalized copy of the owning account ID so that
// owner-scoped listing never needs a join through the policy.
type Nominee struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Relationship string    `gorm:"not null" json:"relationship"`
	Email        string    `gorm:"not null" json:"email"`
	Phone        string    `gorm:"not null" json:"phone"`
	Verified     bool      `gorm:"not null;default:false" json:"verified"`
	Status       string    `gorm:"not null;default:Active" json:"status"`
	PolicyID     string    `gorm:"type:uuid;index;not null" json:"policyId"`
	UserID       string    `gorm:"type:uuid;index;not null" json:"userId"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

func (n *Nominee) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Status == "" {
		n.Status = "Active"
	}
	return nil
}
