package entity

import (
	"gorm.io/gorm"
)

// Withdraw status values.
const (
	WithdrawReview    = "review"
	WithdrawCompleted = "completed"
	WithdrawCancel    = "cancel"
)

type Withdraw struct {
	gorm.Model
	Amount     int64  `gorm:"not null" json:"amount"`
	CardNumber string `gorm:"not null" json:"cardNumber"`
	Status     string `gorm:"not null;default:review" json:"status"`
	Comment    string `json:"comment"`

	// Payment proof, stored as a URL.
	PayCheck string `json:"payCheck"`

	UserID *uint `json:"userId,omitempty"`
	User   *User `json:"-"`
}
