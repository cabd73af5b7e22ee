package entity

import (
	"gorm.io/gorm"
)

// Role values. Plain strings, checked in services.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleDeliver  = "deliver"
	RoleUser     = "user"
)

type User struct {
	gorm.Model
	PhoneNumber string `gorm:"uniqueIndex;not null" json:"phoneNumber"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Role        string `gorm:"not null;default:user" json:"role"`

	TelegramID string `json:"telegramId"`
	About      string `json:"about"`
	Address    string `json:"address"`

	DistrictID *uint     `json:"districtId,omitempty"`
	District   *District `json:"-"`

	// Mutated only by the withdrawal ledger. Zero-decimal currency units.
	Balance int64 `gorm:"not null;default:0" json:"balance"`

	Threads   []Thread   `gorm:"foreignKey:OwnerID" json:"-"`
	Orders    []Order    `gorm:"foreignKey:CustomerID" json:"-"`
	WishLists []WishList `json:"-"`
	Withdraws []Withdraw `json:"-"`
}
