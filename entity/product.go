package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`
	Image       string `json:"image"`

	// Customer-facing price and the affiliate base a thread discount
	// is validated against. Zero-decimal currency units.
	Price       int64 `gorm:"not null" json:"price"`
	SellerPrice int64 `gorm:"not null" json:"sellerPrice"`

	// Stock. Order quantity updates must not exceed it.
	Quantity int `gorm:"not null;default:1" json:"quantity"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	Threads []Thread `json:"-"`
	Orders  []Order  `gorm:"foreignKey:ProductID" json:"-"`
}
