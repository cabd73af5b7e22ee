package entity

import (
	"gorm.io/gorm"
)

// Thread is a seller's referral campaign for one product. Orders
// placed through it get the thread discount, and the seller shows up
// in statistics and the competition leaderboard.
type Thread struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	OwnerID uint `json:"ownerId"`
	Owner   User `json:"-"`

	ProductID uint    `json:"productId"`
	Product   Product `json:"-"`

	// Must not exceed Product.SellerPrice. Validated at creation.
	Discount int64 `gorm:"not null" json:"discount"`

	VisitCount int `gorm:"not null;default:0" json:"visitCount"`

	Orders []Order `gorm:"foreignKey:ThreadID" json:"-"`
}

// DiscountPrice is the customer's unit price through this thread.
// Requires Product to be loaded.
func (t *Thread) DiscountPrice() int64 {
	return t.Product.Price - t.Discount
}
