package entity

import (
	"gorm.io/gorm"
)

type WishList struct {
	gorm.Model
	UserID uint `gorm:"index:idx_wishlist_user_product" json:"userId"`
	User   User `json:"-"`

	ProductID uint    `gorm:"index:idx_wishlist_user_product" json:"productId"`
	Product   Product `json:"-"`
}
