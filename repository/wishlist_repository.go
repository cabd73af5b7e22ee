package repository

import (
	"errors"

	"github.com/Salimjon123/Alijahon/entity"
	"gorm.io/gorm"
)

type WishListRepository struct {
	DB *gorm.DB
}

func NewWishListRepository(db *gorm.DB) *WishListRepository {
	return &WishListRepository{DB: db}
}

// Toggle adds the product to the user's wishlist, or removes it when
// already present. Returns true when the product ended up added.
func (r *WishListRepository) Toggle(userID, productID uint) (bool, error) {
	var w entity.WishList
	err := r.DB.Where("user_id = ? AND product_id = ?", userID, productID).First(&w).Error
	if err == nil {
		return false, r.DB.Unscoped().Delete(&w).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return true, r.DB.Create(&entity.WishList{UserID: userID, ProductID: productID}).Error
}

func (r *WishListRepository) ListForUser(userID uint) ([]entity.WishList, error) {
	var items []entity.WishList
	err := r.DB.Preload("Product").Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

// ProductIDsForUser backs the catalog's "already wished" markers.
func (r *WishListRepository) ProductIDsForUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.WishList{}).
		Where("user_id = ?", userID).
		Pluck("product_id", &ids).Error
	return ids, err
}
