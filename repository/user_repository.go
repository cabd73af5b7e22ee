package repository

import (
	"github.com/Salimjon123/Alijahon/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByPhone(phone string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("phone_number = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) Update(userID uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) UpdatePassword(userID uint, hash string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("password", hash).Error
}

// DebitBalance subtracts amount only when the current balance covers
// it. The read and write are one statement, so two concurrent debits
// cannot both pass against a stale snapshot. Returns whether a row
// was debited.
func (r *UserRepository) DebitBalance(tx *gorm.DB, userID uint, amount int64) (bool, error) {
	res := tx.Model(&entity.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
