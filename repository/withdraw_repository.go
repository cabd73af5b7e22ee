package repository

import (
	"github.com/Salimjon123/Alijahon/entity"
	"gorm.io/gorm"
)

type WithdrawRepository struct {
	DB *gorm.DB
}

func NewWithdrawRepository(db *gorm.DB) *WithdrawRepository {
	return &WithdrawRepository{DB: db}
}

func (r *WithdrawRepository) Create(tx *gorm.DB, w *entity.Withdraw) error {
	return tx.Create(w).Error
}

func (r *WithdrawRepository) ListForUser(userID uint) ([]entity.Withdraw, error) {
	var ws []entity.Withdraw
	err := r.DB.Where("user_id = ?", userID).Order("id DESC").Find(&ws).Error
	return ws, err
}

// GetByID reads one withdrawal on the caller's connection. Pass the
// open tx when reading inside a transaction.
func (r *WithdrawRepository) GetByID(tx *gorm.DB, id uint) (*entity.Withdraw, error) {
	var w entity.Withdraw
	if err := tx.First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// ResolveGuard moves a withdrawal out of review. The WHERE pins the
// current status so a double resolve affects zero rows.
func (r *WithdrawRepository) ResolveGuard(tx *gorm.DB, id uint, toStatus, comment string) (bool, error) {
	res := tx.Model(&entity.Withdraw{}).
		Where("id = ? AND status = ?", id, entity.WithdrawReview).
		Updates(map[string]any{"status": toStatus, "comment": comment})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
