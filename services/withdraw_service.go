package services

import (
	"github.com/Salimjon123/Alijahon/entity"
	"github.com/Salimjon123/Alijahon/repository"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// WithdrawService debits user balance against withdrawal requests.
// The debit and the Withdraw insert commit together or not at all.
type WithdrawService struct {
	DB       *gorm.DB
	Repo     *repository.WithdrawRepository
	UserRepo *repository.UserRepository
}

func NewWithdrawService(db *gorm.DB, repo *repository.WithdrawRepository, userRepo *repository.UserRepository) *WithdrawService {
	return &WithdrawService{DB: db, Repo: repo, UserRepo: userRepo}
}

type WithdrawReq struct {
	Amount     int64  `json:"amount" binding:"required,gt=0"`
	CardNumber string `json:"cardNumber" binding:"required"`
}

// Request creates a withdrawal in review status and debits the
// balance in the same transaction. The debit statement itself guards
// `balance >= amount`, so concurrent requests cannot both pass
// against a stale read.
func (s *WithdrawService) Request(userID uint, req *WithdrawReq) (*entity.Withdraw, error) {
	w := &entity.Withdraw{
		Amount:     req.Amount,
		CardNumber: req.CardNumber,
		Status:     entity.WithdrawReview,
		UserID:     &userID,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		debited, err := s.UserRepo.DebitBalance(tx, userID, req.Amount)
		if err != nil {
			return err
		}
		if !debited {
			return fieldErr("amount", "you don't have enough money")
		}
		return s.Repo.Create(tx, w)
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":     userID,
		"withdraw_id": w.ID,
		"amount":      req.Amount,
	}).Info("withdrawal requested")
	return w, nil
}

func (s *WithdrawService) ListForUser(userID uint) ([]entity.Withdraw, error) {
	return s.Repo.ListForUser(userID)
}

// Resolve moves a withdrawal out of review. Cancel does not refund
// the balance; no code path credits it.
func (s *WithdrawService) Resolve(withdrawID uint, toStatus, comment string) (*entity.Withdraw, error) {
	if toStatus != entity.WithdrawCompleted && toStatus != entity.WithdrawCancel {
		return nil, fieldErr("status", "unknown withdraw status")
	}

	var out *entity.Withdraw
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		ok, err := s.Repo.ResolveGuard(tx, withdrawID, toStatus, comment)
		if err != nil {
			return err
		}
		if !ok {
			return fieldErr("status", "withdraw is not in review")
		}
		out, err = s.Repo.GetByID(tx, withdrawID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"withdraw_id": withdrawID,
		"status":      toStatus,
	}).Info("withdrawal resolved")
	return out, nil
}
