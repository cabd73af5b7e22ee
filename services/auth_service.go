package services

import (
	"errors"
	"time"

	"github.com/Salimjon123/Alijahon/entity"
	"github.com/Salimjon123/Alijahon/repository"
	"github.com/Salimjon123/Alijahon/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles the combined login-or-register flow: an unknown
// phone number registers a fresh account, a known one must present
// the matching password.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Authenticate returns a token for the phone number, creating the
// account on first sight.
func (s *AuthService) Authenticate(phone, password string) (string, *entity.User, error) {
	phone = utils.NormalizePhone(phone)
	if phone == "" {
		return "", nil, fieldErr("phoneNumber", "phone number is required")
	}
	if password == "" {
		return "", nil, fieldErr("password", "password is required")
	}

	user, err := s.userRepo.FindByPhone(phone)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, err
		}
		user, err = s.register(phone, password)
		if err != nil {
			return "", nil, err
		}
	} else if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, fieldErr("password", "the password is incorrect")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) register(phone, password string) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}
	user := &entity.User{
		PhoneNumber: phone,
		Password:    string(hashed),
		Role:        entity.RoleUser,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// UpdateProfile writes the editable profile fields. All optional.
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}

// ChangePassword verifies the old password and the confirmation
// before rehashing.
func (s *AuthService) ChangePassword(userID uint, oldPassword, newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return fieldErr("confirmPassword", "the passwords do not match")
	}
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return fieldErr("oldPassword", "the password is incorrect")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}
	return s.userRepo.UpdatePassword(userID, string(hashed))
}
