package services

import (
	"testing"
	"time"

	"github.com/Salimjon123/Alijahon/entity"
	"github.com/Salimjon123/Alijahon/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestAuthenticateRegistersUnknownPhone(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	token, user, err := svc.Authenticate("+998 (90) 123-45-67", "secret12")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "998901234567", user.PhoneNumber)
	assert.Equal(t, entity.RoleUser, user.Role)

	// Same phone in another format logs into the same account.
	_, again, err := svc.Authenticate("998901234567", "secret12")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestAuthenticateRejectsWrongPassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, _, err := svc.Authenticate("998901234567", "secret12")
	require.NoError(t, err)

	_, _, err = svc.Authenticate("998901234567", "nope")
	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "password", ve.Field)
}

func TestChangePassword(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, user, err := svc.Authenticate("998901234567", "secret12")
	require.NoError(t, err)

	require.Error(t, svc.ChangePassword(user.ID, "secret12", "new", "mismatch"))
	require.Error(t, svc.ChangePassword(user.ID, "wrong", "newpass1", "newpass1"))
	require.NoError(t, svc.ChangePassword(user.ID, "secret12", "newpass1", "newpass1"))

	_, _, err = svc.Authenticate("998901234567", "newpass1")
	assert.NoError(t, err)
}
