package controllers

import (
	"github.com/Salimjon123/Alijahon/pkg/resp"
	"github.com/Salimjon123/Alijahon/services"
	"github.com/Salimjon123/Alijahon/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type AuthRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required,max=20"`
	Password    string `json:"password" binding:"required,max=8"`
}

// POST /auth - login, or register when the phone number is new.
func (a *AuthController) Authenticate(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Auth.Authenticate(req.PhoneNumber, req.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":          user.ID,
			"phoneNumber": user.PhoneNumber,
			"firstName":   user.FirstName,
			"lastName":    user.LastName,
			"role":        user.Role,
		},
	})
}

// GET /profile
func (a *AuthController) Profile(c *gin.Context) {
	user, err := a.Auth.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, user)
}

type UpdateProfileRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	DistrictID *uint   `json:"districtId"`
	Address    *string `json:"address"`
	TelegramID *string `json:"telegramId"`
	About      *string `json:"about"`
}

// PATCH /profile - every field optional.
func (a *AuthController) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.DistrictID != nil {
		updates["district_id"] = *req.DistrictID
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.TelegramID != nil {
		updates["telegram_id"] = *req.TelegramID
	}
	if req.About != nil {
		updates["about"] = *req.About
	}

	user, err := a.Auth.UpdateProfile(utils.CurrentUserID(c), updates)
	if err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, user)
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
}

// PATCH /profile/password
func (a *AuthController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := a.Auth.ChangePassword(utils.CurrentUserID(c), req.OldPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		serviceError(c, err)
		return
	}
	resp.OK(c, gin.H{"changed": true})
}
