package controllers

import (
	"errors"

	"github.com/Salimjon123/Alijahon/pkg/resp"
	"github.com/Salimjon123/Alijahon/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// serviceError maps the service error taxonomy onto HTTP responses:
// validation → 400 with the field, claim conflict → 409, missing
// configuration → 500 (logged), unknown row → 404.
func serviceError(c *gin.Context, err error) {
	if ve, ok := services.AsValidation(err); ok {
		resp.FieldError(c, ve.Field, ve.Message)
		return
	}
	switch {
	case errors.Is(err, services.ErrOrderClaimed):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrForbidden):
		resp.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrSiteSettingsMissing):
		logrus.WithError(err).Error("configuration error")
		resp.ServerError(c, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, "not found")
	default:
		resp.ServerError(c, err)
	}
}
