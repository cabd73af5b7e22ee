package entity

import (
	"gorm.io/gorm"
)

type Region struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	Districts []District `json:"-"`
}
