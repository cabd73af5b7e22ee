package entity

import (
	"gorm.io/gorm"
)

type District struct {
	gorm.Model
	Name string `gorm:"not null" json:"name"`

	RegionID uint   `json:"regionId"`
	Region   Region `json:"-"`

	Orders []Order `gorm:"foreignKey:DistrictID" json:"-"`
}
