package entity

import (
	"gorm.io/gorm"
)

// SiteSettings is a singleton row. A missing row is a configuration
// error, never defaulted.
type SiteSettings struct {
	gorm.Model
	DeliveryPrice        int64  `gorm:"not null" json:"deliveryPrice"`
	DiscountPrice        int64  `gorm:"not null;default:0" json:"discountPrice"`
	CompetitionThumbnail string `json:"competitionThumbnail"`
}
