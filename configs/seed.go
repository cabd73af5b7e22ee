package configs

import (
	"log"

	"github.com/Salimjon123/Alijahon/entity"
	"github.com/Salimjon123/Alijahon/utils"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin() error {
	db := DB()
	phone := getEnv("ADMIN_PHONE", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if phone == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_PHONE/ADMIN_PASSWORD")
		return nil
	}
	phone = utils.NormalizePhone(phone)

	var count int64
	db.Model(&entity.User{}).Where("phone_number = ?", phone).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		PhoneNumber: phone,
		Password:    string(hash),
		FirstName:   "Admin",
		Role:        entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedSettings guarantees the SiteSettings singleton exists. Pricing
// refuses to run without it.
func SeedSettings() error {
	db := DB()
	var count int64
	if err := db.Model(&entity.SiteSettings{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&entity.SiteSettings{
		DeliveryPrice: 30000,
		DiscountPrice: 0,
	}).Error
}
