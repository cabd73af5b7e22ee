package configs

import (
	"github.com/Salimjon123/Alijahon/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.User{},
		&entity.Region{}, &entity.District{},
		&entity.Category{}, &entity.Product{},
		&entity.Thread{},
		&entity.Order{},
		&entity.WishList{},
		&entity.SiteSettings{},
		&entity.Withdraw{},
	)
}
