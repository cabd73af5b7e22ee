package repository

import (
	"errors"

	"github.com/Salimjon123/Alijahon/entity"
	"gorm.io/gorm"
)

type SettingsRepository struct {
	DB *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{DB: db}
}

// ErrNoSettings is returned when the singleton row is absent. Callers
// translate it into a configuration error; nothing defaults it.
var ErrNoSettings = errors.New("settings row missing")

// Get loads the singleton SiteSettings row on the caller's
// connection. Pass the open tx when reading inside a transaction.
func (r *SettingsRepository) Get(tx *gorm.DB) (*entity.SiteSettings, error) {
	var s entity.SiteSettings
	if err := tx.First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSettings
		}
		return nil, err
	}
	return &s, nil
}
