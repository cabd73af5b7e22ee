package repository

import (
	"github.com/Salimjon123/Alijahon/entity"
	"gorm.io/gorm"
)

type RegionRepository struct {
	DB *gorm.DB
}

func NewRegionRepository(db *gorm.DB) *RegionRepository {
	return &RegionRepository{DB: db}
}

func (r *RegionRepository) List() ([]entity.Region, error) {
	var regions []entity.Region
	err := r.DB.Order("id").Find(&regions).Error
	return regions, err
}

func (r *RegionRepository) DistrictsByRegion(regionID uint) ([]entity.District, error) {
	var districts []entity.District
	err := r.DB.Where("region_id = ?", regionID).Order("id").Find(&districts).Error
	return districts, err
}
