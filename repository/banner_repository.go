package repository

import (
	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
)

type BannerRepository struct{ DB *gorm.DB }

func NewBannerRepository(db *gorm.DB) *BannerRepository { return &BannerRepository{DB: db} }

func (r *BannerRepository) List() ([]entity.Banner, error) {
	var banners []entity.Banner
	err := r.DB.Order("id").Find(&banners).Error
	return banners, err
}

func (r *BannerRepository) Create(b *entity.Banner) error {
	return r.DB.Create(b).Error
}

func (r *BannerRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Banner{}, id).Error
}
