package repository

import (
	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
)

type SettingsRepository struct{ DB *gorm.DB }

func NewSettingsRepository(db *gorm.DB) *SettingsRepository { return &SettingsRepository{DB: db} }

// Get returns the singleton row. The seed guarantees it exists.
func (r *SettingsRepository) Get() (*entity.Settings, error) {
	var s entity.Settings
	if err := r.DB.First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsRepository) Save(s *entity.Settings) error {
	return r.DB.Save(s).Error
}
