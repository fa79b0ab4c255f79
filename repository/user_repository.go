package repository

import (
	"gorm.io/gorm"

	"github.com/satyasudipta98-dot/Foodie-we/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByMobile(mobile string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("mobile = ?", mobile).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByMobile(mobile string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("mobile = ?", mobile).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}
