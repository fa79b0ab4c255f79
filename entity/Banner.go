package entity

import (
	"gorm.io/gorm"
)

type Banner struct {
	gorm.Model
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title"`
}
