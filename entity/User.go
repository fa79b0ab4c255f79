package entity

import (
	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Mobile   string `gorm:"size:20;uniqueIndex;not null" json:"mobile"`
	Password string `json:"-"` // bcrypt hash
	Role     string `gorm:"size:16;not null;default:customer" json:"role"`

	Orders []Order `json:"-"`
	Cart   *Cart   `json:"-"`
}
