package entity

import (
	"gorm.io/gorm"
)

// Settings is a singleton row (one record, created by the seed).
type Settings struct {
	gorm.Model
	AppName     string `json:"appName"`
	LogoURL     string `json:"logoUrl"`
	DeliveryFee int64  `json:"deliveryFee"`
	PlatformFee int64  `json:"platformFee"`
	Surcharge   int64  `json:"surcharge"`
	AboutUs     string `json:"aboutUs"`

	DeliveryTimes []string `gorm:"serializer:json" json:"deliveryTimes"`

	RewardInfo  string `json:"rewardInfo"`
	SupportLink string `json:"supportLink"` // external chat deep link, never inspected
}
