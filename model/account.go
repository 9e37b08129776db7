package model

import "time"

type Account struct {
	DTO
	Username string `gorm:"uniqueIndex;not null" validate:"required" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Email    string `json:"email"`
	Role     string `gorm:"default:ADMIN" json:"role"`
	Active   bool   `gorm:"default:true" json:"active"`

	Settings *AdminSettings `gorm:"foreignKey:AccountId" json:"settings,omitempty"`
}

// AdminSettings is a per-tenant singleton row, keyed by AccountId.
type AdminSettings struct {
	DTO
	AccountId      uint   `gorm:"uniqueIndex;not null" json:"accountId"`
	RestaurantName string `json:"restaurantName"`
	AIEnabled      *bool  `gorm:"default:true" json:"aiEnabled"`
}

type UpdateSettingsInput struct {
	RestaurantName *string `json:"restaurantName"`
	AIEnabled      *bool   `json:"aiEnabled"`
}

type PasswordResetToken struct {
	DTO
	AccountId uint      `gorm:"not null" json:"accountId"`
	Token     string    `gorm:"uniqueIndex;size:64" json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Used      bool      `gorm:"default:false" json:"used"`
}
