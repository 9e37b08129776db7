package model

type Table struct {
	DTO
	AccountId uint   `gorm:"not null;index" json:"accountId"`
	Name      string `gorm:"not null" validate:"required" json:"name"`
	Token     string `gorm:"uniqueIndex;size:36" json:"token"`
	// QrUrl is derived from APP_BASE_URL + token, never persisted.
	QrUrl string `gorm:"-" json:"qrUrl"`
}

type CreateTableInput struct {
	Name string `json:"name" validate:"required"`
}
