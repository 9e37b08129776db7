package model

type Poster struct {
	DTO
	AccountId  uint      `gorm:"not null;index" json:"accountId"`
	Title      string    `gorm:"not null" validate:"required" json:"title"`
	ImageUrl   string    `json:"imageUrl"`
	IsActive   *bool     `gorm:"default:true" json:"isActive"`
	SortOrder  int       `gorm:"default:0" json:"sortOrder"`
	MenuItemId *uint     `json:"menuItemId"`
	MenuItem   *MenuItem `gorm:"foreignKey:MenuItemId" json:"menuItem,omitempty"`
}

type CreatePosterInput struct {
	Title      string `json:"title" validate:"required"`
	ImageUrl   string `json:"imageUrl" validate:"omitempty,url"`
	SortOrder  *int   `json:"sortOrder"`
	MenuItemId *uint  `json:"menuItemId"`
}

type EditPosterInput struct {
	Title      *string `json:"title"`
	ImageUrl   *string `json:"imageUrl" validate:"omitempty,url"`
	SortOrder  *int    `json:"sortOrder"`
	MenuItemId *uint   `json:"menuItemId"`
	IsActive   *bool   `json:"isActive"`
}
