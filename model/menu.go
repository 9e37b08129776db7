package model

type Category struct {
	DTO
	AccountId uint       `gorm:"not null;index" json:"accountId"`
	Name      string     `gorm:"not null" validate:"required" json:"name"`
	SortOrder int        `gorm:"default:0" json:"sortOrder"`
	Items     []MenuItem `gorm:"foreignKey:CategoryId" json:"items,omitempty"`
}

type CreateCategoryInput struct {
	Name      string `json:"name" validate:"required"`
	SortOrder *int   `json:"sortOrder"`
}

type EditCategoryInput struct {
	Name      *string `json:"name"`
	SortOrder *int    `json:"sortOrder"`
}

type MenuItem struct {
	DTO
	AccountId   uint     `gorm:"not null;index" json:"accountId"`
	CategoryId  uint     `gorm:"not null;index" json:"categoryId"`
	Name        string   `gorm:"not null" validate:"required" json:"name"`
	Slug        string   `gorm:"uniqueIndex" json:"slug"`
	Description string   `json:"description"`
	Price       float64  `gorm:"not null" validate:"gte=0" json:"price"`
	ImageUrl    *string  `json:"imageUrl"`
	IsAvailable *bool    `gorm:"default:true" json:"isAvailable"`
	Tags        []string `gorm:"serializer:json" json:"tags"`
	Pairings    []uint   `gorm:"serializer:json" json:"pairings"`
}

type CreateMenuItemInput struct {
	Name        string   `json:"name" validate:"required"`
	CategoryId  uint     `json:"categoryId" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	ImageUrl    *string  `json:"imageUrl" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
	Pairings    []uint   `json:"pairings"`
}

type EditMenuItemInput struct {
	Name        *string  `json:"name"`
	CategoryId  *uint    `json:"categoryId"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	ImageUrl    *string  `json:"imageUrl" validate:"omitempty,url"`
	Tags        []string `json:"tags"`
	Pairings    []uint   `json:"pairings"`
}
