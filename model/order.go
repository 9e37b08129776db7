package model

import "time"

type Order struct {
	DTO
	TableId       uint        `gorm:"not null;index" json:"tableId"`
	Table         Table       `gorm:"foreignKey:TableId" json:"table"`
	AccountId     uint        `gorm:"not null;index" json:"accountId"` // owner, denormalized from the table
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	CustomerEmail string      `json:"customerEmail"`
	TotalAmount   float64     `json:"totalAmount"`
	Status        string      `gorm:"default:New;index" json:"status"`
	Version       uint        `gorm:"default:1" json:"version"` // bumped on every status write
	PaidAt        *time.Time  `json:"paidAt,omitempty"`
	Items         []OrderItem `gorm:"foreignKey:OrderId" json:"items"`
}

// OrderItem is immutable once created. PriceAtTime decouples billing
// from later menu price edits.
type OrderItem struct {
	DTO
	OrderId     uint     `gorm:"not null;index" json:"orderId"`
	MenuItemId  uint     `gorm:"not null" json:"menuItemId"`
	MenuItem    MenuItem `gorm:"foreignKey:MenuItemId" json:"menuItem"`
	Quantity    int      `gorm:"not null" json:"quantity"`
	PriceAtTime float64  `gorm:"not null" json:"priceAtTime"`
}

type CartEntry struct {
	MenuItemId uint `json:"menuItemId" validate:"required"`
	Quantity   int  `json:"quantity" validate:"gte=1"`
}

type SubmitOrderInput struct {
	Items         []CartEntry `json:"items" validate:"required,dive"`
	CustomerName  string      `json:"customerName" validate:"required"`
	CustomerPhone string      `json:"customerPhone"`
	CustomerEmail string      `json:"customerEmail" validate:"omitempty,email"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// OrderFeedEvent is what gets published on the tenant's redis channel
// and relayed to kitchen board websockets.
type OrderFeedEvent struct {
	Type  string `json:"type"` // INSERT | UPDATE
	Order *Order `json:"order,omitempty"`
	// UPDATE events carry just the merged fields.
	OrderId uint       `json:"orderId,omitempty"`
	Status  string     `json:"status,omitempty"`
	Version uint       `json:"version,omitempty"`
	PaidAt  *time.Time `json:"paidAt,omitempty"`
}

// KitchenBoard is the snapshot sent on websocket connect: the three
// active lanes, each sorted by creation time descending.
type KitchenBoard struct {
	New       []Order `json:"new"`
	Preparing []Order `json:"preparing"`
	Completed []Order `json:"completed"`
}

type RevenueSnapshot struct {
	DTO
	AccountId   uint      `gorm:"not null;uniqueIndex:idx_snapshot_account_date" json:"accountId"`
	Date        time.Time `gorm:"not null;uniqueIndex:idx_snapshot_account_date" json:"date"`
	Revenue     float64   `json:"revenue"`
	OrdersCount int64     `json:"ordersCount"`
}
