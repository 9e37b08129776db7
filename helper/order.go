package helper

import (
	"log"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// BuildOrderItems prices a submitted cart against the store's current
// prices. Client-supplied prices are never used. Cart entries whose
// menu item id does not resolve are dropped without error.
func BuildOrderItems(cart []model.CartEntry, dbItems []model.MenuItem) ([]model.OrderItem, float64) {
	byId := make(map[uint]model.MenuItem, len(dbItems))
	for _, item := range dbItems {
		byId[item.ID] = item
	}

	var orderItems []model.OrderItem
	total := float64(0)

	for _, entry := range cart {
		dbItem, ok := byId[entry.MenuItemId]
		if !ok {
			continue
		}
		qty := entry.Quantity
		if qty < 1 {
			qty = 1
		}
		total += dbItem.Price * float64(qty)
		orderItems = append(orderItems, model.OrderItem{
			MenuItemId:  dbItem.ID,
			Quantity:    qty,
			PriceAtTime: dbItem.Price,
		})
	}

	return orderItems, total
}

var forwardTransitions = map[string][]string{
	constants.ORDER_NEW:       {constants.ORDER_PREPARING, constants.ORDER_REJECTED},
	constants.ORDER_PREPARING: {constants.ORDER_COMPLETED},
	constants.ORDER_COMPLETED: {constants.ORDER_PAID},
}

// CanTransition enforces single-step forward transitions. Paid and
// Rejected are terminal.
func CanTransition(from, to string) bool {
	for _, next := range forwardTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PartitionLanes splits orders into the three kitchen lanes, each
// sorted by creation time descending. Paid and Rejected orders are
// off the board.
func PartitionLanes(orders []model.Order) model.KitchenBoard {
	board := model.KitchenBoard{
		New:       []model.Order{},
		Preparing: []model.Order{},
		Completed: []model.Order{},
	}

	for _, order := range orders {
		switch order.Status {
		case constants.ORDER_NEW:
			board.New = append(board.New, order)
		case constants.ORDER_PREPARING:
			board.Preparing = append(board.Preparing, order)
		case constants.ORDER_COMPLETED:
			board.Completed = append(board.Completed, order)
		}
	}

	desc := func(lane []model.Order) {
		sort.Slice(lane, func(i, j int) bool {
			return lane[i].CreatedAt.After(lane[j].CreatedAt)
		})
	}
	desc(board.New)
	desc(board.Preparing)
	desc(board.Completed)

	return board
}

const staleOrderAge = 6 * time.Hour

var orderJanitor *cron.Cron

// ExpireStaleOrders rejects New orders nobody touched for staleOrderAge.
func ExpireStaleOrders() {
	db := database.DB
	cutoff := time.Now().Add(-staleOrderAge)

	var orders []model.Order
	if err := db.Where("status = ? AND created_at < ?", constants.ORDER_NEW, cutoff).Find(&orders).Error; err != nil {
		log.Printf("stale order scan failed: %v", err)
		return
	}

	for _, order := range orders {
		updates := map[string]interface{}{
			"status":  constants.ORDER_REJECTED,
			"version": gorm.Expr("version + 1"),
		}
		if err := db.Model(&model.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
			log.Printf("failed to reject stale order %d: %v", order.ID, err)
			continue
		}
		PublishOrderUpdate(order.AccountId, order.ID, constants.ORDER_REJECTED, order.Version+1, nil)
		log.Printf("stale order %d rejected", order.ID)
	}
}

func StartOrderJanitor() {
	orderJanitor = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	orderJanitor.AddFunc("@every 15m", ExpireStaleOrders)
	orderJanitor.Start()
	log.Println("order janitor started (every 15m)")
}

func StopOrderJanitor() {
	if orderJanitor != nil {
		orderJanitor.Stop()
	}
}
