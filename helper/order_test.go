package helper

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"testing"
	"time"
)

func menuItem(id uint, price float64) model.MenuItem {
	item := model.MenuItem{Price: price}
	item.ID = id
	return item
}

func TestBuildOrderItemsUsesStorePrices(t *testing.T) {
	// Client claims the item costs 999; the store says 50.
	cart := []model.CartEntry{{MenuItemId: 1, Quantity: 2}}
	dbItems := []model.MenuItem{menuItem(1, 50)}

	items, total := BuildOrderItems(cart, dbItems)

	if len(items) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(items))
	}
	if items[0].PriceAtTime != 50 {
		t.Errorf("expected captured price 50, got %v", items[0].PriceAtTime)
	}
	if total != 100 {
		t.Errorf("expected total 100, got %v", total)
	}
}

func TestBuildOrderItemsDropsUnknownIds(t *testing.T) {
	cart := []model.CartEntry{
		{MenuItemId: 1, Quantity: 1},
		{MenuItemId: 99, Quantity: 3}, // deleted from the menu
		{MenuItemId: 2, Quantity: 2},
	}
	dbItems := []model.MenuItem{menuItem(1, 10), menuItem(2, 5)}

	items, total := BuildOrderItems(cart, dbItems)

	if len(items) != 2 {
		t.Fatalf("expected 2 surviving items, got %d", len(items))
	}
	if total != 20 {
		t.Errorf("expected total 20, got %v", total)
	}
	for _, item := range items {
		if item.MenuItemId == 99 {
			t.Errorf("stale cart entry should have been dropped")
		}
	}
}

func TestBuildOrderItemsEmptyResult(t *testing.T) {
	cart := []model.CartEntry{{MenuItemId: 7, Quantity: 1}}

	items, total := BuildOrderItems(cart, nil)

	if len(items) != 0 {
		t.Errorf("expected no items, got %d", len(items))
	}
	if total != 0 {
		t.Errorf("expected zero total, got %v", total)
	}
}

func TestBuildOrderItemsClampsQuantity(t *testing.T) {
	cart := []model.CartEntry{{MenuItemId: 1, Quantity: 0}}
	dbItems := []model.MenuItem{menuItem(1, 30)}

	items, total := BuildOrderItems(cart, dbItems)

	if len(items) != 1 || items[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %+v", items)
	}
	if total != 30 {
		t.Errorf("expected total 30, got %v", total)
	}
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{constants.ORDER_NEW, constants.ORDER_PREPARING},
		{constants.ORDER_NEW, constants.ORDER_REJECTED},
		{constants.ORDER_PREPARING, constants.ORDER_COMPLETED},
		{constants.ORDER_COMPLETED, constants.ORDER_PAID},
	}
	for _, tc := range allowed {
		if !CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be allowed", tc.from, tc.to)
		}
	}

	denied := []struct{ from, to string }{
		{constants.ORDER_NEW, constants.ORDER_PAID},
		{constants.ORDER_NEW, constants.ORDER_COMPLETED},
		{constants.ORDER_PREPARING, constants.ORDER_REJECTED},
		{constants.ORDER_PAID, constants.ORDER_NEW},
		{constants.ORDER_REJECTED, constants.ORDER_PREPARING},
		{constants.ORDER_COMPLETED, constants.ORDER_COMPLETED},
	}
	for _, tc := range denied {
		if CanTransition(tc.from, tc.to) {
			t.Errorf("expected %s -> %s to be denied", tc.from, tc.to)
		}
	}
}

func orderWith(id uint, status string, createdAt time.Time) model.Order {
	order := model.Order{Status: status}
	order.ID = id
	order.CreatedAt = createdAt
	return order
}

func TestPartitionLanes(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	orders := []model.Order{
		orderWith(1, constants.ORDER_NEW, base),
		orderWith(2, constants.ORDER_NEW, base.Add(10*time.Minute)),
		orderWith(3, constants.ORDER_PREPARING, base.Add(5*time.Minute)),
		orderWith(4, constants.ORDER_COMPLETED, base),
		orderWith(5, constants.ORDER_PAID, base),
		orderWith(6, constants.ORDER_REJECTED, base),
	}

	board := PartitionLanes(orders)

	if len(board.New) != 2 || len(board.Preparing) != 1 || len(board.Completed) != 1 {
		t.Fatalf("wrong lane sizes: %d/%d/%d", len(board.New), len(board.Preparing), len(board.Completed))
	}
	// Newest first inside the lane
	if board.New[0].ID != 2 || board.New[1].ID != 1 {
		t.Errorf("New lane not sorted by creation desc: %v, %v", board.New[0].ID, board.New[1].ID)
	}
	// Settled and rejected orders are off the board
	for _, order := range append(board.New, append(board.Preparing, board.Completed...)...) {
		if order.ID == 5 || order.ID == 6 {
			t.Errorf("order %d should not be on the board", order.ID)
		}
	}
}

func TestPartitionLanesEmpty(t *testing.T) {
	board := PartitionLanes(nil)
	if board.New == nil || board.Preparing == nil || board.Completed == nil {
		t.Errorf("lanes must be non-nil so they serialize as [] not null")
	}
}
