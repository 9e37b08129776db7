package helper

import (
	"restaurant_manager/model"
	"testing"
	"time"
)

func paidOrder(amount float64, name, phone string, createdAt time.Time) model.Order {
	order := model.Order{TotalAmount: amount, CustomerName: name, CustomerPhone: phone}
	order.CreatedAt = createdAt
	return order
}

func TestAggregateOrdersWindows(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	orders := []model.Order{
		paidOrder(100, "Ana", "111", now.Add(-2*time.Hour)),            // today
		paidOrder(50, "Ben", "222", now.AddDate(0, 0, -3)),             // this week + this month
		paidOrder(25, "Cal", "333", now.AddDate(0, 0, -10)),            // this month only
		paidOrder(10, "Dee", "444", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)), // older
	}

	stats := AggregateOrders(orders, now)

	if stats.Revenue.Daily != 100 {
		t.Errorf("daily revenue: expected 100, got %v", stats.Revenue.Daily)
	}
	if stats.Revenue.Weekly != 150 {
		t.Errorf("weekly revenue: expected 150, got %v", stats.Revenue.Weekly)
	}
	if stats.Revenue.Monthly != 175 {
		t.Errorf("monthly revenue: expected 175, got %v", stats.Revenue.Monthly)
	}
	if stats.Revenue.Total != 185 {
		t.Errorf("total revenue: expected 185, got %v", stats.Revenue.Total)
	}
	if stats.Orders.Daily != 1 || stats.Orders.Weekly != 2 || stats.Orders.Monthly != 3 || stats.Orders.Total != 4 {
		t.Errorf("order counts wrong: %+v", stats.Orders)
	}
}

func TestAggregateOrdersCustomerKeying(t *testing.T) {
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	orders := []model.Order{
		paidOrder(40, "Ana", "111", now.Add(-1*time.Hour)),
		paidOrder(60, "Ana M.", "111", now.Add(-30*time.Minute)), // same phone, renamed
		paidOrder(20, "Walk-in", "", now.Add(-2*time.Hour)),      // keyed by name
		paidOrder(5, "", "", now),                                // no key at all
	}

	stats := AggregateOrders(orders, now)

	if len(stats.Customers) != 2 {
		t.Fatalf("expected 2 customers, got %d", len(stats.Customers))
	}

	var byPhone *CustomerStats
	for i := range stats.Customers {
		if stats.Customers[i].Phone == "111" {
			byPhone = &stats.Customers[i]
		}
	}
	if byPhone == nil {
		t.Fatal("customer with phone 111 missing")
	}
	if byPhone.TotalOrders != 2 || byPhone.TotalSpent != 100 {
		t.Errorf("phone-keyed customer: got %d orders, %v spent", byPhone.TotalOrders, byPhone.TotalSpent)
	}
	if !byPhone.LastVisit.Equal(now.Add(-30 * time.Minute)) {
		t.Errorf("last visit not updated to newest order")
	}

	// Sorted by last visit, newest first
	if !stats.Customers[0].LastVisit.After(stats.Customers[1].LastVisit) {
		t.Errorf("customers not sorted by last visit desc")
	}
}

func TestAggregateOrdersEmpty(t *testing.T) {
	stats := AggregateOrders(nil, time.Now())
	if stats.Revenue.Total != 0 || stats.Orders.Total != 0 {
		t.Errorf("empty input should aggregate to zero")
	}
	if stats.Customers == nil || len(stats.Customers) != 0 {
		t.Errorf("customers should be an empty slice")
	}
}
