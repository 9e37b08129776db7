package utils

import (
	"restaurant_manager/model"
	"strings"
	"testing"
	"time"
)

func sampleOrder() *model.Order {
	burger := model.MenuItem{Name: "Burger"}
	fries := model.MenuItem{Name: "Fries"}

	order := &model.Order{
		TotalAmount:   250,
		CustomerName:  "Ana",
		CustomerPhone: "+911234567890",
		Table:         model.Table{Name: "Table 5"},
		Items: []model.OrderItem{
			{MenuItem: burger, Quantity: 2, PriceAtTime: 100},
			{MenuItem: fries, Quantity: 1, PriceAtTime: 50},
		},
	}
	order.ID = 42
	order.CreatedAt = time.Date(2026, 3, 1, 19, 30, 0, 0, time.UTC)
	return order
}

func TestBuildReceiptTextItemizedTotal(t *testing.T) {
	receipt := BuildReceiptText(sampleOrder(), "Casa Mia")

	// Itemized lines carry captured prices
	if !strings.Contains(receipt, "2x Burger") || !strings.Contains(receipt, "200.00") {
		t.Errorf("missing burger line with subtotal:\n%s", receipt)
	}
	if !strings.Contains(receipt, "1x Fries") || !strings.Contains(receipt, "50.00") {
		t.Errorf("missing fries line with subtotal:\n%s", receipt)
	}
	// Itemized sum equals the stored total
	if !strings.Contains(receipt, "250.00") {
		t.Errorf("total line missing:\n%s", receipt)
	}
	if !strings.Contains(receipt, "Casa Mia") {
		t.Errorf("restaurant name missing:\n%s", receipt)
	}
	if !strings.Contains(receipt, "Order #42") || !strings.Contains(receipt, "Table 5") {
		t.Errorf("header incomplete:\n%s", receipt)
	}
}

func TestBuildReceiptTextFixedWidth(t *testing.T) {
	order := sampleOrder()
	order.Items = append(order.Items, model.OrderItem{
		MenuItem:    model.MenuItem{Name: "Slow-Roasted Lamb Shoulder with Rosemary Potatoes"},
		Quantity:    1,
		PriceAtTime: 899.5,
	})

	receipt := BuildReceiptText(order, "Casa Mia")
	for _, line := range strings.Split(receipt, "\n") {
		if len(line) > receiptWidth {
			t.Errorf("line exceeds receipt width %d: %q", receiptWidth, line)
		}
	}
	if !strings.Contains(receipt, "899.50") {
		t.Errorf("truncated item line lost its subtotal:\n%s", receipt)
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	link := BuildWhatsAppLink("+911234567890", "TOTAL: 250.00\nThank you")

	if !strings.HasPrefix(link, "https://wa.me/911234567890?text=") {
		t.Errorf("unexpected link prefix: %s", link)
	}
	if strings.Contains(link, "\n") || strings.Contains(link, " ") {
		t.Errorf("receipt text not url-encoded: %s", link)
	}
}

func TestBuildWhatsAppLinkNoPhone(t *testing.T) {
	if link := BuildWhatsAppLink("  ", "text"); link != "" {
		t.Errorf("expected empty link without phone, got %s", link)
	}
}
