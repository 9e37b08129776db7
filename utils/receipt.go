package utils

import (
	"fmt"
	"net/url"
	"restaurant_manager/model"
	"strings"
)

// Receipts are rendered at thermal-printer width.
const receiptWidth = 32

func line() string {
	return strings.Repeat("-", receiptWidth)
}

func padBetween(left, right string) string {
	// Long names get cut rather than pushing the line past the printer.
	if max := receiptWidth - len(right) - 1; max > 0 && len(left) > max {
		left = left[:max]
	}
	gap := receiptWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func center(s string) string {
	if len(s) >= receiptWidth {
		return s
	}
	pad := (receiptWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

// BuildReceiptText renders an order as a fixed-width monospace receipt.
// Item lines use the captured price, not the live menu price.
func BuildReceiptText(order *model.Order, restaurantName string) string {
	var b strings.Builder

	if restaurantName == "" {
		restaurantName = "Receipt"
	}

	b.WriteString(center(restaurantName) + "\n")
	b.WriteString(center(fmt.Sprintf("Order #%d", order.ID)) + "\n")
	b.WriteString(center("Table: "+order.Table.Name) + "\n")
	b.WriteString(center(order.CreatedAt.Format("02/01/2006 15:04")) + "\n")
	b.WriteString(line() + "\n")

	for _, item := range order.Items {
		name := item.MenuItem.Name
		subtotal := item.PriceAtTime * float64(item.Quantity)
		b.WriteString(padBetween(fmt.Sprintf("%dx %s", item.Quantity, name), fmt.Sprintf("%.2f", subtotal)) + "\n")
	}

	b.WriteString(line() + "\n")
	b.WriteString(padBetween("TOTAL", fmt.Sprintf("%.2f", order.TotalAmount)) + "\n")
	b.WriteString(line() + "\n")

	if order.CustomerName != "" {
		b.WriteString("Customer: " + order.CustomerName + "\n")
	}
	if order.CustomerPhone != "" {
		b.WriteString("Phone: " + order.CustomerPhone + "\n")
	}
	b.WriteString(center("Thank you for dining with us!") + "\n")

	return b.String()
}

// BuildWhatsAppLink returns a wa.me deep link pre-filled with the
// receipt text, or "" when the customer left no phone number. Nothing
// is sent here; the client opens the link.
func BuildWhatsAppLink(phone, text string) string {
	phone = strings.TrimLeft(strings.TrimSpace(phone), "+")
	if phone == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(text))
}
