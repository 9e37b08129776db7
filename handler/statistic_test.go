package handler

import (
	"restaurant_manager/helper"
	"strings"
	"testing"
	"time"
)

func TestBuildCustomerCSV(t *testing.T) {
	customers := []helper.CustomerStats{
		{Name: "Ana", Phone: "111", TotalOrders: 3, TotalSpent: 450.5, LastVisit: time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC)},
		{Name: "Ben, Jr.", Phone: "", TotalOrders: 1, TotalSpent: 99, LastVisit: time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)},
	}

	data, err := BuildCustomerCSV(customers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Name,Phone,Total Orders,Total Spent,Last Visit" {
		t.Errorf("wrong header: %s", lines[0])
	}
	if !strings.Contains(lines[1], "Ana,111,3,450.50,2026-03-10") {
		t.Errorf("wrong first row: %s", lines[1])
	}
	// Comma in a name must be quoted
	if !strings.HasPrefix(lines[2], "\"Ben, Jr.\"") {
		t.Errorf("name with comma not quoted: %s", lines[2])
	}
}

func TestBuildCustomerCSVEmpty(t *testing.T) {
	data, err := BuildCustomerCSV(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(string(data)) != "Name,Phone,Total Orders,Total Spent,Last Visit" {
		t.Errorf("expected header only, got %q", string(data))
	}
}
