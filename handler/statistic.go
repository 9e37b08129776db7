package handler

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func paidOrdersForAccount(accountId uint) ([]model.Order, error) {
	var orders []model.Order
	err := database.DB.
		Where("account_id = ? AND status = ?", accountId, constants.ORDER_PAID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// GetAdminStats aggregates Paid orders into revenue/order windows and
// the per-customer ledger. Rejected orders never count; Completed
// orders earn nothing until they are settled.
func GetAdminStats(c *fiber.Ctx) error {
	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	orders, err := paidOrdersForAccount(claim.AccountId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	stats := helper.AggregateOrders(orders, time.Now())

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// GetRevenueSnapshots lists the nightly rollups for charting.
func GetRevenueSnapshots(c *fiber.Ctx) error {
	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	days := c.QueryInt("days", 30)
	if days < 1 || days > 365 {
		days = 30
	}

	var snapshots []model.RevenueSnapshot
	if err := database.DB.
		Where("account_id = ? AND date >= ?", claim.AccountId, time.Now().AddDate(0, 0, -days)).
		Order("date asc").
		Find(&snapshots).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, snapshots)
}

// BuildCustomerCSV renders the analytics export. Kept separate from
// the handler so the format is testable.
func BuildCustomerCSV(customers []helper.CustomerStats) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Name", "Phone", "Total Orders", "Total Spent", "Last Visit"}); err != nil {
		return nil, err
	}
	for _, cust := range customers {
		record := []string{
			cust.Name,
			cust.Phone,
			strconv.FormatInt(cust.TotalOrders, 10),
			fmt.Sprintf("%.2f", cust.TotalSpent),
			cust.LastVisit.Format("2006-01-02"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ExportCustomersCSV downloads the customer analytics as CSV; the
// filename carries the export date.
func ExportCustomersCSV(c *fiber.Ctx) error {
	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	orders, err := paidOrdersForAccount(claim.AccountId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	stats := helper.AggregateOrders(orders, time.Now())

	data, err := BuildCustomerCSV(stats.Customers)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to build CSV", err)
	}

	filename := fmt.Sprintf("customers_%s.csv", time.Now().Format("2006-01-02"))
	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(data)
}
