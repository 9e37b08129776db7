package handler

import (
	"errors"
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitOrder creates an order from a customer cart. Prices come from
// the store, never from the client; cart entries whose item id no
// longer resolves are dropped silently. Order row and item rows are
// written in one transaction.
func SubmitOrder(c *fiber.Ctx) error {
	token := c.Params("token")
	input := c.Locals("input").(model.SubmitOrderInput)

	db := database.DB

	var table model.Table
	if err := db.Where("token = ?", token).First(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	itemIds := make([]uint, 0, len(input.Items))
	for _, entry := range input.Items {
		itemIds = append(itemIds, entry.MenuItemId)
	}

	var dbItems []model.MenuItem
	if err := db.Where("id IN ? AND account_id = ?", itemIds, table.AccountId).Find(&dbItems).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	orderItems, total := helper.BuildOrderItems(input.Items, dbItems)
	if len(orderItems) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No cart item could be resolved", errors.New("all cart entries are stale"))
	}

	order := model.Order{
		TableId:       table.ID,
		AccountId:     table.AccountId,
		CustomerName:  input.CustomerName,
		CustomerPhone: input.CustomerPhone,
		CustomerEmail: input.CustomerEmail,
		TotalAmount:   total,
		Status:        constants.ORDER_NEW,
		Version:       1,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range orderItems {
			orderItems[i].OrderId = order.ID
		}
		return tx.Create(&orderItems).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to place order", err)
	}

	// Re-read with joins so the kitchen board gets table and item names.
	var fullOrder model.Order
	if err := db.Preload("Table").Preload("Items").Preload("Items.MenuItem").First(&fullOrder, order.ID).Error; err == nil {
		helper.PublishOrderInsert(table.AccountId, &fullOrder)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"orderId": order.ID, "totalAmount": total})
}

func GetOrders(c *fiber.Ctx) error {
	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	query := database.DB.
		Preload("Table").
		Preload("Items").
		Preload("Items.MenuItem").
		Where("account_id = ?", claim.AccountId)

	if status := c.Query("status"); status != "" {
		if !utils.IsValidValueOfConstant(status, constants.OrderStatuses) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS, errors.New("unknown status "+status))
		}
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	if err := query.Model(&model.Order{}).Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var pagination model.Pagination
	if limit := c.QueryInt("limit"); limit > 0 {
		pagination.Limit = &limit
	}
	if page := c.QueryInt("page"); page > 0 {
		pagination.Page = &page
	}
	query = utils.ApplyPagination(query, pagination.Limit, pagination.Page)

	var orders []model.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	})
}

// GetKitchenBoard returns the snapshot the board renders before its
// websocket takes over: three lanes, newest first.
func GetKitchenBoard(c *fiber.Ctx) error {
	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var orders []model.Order
	if err := database.DB.
		Preload("Table").
		Preload("Items").
		Preload("Items.MenuItem").
		Where("account_id = ? AND status IN ?", claim.AccountId, []string{constants.ORDER_NEW, constants.ORDER_PREPARING, constants.ORDER_COMPLETED}).
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.PartitionLanes(orders))
}

// UpdateOrderStatus performs one forward lane transition and bumps the
// order version so feed consumers can discard stale merges.
func UpdateOrderStatus(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UpdateOrderStatusInput)
	orderId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var order model.Order
	if err := database.DB.Where("id = ? AND account_id = ?", orderId, claim.AccountId).First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if !helper.CanTransition(order.Status, input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS,
			fmt.Errorf("cannot move order from %s to %s", order.Status, input.Status))
	}

	updates := map[string]interface{}{
		"status":  input.Status,
		"version": gorm.Expr("version + 1"),
	}
	if err := database.DB.Model(&model.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update order", err)
	}

	helper.PublishOrderUpdate(claim.AccountId, order.ID, input.Status, order.Version+1, nil)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderId": order.ID,
		"status":  input.Status,
		"version": order.Version + 1,
	})
}

// MarkOrderPaid settles an order: flips status to Paid, composes the
// receipt, and hands back a WhatsApp deep link keyed on the customer's
// phone. Nothing is dispatched here except the async receipt email.
// If the joined re-read for the receipt fails after the status write,
// the status stays Paid and the error is reported as-is.
func MarkOrderPaid(c *fiber.Ctx) error {
	orderId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	db := database.DB

	var order model.Order
	if err := db.Where("id = ? AND account_id = ?", orderId, claim.AccountId).First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if !helper.CanTransition(order.Status, constants.ORDER_PAID) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS,
			fmt.Errorf("cannot mark order as paid from %s", order.Status))
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":  constants.ORDER_PAID,
		"paid_at": now,
		"version": gorm.Expr("version + 1"),
	}
	if err := db.Model(&model.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to mark order as paid", err)
	}

	helper.PublishOrderUpdate(claim.AccountId, order.ID, constants.ORDER_PAID, order.Version+1, &now)

	var fullOrder model.Order
	if err := db.Preload("Table").Preload("Items").Preload("Items.MenuItem").First(&fullOrder, order.ID).Error; err != nil {
		// Status already persisted; only receipt composition failed.
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Order marked as paid but receipt could not be composed", err)
	}

	restaurantName := ""
	var settings model.AdminSettings
	if err := db.Where("account_id = ?", claim.AccountId).First(&settings).Error; err == nil {
		restaurantName = settings.RestaurantName
	}

	receipt := utils.BuildReceiptText(&fullOrder, restaurantName)
	whatsappUrl := utils.BuildWhatsAppLink(fullOrder.CustomerPhone, receipt)

	if fullOrder.CustomerEmail != "" {
		utils.SendReceiptEmail(fullOrder.CustomerEmail, utils.ReceiptEmailData{
			RestaurantName: restaurantName,
			OrderCode:      fmt.Sprintf("%d", fullOrder.ID),
			TableName:      fullOrder.Table.Name,
			TotalAmount:    fullOrder.TotalAmount,
			ReceiptText:    receipt,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order":       fullOrder,
		"receipt":     receipt,
		"whatsappUrl": whatsappUrl,
	})
}

// GetOrderReceipt returns the printable monospace receipt for the
// kitchen's print action.
func GetOrderReceipt(c *fiber.Ctx) error {
	orderId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var order model.Order
	if err := database.DB.
		Preload("Table").
		Preload("Items").
		Preload("Items.MenuItem").
		Where("id = ? AND account_id = ?", orderId, claim.AccountId).
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	restaurantName := ""
	var settings model.AdminSettings
	if err := database.DB.Where("account_id = ?", claim.AccountId).First(&settings).Error; err == nil {
		restaurantName = settings.RestaurantName
	}

	c.Set("Content-Type", "text/plain; charset=utf-8")
	return c.SendString(utils.BuildReceiptText(&order, restaurantName))
}
