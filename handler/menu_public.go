package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetMenuByToken is the customer entry point. The table token is the
// only credential; every read below is filtered by the table's owner
// so one tenant's menu never leaks into another's QR code.
func GetMenuByToken(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing table token", errors.New("empty token"))
	}

	db := database.DB

	var table model.Table
	if err := db.Where("token = ?", token).First(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	var categories []model.Category
	if err := db.Where("account_id = ?", table.AccountId).Order("sort_order asc").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Customers only ever see available items; the records themselves
	// stay in place when availability is toggled off.
	var items []model.MenuItem
	if err := db.Where("account_id = ? AND is_available = ?", table.AccountId, true).Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var posters []model.Poster
	if err := db.Where("account_id = ? AND is_active = ?", table.AccountId, true).Order("sort_order asc").Find(&posters).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var settings model.AdminSettings
	if err := db.Where("account_id = ?", table.AccountId).First(&settings).Error; err != nil {
		settings = model.AdminSettings{AccountId: table.AccountId, AIEnabled: utils.Ptr(true)}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"table":          table,
		"restaurantName": settings.RestaurantName,
		"aiEnabled":      settings.AIEnabled,
		"categories":     categories,
		"items":          items,
		"posters":        posters,
	})
}
