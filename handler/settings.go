package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm/clause"
)

func GetSettings(c *fiber.Ctx) error {
	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var settings model.AdminSettings
	if err := database.DB.Where("account_id = ?", claim.AccountId).First(&settings).Error; err != nil {
		// Singleton row may not exist yet; answer with defaults.
		settings = model.AdminSettings{AccountId: claim.AccountId, AIEnabled: utils.Ptr(true)}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}

// UpdateSettings upserts the per-tenant singleton keyed on account_id,
// so a missing row and an existing row take the same path.
func UpdateSettings(c *fiber.Ctx) error {
	input := c.Locals("input").(model.UpdateSettingsInput)

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	settings := model.AdminSettings{AccountId: claim.AccountId}
	updateColumns := []string{}
	if input.RestaurantName != nil {
		settings.RestaurantName = *input.RestaurantName
		updateColumns = append(updateColumns, "restaurant_name")
	}
	if input.AIEnabled != nil {
		settings.AIEnabled = input.AIEnabled
		updateColumns = append(updateColumns, "ai_enabled")
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns(updateColumns),
	}).Create(&settings).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var saved model.AdminSettings
	database.DB.Where("account_id = ?", claim.AccountId).First(&saved)

	return utils.SuccessResponse(c, fiber.StatusOK, saved)
}
