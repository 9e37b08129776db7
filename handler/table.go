package handler

import (
	"errors"
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetTables(c *fiber.Ctx) error {
	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var tables []model.Table
	if err := database.DB.
		Where("account_id = ?", claim.AccountId).
		Order("created_at asc").
		Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	for i := range tables {
		tables[i].QrUrl = helper.BuildTableURL(tables[i].Token)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tables)
}

func CreateTable(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTableInput)

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	table := model.Table{
		AccountId: claim.AccountId,
		Name:      input.Name,
		Token:     uuid.NewString(),
	}

	if err := database.DB.Create(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create table", err)
	}

	table.QrUrl = helper.BuildTableURL(table.Token)
	return utils.SuccessResponse(c, fiber.StatusCreated, table)
}

func DeleteTable(c *fiber.Ctx) error {
	tableId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	result := database.DB.Where("id = ? AND account_id = ?", tableId, claim.AccountId).Delete(&model.Table{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete table", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, errors.New("no such table"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "table deleted"})
}

// GetTableQR streams the table's menu URL as a PNG QR code, ready for
// printing.
func GetTableQR(c *fiber.Ctx) error {
	tableId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var table model.Table
	if err := database.DB.Where("id = ? AND account_id = ?", tableId, claim.AccountId).First(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TABLE_NOT_FOUND, err)
	}

	size := c.QueryInt("size", 400)
	if size < 100 || size > 1000 {
		size = 400
	}

	qrBytes, err := utils.GenerateQRCode(helper.BuildTableURL(table.Token), size)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to render QR code", err)
	}

	c.Set("Content-Type", "image/png")
	c.Set("Content-Disposition", fmt.Sprintf("inline; filename=table_%d_qr.png", table.ID))
	return c.Send(qrBytes)
}
