package handler

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetCategories(c *fiber.Ctx) error {
	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var categories []model.Category
	if err := database.DB.
		Where("account_id = ?", claim.AccountId).
		Order("sort_order asc").
		Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateCategoryInput)

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	category := model.Category{
		AccountId: claim.AccountId,
		Name:      input.Name,
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create category", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func EditCategory(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditCategoryInput)
	categoryId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var category model.Category
	if err := database.DB.Where("id = ? AND account_id = ?", categoryId, claim.AccountId).First(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	if err := database.DB.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update category", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

// deleteCategoryCascade removes a category's menu items, then the
// category itself. Items go first so a mid-transaction failure rolls
// back with nothing orphaned.
func deleteCategoryCascade(tx *gorm.DB, accountId uint, category *model.Category) error {
	if err := tx.Where("category_id = ? AND account_id = ?", category.ID, accountId).Delete(&model.MenuItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(category).Error
}

// DeleteCategory removes the category and every menu item inside it.
// Both deletes run in one transaction so no orphaned items remain.
func DeleteCategory(c *fiber.Ctx) error {
	categoryId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var category model.Category
	if err := database.DB.Where("id = ? AND account_id = ?", categoryId, claim.AccountId).First(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return deleteCategoryCascade(tx, claim.AccountId, &category)
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete category", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "category deleted"})
}
