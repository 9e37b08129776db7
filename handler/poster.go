package handler

import (
	"context"
	"errors"
	"fmt"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetPosters(c *fiber.Ctx) error {
	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var posters []model.Poster
	if err := database.DB.
		Preload("MenuItem").
		Where("account_id = ?", claim.AccountId).
		Order("sort_order asc").
		Find(&posters).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, posters)
}

func CreatePoster(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreatePosterInput)

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	if input.MenuItemId != nil {
		var item model.MenuItem
		if err := database.DB.Where("id = ? AND account_id = ?", *input.MenuItemId, claim.AccountId).First(&item).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Linked menu item not found", err)
		}
	}

	var poster model.Poster
	copier.Copy(&poster, &input)
	poster.AccountId = claim.AccountId
	poster.IsActive = utils.Ptr(true)

	if err := database.DB.Create(&poster).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create poster", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, poster)
}

func EditPoster(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditPosterInput)
	posterId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var poster model.Poster
	if err := database.DB.Where("id = ? AND account_id = ?", posterId, claim.AccountId).First(&poster).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Poster not found", err)
	}

	if input.MenuItemId != nil {
		var item model.MenuItem
		if err := database.DB.Where("id = ? AND account_id = ?", *input.MenuItemId, claim.AccountId).First(&item).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Linked menu item not found", err)
		}
	}

	copier.CopyWithOption(&poster, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&poster).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update poster", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, poster)
}

func TogglePoster(c *fiber.Ctx) error {
	posterId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var poster model.Poster
	if err := database.DB.Where("id = ? AND account_id = ?", posterId, claim.AccountId).First(&poster).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Poster not found", err)
	}

	active := poster.IsActive == nil || *poster.IsActive
	poster.IsActive = utils.Ptr(!active)

	if err := database.DB.Save(&poster).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to toggle poster", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, poster)
}

func DeletePoster(c *fiber.Ctx) error {
	posterId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	result := database.DB.Where("id = ? AND account_id = ?", posterId, claim.AccountId).Delete(&model.Poster{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete poster", result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Poster not found", errors.New("no such poster"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "poster deleted"})
}

func UploadPosterImage(c *fiber.Ctx) error {
	posterId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var poster model.Poster
	if err := database.DB.Where("id = ? AND account_id = ?", posterId, claim.AccountId).First(&poster).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Poster not found", err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "No image file provided", err)
	}

	reader, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot read uploaded file", err)
	}
	defer reader.Close()

	cld := helper.InitCloudinary()
	result, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
		Folder:       "posters",
		PublicID:     fmt.Sprintf("poster_%d_%d", poster.ID, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	poster.ImageUrl = result.SecureURL
	if err := database.DB.Save(&poster).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save image url", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, poster)
}
