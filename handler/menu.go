package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"sort"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetMenuItems(c *fiber.Ctx) error {
	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	query := database.DB.Where("account_id = ?", claim.AccountId)

	if categoryId := c.QueryInt("categoryId"); categoryId > 0 {
		query = query.Where("category_id = ?", categoryId)
	}
	if searchKey := c.Query("searchKey"); searchKey != "" {
		like := "%" + strings.ToLower(searchKey) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var items []model.MenuItem
	if err := query.Order("name asc").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func CreateMenuItem(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateMenuItemInput)

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var category model.Category
	if err := database.DB.Where("id = ? AND account_id = ?", input.CategoryId, claim.AccountId).First(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
	}

	var item model.MenuItem
	copier.Copy(&item, &input)
	item.AccountId = claim.AccountId
	item.Slug = helper.GenerateUniqueMenuItemSlug(database.DB, input.Name)
	item.IsAvailable = utils.Ptr(true)

	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create menu item", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func EditMenuItem(c *fiber.Ctx) error {
	input := c.Locals("input").(model.EditMenuItemInput)
	itemId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var item model.MenuItem
	if err := database.DB.Where("id = ? AND account_id = ?", itemId, claim.AccountId).First(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	if input.CategoryId != nil {
		var category model.Category
		if err := database.DB.Where("id = ? AND account_id = ?", *input.CategoryId, claim.AccountId).First(&category).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Category not found", err)
		}
	}

	// nil pointers in the input leave existing fields untouched
	copier.CopyWithOption(&item, &input, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update menu item", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// ToggleAvailability flips the customer-facing visibility flag without
// touching the record itself.
func ToggleAvailability(c *fiber.Ctx) error {
	itemId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var item model.MenuItem
	if err := database.DB.Where("id = ? AND account_id = ?", itemId, claim.AccountId).First(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
	}

	available := item.IsAvailable == nil || *item.IsAvailable
	item.IsAvailable = utils.Ptr(!available)

	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to toggle availability", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteMenuItem(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	if err := database.DB.Where("id IN ? AND account_id = ?", input.IDs, claim.AccountId).Delete(&model.MenuItem{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete menu items", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "menu items deleted"})
}

// UploadMenuItemImage uploads the multipart "image" file to cloudinary
// and stores the secure URL on the item.
func UploadMenuItemImage(c *fiber.Ctx) error {
	itemId := uint(c.Locals("inputId").(int))

	claim, account := helper.GetAccountFromToken(c)
	if account == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Account not found", errors.New("unknown account"))
	}

	var item model.MenuItem
	if err := database.DB.Where("id = ? AND account_id = ?", itemId, claim.AccountId).First(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Menu item not found", err)
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
		Folder:       "menu-images",
		PublicID:     fmt.Sprintf("item_%d_%d", item.ID, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	item.ImageUrl = &result.SecureURL
	if err := database.DB.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save image url", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// GenerateSignature lets the admin frontend upload directly to
// cloudinary with a server-side signature.
func GenerateSignature(c *fiber.Ctx) error {
	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid signature params", err)
	}

	timestamp := time.Now().Unix()
	timestampStr := fmt.Sprintf("%d", timestamp)

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = timestampStr

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Raw values, no URL encoding
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}
