package validate

import (
	"errors"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func UpdateSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateSettingsInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}
		if input.RestaurantName == nil && input.AIEnabled == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nothing to update", errors.New("empty settings input"))
		}
		if input.RestaurantName != nil && *input.RestaurantName == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Restaurant name must not be empty", errors.New("blank restaurant name"))
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AdminChangePassword
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}
		if input.CurrentPassword == "" || input.NewPassword == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Password fields are required", errors.New("missing password"))
		}
		if input.NewPassword != input.RepeatPassword {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Passwords do not match", errors.New("repeat mismatch"))
		}
		if len(input.NewPassword) < 6 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Password must be at least 6 characters", errors.New("password too short"))
		}
		c.Locals("input", input)
		return c.Next()
	}
}
