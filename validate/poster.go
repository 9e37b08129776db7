package validate

import (
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreatePoster() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePosterInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func EditPoster(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditPosterInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}
		c.Locals("input", input)
		return GetById(key)(c)
	}
}
