package validate

import (
	"errors"
	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func SubmitOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SubmitOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}

		// Empty cart is rejected before anything touches the store.
		if len(input.Items) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.EMPTY_CART, errors.New("cart has no items"))
		}

		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateOrderStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid body", err)
		}
		if err := validate.Struct(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
		}
		if !utils.IsValidValueOfConstant(input.Status, constants.OrderStatuses) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_STATUS, errors.New("unknown status "+input.Status))
		}
		c.Locals("input", input)
		return GetById(key)(c)
	}
}
