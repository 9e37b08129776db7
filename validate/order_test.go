package validate

import (
	"io"
	"net/http/httptest"
	"restaurant_manager/constants"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(raw)
}

func TestSubmitOrderRejectsEmptyCart(t *testing.T) {
	app := fiber.New()
	handlerRan := false
	app.Post("/order", SubmitOrder(), func(c *fiber.Ctx) error {
		handlerRan = true
		return c.SendStatus(fiber.StatusCreated)
	})

	status, body := postJSON(t, app, "/order", `{"items":[],"customerName":"Ana"}`)

	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", status, fiber.StatusBadRequest)
	}
	if !strings.Contains(body, constants.EMPTY_CART) {
		t.Errorf("body %q does not carry %q", body, constants.EMPTY_CART)
	}
	if handlerRan {
		t.Error("handler ran for an empty cart")
	}
}

func TestSubmitOrderRejectsMissingItems(t *testing.T) {
	app := fiber.New()
	handlerRan := false
	app.Post("/order", SubmitOrder(), func(c *fiber.Ctx) error {
		handlerRan = true
		return c.SendStatus(fiber.StatusCreated)
	})

	status, body := postJSON(t, app, "/order", `{"customerName":"Ana"}`)

	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", status, fiber.StatusBadRequest)
	}
	if !strings.Contains(body, constants.EMPTY_CART) {
		t.Errorf("body %q does not carry %q", body, constants.EMPTY_CART)
	}
	if handlerRan {
		t.Error("handler ran without cart items")
	}
}

func TestSubmitOrderPassesValidCart(t *testing.T) {
	app := fiber.New()
	handlerRan := false
	app.Post("/order", SubmitOrder(), func(c *fiber.Ctx) error {
		handlerRan = true
		return c.SendStatus(fiber.StatusCreated)
	})

	status, _ := postJSON(t, app, "/order",
		`{"items":[{"menuItemId":3,"quantity":2}],"customerName":"Ana"}`)

	if status != fiber.StatusCreated {
		t.Errorf("status = %d, want %d", status, fiber.StatusCreated)
	}
	if !handlerRan {
		t.Error("handler did not run for a valid cart")
	}
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	app := fiber.New()
	handlerRan := false
	app.Patch("/order/:orderId/status", UpdateOrderStatus("orderId"), func(c *fiber.Ctx) error {
		handlerRan = true
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("PATCH", "/order/7/status", strings.NewReader(`{"status":"Cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", resp.StatusCode, fiber.StatusBadRequest)
	}
	if !strings.Contains(string(raw), constants.INVALID_STATUS) {
		t.Errorf("body %q does not carry %q", raw, constants.INVALID_STATUS)
	}
	if handlerRan {
		t.Error("handler ran for an unknown status")
	}
}
