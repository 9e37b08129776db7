package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/forgot-password", handler.ForgotPassword)
	auth.Post("/reset-password", handler.ResetPassword)

	account := v1.Group("/account", logger.New())
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/change-password", middleware.Protected(), validate.ChangePassword(), handler.ChangePassword)

	category := v1.Group("/category", logger.New())
	category.Get("/", middleware.Protected(), handler.GetCategories)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	category.Put("/:categoryId", middleware.Protected(), validate.EditCategory("categoryId"), handler.EditCategory)
	category.Delete("/:categoryId", middleware.Protected(), validate.GetById("categoryId"), handler.DeleteCategory)

	menu := v1.Group("/menu-item", logger.New())
	menu.Get("/", middleware.Protected(), handler.GetMenuItems)
	menu.Post("/", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Put("/:itemId", middleware.Protected(), validate.EditMenuItem("itemId"), handler.EditMenuItem)
	menu.Patch("/:itemId/availability", middleware.Protected(), validate.GetById("itemId"), handler.ToggleAvailability)
	menu.Post("/:itemId/image", middleware.Protected(), validate.GetById("itemId"), handler.UploadMenuItemImage)
	menu.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteMenuItem)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	table := v1.Group("/table", logger.New())
	table.Get("/", middleware.Protected(), handler.GetTables)
	table.Post("/", middleware.Protected(), validate.CreateTable(), handler.CreateTable)
	table.Get("/:tableId/qr", middleware.Protected(), validate.GetById("tableId"), handler.GetTableQR)
	table.Delete("/:tableId", middleware.Protected(), validate.GetById("tableId"), handler.DeleteTable)

	poster := v1.Group("/poster", logger.New())
	poster.Get("/", middleware.Protected(), handler.GetPosters)
	poster.Post("/", middleware.Protected(), validate.CreatePoster(), handler.CreatePoster)
	poster.Put("/:posterId", middleware.Protected(), validate.EditPoster("posterId"), handler.EditPoster)
	poster.Patch("/:posterId/active", middleware.Protected(), validate.GetById("posterId"), handler.TogglePoster)
	poster.Post("/:posterId/image", middleware.Protected(), validate.GetById("posterId"), handler.UploadPosterImage)
	poster.Delete("/:posterId", middleware.Protected(), validate.GetById("posterId"), handler.DeletePoster)

	settings := v1.Group("/settings", logger.New())
	settings.Get("/", middleware.Protected(), handler.GetSettings)
	settings.Put("/", middleware.Protected(), validate.UpdateSettings(), handler.UpdateSettings)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/board", middleware.Protected(), handler.GetKitchenBoard)
	order.Get("/ws", middleware.Protected(), websocket.New(handler.OrderFeedConnection))
	order.Patch("/:orderId/status", middleware.Protected(), validate.UpdateOrderStatus("orderId"), handler.UpdateOrderStatus)
	order.Post("/:orderId/paid", middleware.Protected(), validate.GetById("orderId"), handler.MarkOrderPaid)
	order.Get("/:orderId/receipt", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderReceipt)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetAdminStats)
	statistic.Get("/snapshots", middleware.Protected(), handler.GetRevenueSnapshots)
	statistic.Get("/customers.csv", middleware.Protected(), handler.ExportCustomersCSV)

	// Customer surface: the table token is the only credential
	public := v1.Group("/menu")
	public.Get("/:token", handler.GetMenuByToken)
	public.Post("/:token/order", validate.SubmitOrder(), handler.SubmitOrder)
}
