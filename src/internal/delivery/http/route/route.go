package route

import (
	"mission-service/src/internal/delivery/http"
	"mission-service/src/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v2"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	App                    *fiber.App
	MissionController      *http.MissionController
	WalletController       *http.WalletController
	SubscriptionController *http.SubscriptionController
	RatingController       *http.RatingController
	SafetyController       *http.SafetyController
	AuthMiddleware         fiber.Handler
}

func (c *RouteConfig) Setup() {
	c.App.Use(fiberRecover.New())
	c.App.Use(middleware.NewLogger())
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	c.SetupAuthRoute()
}

func (c *RouteConfig) SetupAuthRoute() {
	c.App.Use(c.AuthMiddleware)

	c.App.Post("/missions/v1", c.MissionController.Create)
	c.App.Get("/missions/v1", c.MissionController.List)
	c.App.Get("/missions/v1/mine", c.MissionController.Mine)
	c.App.Get("/missions/v1/nearby", c.MissionController.Nearby)
	c.App.Get("/missions/v1/upcoming", c.MissionController.Upcoming)
	c.App.Get("/missions/v1/courier/stats", c.MissionController.CourierStats)
	c.App.Get("/missions/v1/:id", c.MissionController.Get)
	c.App.Post("/missions/v1/:id/accept", c.MissionController.Accept)
	c.App.Post("/missions/v1/:id/start", c.MissionController.Start)
	c.App.Post("/missions/v1/:id/complete", c.MissionController.Complete)
	c.App.Post("/missions/v1/:id/cancel", c.MissionController.Cancel)

	c.App.Get("/wallet/v1", c.WalletController.Get)
	c.App.Get("/wallet/v1/stats", c.WalletController.Stats)
	c.App.Get("/wallet/v1/transactions", c.WalletController.Transactions)
	c.App.Post("/wallet/v1/earnings", c.WalletController.AddEarning)
	c.App.Post("/wallet/v1/withdrawals", c.WalletController.Withdraw)
	c.App.Get("/wallet/v1/withdrawals", c.WalletController.Withdrawals)
	c.App.Post("/wallet/v1/withdrawals/:id/settle", c.WalletController.SettleWithdrawal)

	c.App.Get("/subscriptions/v1/plans", c.SubscriptionController.Plans)
	c.App.Get("/subscriptions/v1", c.SubscriptionController.Get)
	c.App.Post("/subscriptions/v1", c.SubscriptionController.Subscribe)
	c.App.Post("/subscriptions/v1/cancel", c.SubscriptionController.Cancel)
	c.App.Post("/subscriptions/v1/auto-renew", c.SubscriptionController.ToggleAutoRenew)

	c.App.Post("/ratings/v1", c.RatingController.Create)
	c.App.Get("/ratings/v1/can-rate", c.RatingController.CanRate)
	c.App.Get("/ratings/v1/top", c.RatingController.TopRated)
	c.App.Get("/ratings/v1/stats/:userId", c.RatingController.Stats)

	c.App.Post("/safety/v1/reports", c.SafetyController.CreateReport)
	c.App.Get("/safety/v1/reports", c.SafetyController.ListReports)
	c.App.Get("/safety/v1/reports/:id", c.SafetyController.GetReport)
	c.App.Patch("/safety/v1/reports/:id/status", c.SafetyController.UpdateReportStatus)
	c.App.Get("/safety/v1/score/:userId", c.SafetyController.SafetyScore)
	c.App.Get("/safety/v1/safe/:userId", c.SafetyController.SafeToInteract)
}
