// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"portal/internal/delivery/http/middleware"
	"portal/internal/delivery/http/router/handler"
	"portal/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Metrics             *metrics.Metrics
	AuthMiddleware      *middleware.AuthMiddleware
	ContentHandler      *handler.ContentHandler
	ReviewHandler       *handler.ReviewHandler
	CouponHandler       *handler.CouponHandler
	AccountHandler      *handler.AccountHandler
	TicketHandler       *handler.TicketHandler
	OrderHandler        *handler.OrderHandler
	SubscriptionHandler *handler.SubscriptionHandler
	CustomerHandler     *handler.CustomerHandler
	CampaignHandler     *handler.CampaignHandler
	TeamHandler         *handler.TeamHandler
	DashboardHandler    *handler.DashboardHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
// Staff authorization is decided by the usecases, so the admin group only
// requires a verified session.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.Metrics.Handler()))

	api := e.Group("/api/v1")

	// Storefront
	{
		api.GET("/pages/:slug", r.ContentHandler.GetPage)
		api.GET("/guides", r.ContentHandler.ListGuides)
		api.GET("/plans", r.ContentHandler.ListPlans)
		api.GET("/reviews", r.ReviewHandler.ListApproved)
		api.POST("/coupons/validate", r.CouponHandler.Validate)
	}

	account := api.Group("/account", r.AuthMiddleware.Authenticate)
	{
		account.GET("/profile", r.AccountHandler.GetProfile)
		account.PATCH("/profile", r.AccountHandler.UpdateProfile)
		account.GET("/orders", r.AccountHandler.ListOrders)
		account.GET("/subscriptions", r.AccountHandler.ListSubscriptions)
		account.GET("/subscriptions/:id/qr", r.AccountHandler.PlaylistQR)
		account.POST("/reviews", r.ReviewHandler.Submit)
		account.POST("/team-invites/accept", r.TeamHandler.AcceptInvite)

		account.GET("/tickets", r.TicketHandler.ListMine)
		account.POST("/tickets", r.TicketHandler.Open)
		account.GET("/tickets/:id", r.TicketHandler.GetMine)
		account.POST("/tickets/:id/messages", r.TicketHandler.ReplyMine)
	}

	admin := api.Group("/admin", r.AuthMiddleware.Authenticate)
	{
		admin.GET("/dashboard", r.DashboardHandler.Get)

		admin.GET("/orders", r.OrderHandler.List)
		admin.GET("/orders/:id", r.OrderHandler.Get)
		admin.PATCH("/orders/:id/status", r.OrderHandler.UpdateStatus)
		admin.POST("/orders/:id/notes", r.OrderHandler.AddNote)
		admin.DELETE("/orders/:id", r.OrderHandler.Delete)
		admin.GET("/orders/:id/subscription", r.SubscriptionHandler.GetByOrder)

		admin.GET("/subscriptions", r.SubscriptionHandler.List)
		admin.POST("/subscriptions", r.SubscriptionHandler.Create)
		admin.PATCH("/subscriptions/:id", r.SubscriptionHandler.Update)
		admin.POST("/subscriptions/:id/extend", r.SubscriptionHandler.Extend)
		admin.POST("/subscriptions/:id/send-credentials", r.SubscriptionHandler.SendCredentials)

		admin.GET("/customers", r.CustomerHandler.List)
		admin.GET("/customers/:id", r.CustomerHandler.Get)
		admin.PATCH("/customers/:id", r.CustomerHandler.Update)
		admin.DELETE("/customers/:id", r.CustomerHandler.Delete)

		admin.GET("/tickets", r.TicketHandler.List)
		admin.GET("/tickets/:id", r.TicketHandler.Get)
		admin.POST("/tickets/:id/messages", r.TicketHandler.Reply)
		admin.PATCH("/tickets/:id", r.TicketHandler.Update)

		admin.GET("/products", r.ContentHandler.ListProducts)
		admin.POST("/products", r.ContentHandler.CreateProduct)
		admin.PATCH("/products/:id", r.ContentHandler.UpdateProduct)
		admin.POST("/products/:id/image", r.ContentHandler.UploadProductImage)

		admin.GET("/reviews", r.ReviewHandler.List)
		admin.PATCH("/reviews/:id", r.ReviewHandler.Moderate)
		admin.DELETE("/reviews/:id", r.ReviewHandler.Delete)

		admin.GET("/coupons", r.CouponHandler.List)
		admin.POST("/coupons", r.CouponHandler.Create)
		admin.PATCH("/coupons/:id", r.CouponHandler.UpdateStatus)
		admin.DELETE("/coupons/:id", r.CouponHandler.Delete)

		admin.GET("/email-templates", r.CampaignHandler.ListTemplates)
		admin.POST("/email-templates", r.CampaignHandler.CreateTemplate)
		admin.PUT("/email-templates/:id", r.CampaignHandler.UpdateTemplate)
		admin.DELETE("/email-templates/:id", r.CampaignHandler.DeleteTemplate)
		admin.GET("/campaigns", r.CampaignHandler.List)
		admin.POST("/campaigns", r.CampaignHandler.Create)
		admin.POST("/campaigns/:id/send", r.CampaignHandler.Send)
		admin.POST("/campaigns/:id/resume", r.CampaignHandler.Resume)
		admin.POST("/campaigns/:id/test", r.CampaignHandler.SendTest)

		admin.GET("/team", r.TeamHandler.List)
		admin.POST("/team/invites", r.TeamHandler.Invite)
		admin.PATCH("/team/:id", r.TeamHandler.UpdateRole)
		admin.DELETE("/team/:id", r.TeamHandler.Remove)
		admin.GET("/team/logs", r.TeamHandler.Logs)
	}
}
