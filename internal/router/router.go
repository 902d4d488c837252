// Package router wires handlers, auth and caching onto the Echo instance.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-front-desk/internal/handler"
	"github.com/iliyamo/hotel-front-desk/internal/middleware"
	"github.com/iliyamo/hotel-front-desk/internal/model"
)

// Deps collects everything the route table needs. Cache may be a no-op
// middleware when Redis is not configured.
type Deps struct {
	JWTSecret string
	Cache     echo.MiddlewareFunc

	Auth         *handler.AuthHandler
	Rooms        *handler.RoomHandler
	Guests       *handler.GuestHandler
	Reservations *handler.ReservationHandler
	Invoices     *handler.InvoiceHandler
	Billing      *handler.BillingHandler
	Settings     *handler.SettingsHandler
	Dashboard    *handler.DashboardHandler
	Reports      *handler.ReportsHandler
}

// Register declares the full route table. Auth endpoints and the health
// check are public; everything else sits behind JWT auth with both staff
// roles accepted, and destructive or configuration routes require MANAGER.
// Collection GETs run through the response cache.
func Register(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)

	auth := e.Group("/api/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/refresh", d.Auth.Refresh)
	auth.POST("/logout", d.Auth.Logout)

	api := e.Group("/api")
	api.Use(middleware.JWTAuth(d.JWTSecret))
	api.Use(middleware.RequireRole(model.RoleManager, model.RoleReceptionist))

	api.GET("/me", d.Auth.Me)
	// Logout behind auth revokes every session of the caller.
	api.POST("/logout", d.Auth.Logout)

	cache := d.Cache
	if cache == nil {
		cache = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	manager := middleware.RequireRole(model.RoleManager)

	// Rooms
	api.GET("/rooms", d.Rooms.List, cache)
	api.POST("/rooms", d.Rooms.Create)
	api.PUT("/rooms/:id", d.Rooms.Update)
	api.DELETE("/rooms/:id", d.Rooms.Delete, manager)

	// Guests
	api.GET("/guests", d.Guests.List, cache)
	api.GET("/guests/:id", d.Guests.Get)
	api.POST("/guests", d.Guests.Create)
	api.GET("/guests/:id/stats", d.Guests.Stats)

	// Reservations
	api.GET("/reservations", d.Reservations.List, cache)
	api.POST("/reservations", d.Reservations.Create)
	api.PATCH("/reservations/:id", d.Reservations.UpdateStatus)

	// Invoices and billing
	api.GET("/invoices", d.Invoices.List, cache)
	api.POST("/invoices", d.Invoices.Create)
	api.PATCH("/invoices/:id", d.Invoices.UpdateStatus)
	api.POST("/reservations/:id/invoices/down-payment", d.Billing.DownPayment)
	api.POST("/reservations/:id/payments/full", d.Billing.FullPayment)
	api.GET("/invoices/:id/print", d.Billing.Print)

	// Settings
	api.GET("/settings", d.Settings.Get, cache)
	api.PUT("/settings", d.Settings.Put, manager)

	// Dashboard reads
	api.GET("/availability", d.Dashboard.Availability, cache)
	api.GET("/loyalty", d.Dashboard.Loyalty, cache)
	api.GET("/notifications", d.Dashboard.Notifications)

	// Reports
	api.GET("/reports/booking-sources", d.Reports.BookingSources, cache)
	api.GET("/rates/quote", d.Reports.QuoteRate)
}
