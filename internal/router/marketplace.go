package router

import (
	"github.com/deppfellow/tradehands/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerMarketplaceRoutes(r *echo.Echo, h *handler.Handlers) {
	users := r.Group("/users")
	users.GET("", h.Users.List())
	users.POST("", h.Users.Create())
	users.GET("/:id", h.Users.Get())
	users.DELETE("/:id", h.Users.Delete())

	buyers := r.Group("/buyers")
	buyers.GET("", h.Buyers.List())
	buyers.POST("", h.Buyers.Create())
	buyers.GET("/:id", h.Buyers.Get())
	buyers.DELETE("/:id", h.Buyers.Delete())

	listings := r.Group("/listings")
	listings.GET("", h.Listings.List())
	listings.POST("", h.Listings.Create())
	listings.GET("/:id", h.Listings.Get())
	listings.DELETE("/:id", h.Listings.Delete())

	matches := r.Group("/matches")
	matches.GET("", h.Matches.List())
	matches.POST("", h.Matches.Create())
	matches.GET("/:id", h.Matches.Get())
	matches.DELETE("/:id", h.Matches.Delete())
}
