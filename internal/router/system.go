package router

import (
	"github.com/deppfellow/tradehands/internal/handler"
	"github.com/deppfellow/tradehands/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not part of the
// marketplace: greeting, health, docs and the static docs assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Root.Greet())
	r.GET("/status", h.Health.CheckHealth)
	r.StaticFS("/static", static.Files)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
