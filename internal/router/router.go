// Package router builds the echo instance: global middleware, error
// handler and the route table.
package router

import (
	"github.com/deppfellow/tradehands/internal/handler"
	"github.com/deppfellow/tradehands/internal/middleware"
	"github.com/deppfellow/tradehands/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Recover wraps every middleware registered after it, so their panics
	// also end in the global error handler.
	router.Use(
		middlewares.Tracing.NewRelicMiddleware(),
		middleware.RequestID(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.Global.Recover(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
	)

	registerSystemRoutes(router, h)
	registerMarketplaceRoutes(router, h)

	return router
}
