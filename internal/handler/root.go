package handler

import (
	"github.com/deppfellow/tradehands/internal/server"
	"github.com/labstack/echo/v4"
)

const greeting = "Hello, TradeHands!"

type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{Handler: NewHandler(s)}
}

// Greet answers GET / with a plain text greeting.
func (h *RootHandler) Greet() echo.HandlerFunc {
	return HandleText(h.Handler, func(c echo.Context, _ *EmptyRequest) (string, error) {
		return greeting, nil
	}, newRequest[EmptyRequest])
}
