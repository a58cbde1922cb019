package handler

import (
	"net/http"

	"github.com/deppfellow/tradehands/internal/model"
	"github.com/deppfellow/tradehands/internal/repository"
	"github.com/deppfellow/tradehands/internal/server"
	"github.com/deppfellow/tradehands/internal/service"
	"github.com/labstack/echo/v4"
)

// BuyerHandler serves /buyers.
type BuyerHandler struct {
	Handler
	service *service.BuyerService
}

func NewBuyerHandler(s *server.Server, svc *service.BuyerService) *BuyerHandler {
	return &BuyerHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *BuyerHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.BuyerProfile, error) {
		return h.service.List(c.Request().Context())
	}, http.StatusOK, newRequest[EmptyRequest])
}

func (h *BuyerHandler) Get() echo.HandlerFunc {
	return HandleLookup(h.Handler, func(c echo.Context, req *IDRequest) (repository.Result[model.BuyerProfile], error) {
		return h.service.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, newRequest[IDRequest])
}

func (h *BuyerHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.BuyerInput) (map[string]int64, error) {
		id, err := h.service.Create(c.Request().Context(), *req)
		if err != nil {
			return nil, err
		}
		return idBody("buyer_id", id), nil
	}, http.StatusCreated, newRequest[model.BuyerInput])
}

func (h *BuyerHandler) Delete() echo.HandlerFunc {
	return HandleLookup(h.Handler, func(c echo.Context, req *IDRequest) (repository.Result[map[string]int64], error) {
		result, err := h.service.Delete(c.Request().Context(), req.ID)
		return deletedBody("buyer_id", result, err)
	}, http.StatusOK, newRequest[IDRequest])
}
