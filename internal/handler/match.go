package handler

import (
	"net/http"

	"github.com/deppfellow/tradehands/internal/model"
	"github.com/deppfellow/tradehands/internal/repository"
	"github.com/deppfellow/tradehands/internal/server"
	"github.com/deppfellow/tradehands/internal/service"
	"github.com/labstack/echo/v4"
)

// MatchHandler serves /matches.
type MatchHandler struct {
	Handler
	service *service.MatchService
}

func NewMatchHandler(s *server.Server, svc *service.MatchService) *MatchHandler {
	return &MatchHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

func (h *MatchHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, _ *EmptyRequest) ([]model.Match, error) {
		return h.service.List(c.Request().Context())
	}, http.StatusOK, newRequest[EmptyRequest])
}

func (h *MatchHandler) Get() echo.HandlerFunc {
	return HandleLookup(h.Handler, func(c echo.Context, req *IDRequest) (repository.Result[model.Match], error) {
		return h.service.Get(c.Request().Context(), req.ID)
	}, http.StatusOK, newRequest[IDRequest])
}

func (h *MatchHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, func(c echo.Context, req *model.MatchInput) (map[string]int64, error) {
		id, err := h.service.Create(c.Request().Context(), *req)
		if err != nil {
			return nil, err
		}
		return idBody("match_id", id), nil
	}, http.StatusCreated, newRequest[model.MatchInput])
}

func (h *MatchHandler) Delete() echo.HandlerFunc {
	return HandleLookup(h.Handler, func(c echo.Context, req *IDRequest) (repository.Result[map[string]int64], error) {
		result, err := h.service.Delete(c.Request().Context(), req.ID)
		return deletedBody("match_id", result, err)
	}, http.StatusOK, newRequest[IDRequest])
}
