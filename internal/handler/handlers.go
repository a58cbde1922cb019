package handler

import (
	"github.com/deppfellow/tradehands/internal/server"
	"github.com/deppfellow/tradehands/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Root     *RootHandler
	Users    *UserHandler
	Buyers   *BuyerHandler
	Listings *ListingHandler
	Matches  *MatchHandler
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Root:     NewRootHandler(s),
		Users:    NewUserHandler(s, services.Users),
		Buyers:   NewBuyerHandler(s, services.Buyers),
		Listings: NewListingHandler(s, services.Listings),
		Matches:  NewMatchHandler(s, services.Matches),
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
	}
}
