package service

import (
	"github.com/deppfellow/tradehands/internal/model"
	"github.com/deppfellow/tradehands/internal/repository"
)

type (
	UserStore    = Store[model.User, model.UserInput]
	BuyerStore   = Store[model.BuyerProfile, model.BuyerInput]
	ListingStore = Store[model.BusinessListing, model.ListingInput]
	MatchStore   = Store[model.Match, model.MatchInput]

	UserService    = EntityService[model.User, model.UserInput]
	BuyerService   = EntityService[model.BuyerProfile, model.BuyerInput]
	ListingService = EntityService[model.BusinessListing, model.ListingInput]
	MatchService   = EntityService[model.Match, model.MatchInput]
)

// Stores are the data access implementations the services run against.
type Stores struct {
	Users    UserStore
	Buyers   BuyerStore
	Listings ListingStore
	Matches  MatchStore
}

type Services struct {
	Users    *UserService
	Buyers   *BuyerService
	Listings *ListingService
	Matches  *MatchService
}

// NewServices builds the services over the Postgres repositories.
func NewServices(repos *repository.Repositories) *Services {
	return NewServicesWithStores(Stores{
		Users:    repos.Users,
		Buyers:   repos.Buyers,
		Listings: repos.Listings,
		Matches:  repos.Matches,
	})
}

// NewServicesWithStores builds the services over arbitrary stores.
func NewServicesWithStores(stores Stores) *Services {
	return &Services{
		Users:    newEntityService("user", stores.Users),
		Buyers:   newEntityService("buyer_profile", stores.Buyers),
		Listings: newEntityService("business_listing", stores.Listings),
		Matches:  newEntityService("match", stores.Matches),
	}
}
