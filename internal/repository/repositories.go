package repository

import (
	"github.com/deppfellow/tradehands/internal/server"
)

// Repositories groups the per-entity repositories. They share the server's
// connection pool.
type Repositories struct {
	Users    *UserRepository
	Buyers   *BuyerRepository
	Listings *ListingRepository
	Matches  *MatchRepository
}

// NewRepositories builds the repositories over the server's database pool.
func NewRepositories(s *server.Server) *Repositories {
	return newRepositories(s.DB.Pool)
}

func newRepositories(db DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(db),
		Buyers:   NewBuyerRepository(db),
		Listings: NewListingRepository(db),
		Matches:  NewMatchRepository(db),
	}
}
