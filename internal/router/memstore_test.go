package router

import (
	"context"
	"sync"
	"time"

	"github.com/deppfellow/tradehands/internal/model"
	"github.com/deppfellow/tradehands/internal/repository"
	"github.com/deppfellow/tradehands/internal/service"
	"github.com/jackc/pgx/v5/pgconn"
)

// memStore is an in-memory Store. Rows keep insertion order.
type memStore[T, In any] struct {
	mu    *sync.Mutex
	next  int64
	rows  []T
	idOf  func(T) int64
	build func(id int64, in In) T

	// check rejects inputs that reference missing rows.
	check func(in In) error
	// cascade deletes dependents of id and reports the counts.
	cascade func(id int64) map[string]int64

	fail error
}

func (s *memStore[T, In]) List(context.Context) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return nil, s.fail
	}
	return append([]T{}, s.rows...), nil
}

func (s *memStore[T, In]) Get(_ context.Context, id int64) (repository.Result[T], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return repository.Absent[T](), s.fail
	}
	for _, row := range s.rows {
		if s.idOf(row) == id {
			return repository.Found(row), nil
		}
	}
	return repository.Absent[T](), nil
}

func (s *memStore[T, In]) Create(_ context.Context, in In) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return 0, s.fail
	}
	if s.check != nil {
		if err := s.check(in); err != nil {
			return 0, err
		}
	}
	s.next++
	s.rows = append(s.rows, s.build(s.next, in))
	return s.next, nil
}

func (s *memStore[T, In]) Delete(_ context.Context, id int64) (repository.Result[repository.Deletion], error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return repository.Absent[repository.Deletion](), s.fail
	}
	if !s.existsLocked(id) {
		return repository.Absent[repository.Deletion](), nil
	}

	cascaded := map[string]int64{}
	if s.cascade != nil {
		cascaded = s.cascade(id)
	}
	s.removeLocked(func(row T) bool { return s.idOf(row) == id })
	return repository.Found(repository.Deletion{ID: id, Cascaded: cascaded}), nil
}

func (s *memStore[T, In]) existsLocked(id int64) bool {
	for _, row := range s.rows {
		if s.idOf(row) == id {
			return true
		}
	}
	return false
}

func (s *memStore[T, In]) removeLocked(match func(T) bool) int64 {
	kept := s.rows[:0]
	var removed int64
	for _, row := range s.rows {
		if match(row) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	s.rows = kept
	return removed
}

// memDB wires the four stores together with the same cascade rules as the
// Postgres repositories. All stores share one mutex.
type memDB struct {
	users    *memStore[model.User, model.UserInput]
	buyers   *memStore[model.BuyerProfile, model.BuyerInput]
	listings *memStore[model.BusinessListing, model.ListingInput]
	matches  *memStore[model.Match, model.MatchInput]
}

func missingReference() error {
	return &pgconn.PgError{Code: "23503", Message: `insert violates foreign key constraint "fk_secret_internal"`}
}

func newMemDB() *memDB {
	mu := &sync.Mutex{}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	db := &memDB{}

	db.users = &memStore[model.User, model.UserInput]{
		mu:   mu,
		idOf: func(u model.User) int64 { return u.ID },
		build: func(id int64, in model.UserInput) model.User {
			return model.User{ID: id, UserInput: in, CreatedAt: now}
		},
		cascade: func(id int64) map[string]int64 {
			return map[string]int64{
				"BuyerProfile":    db.buyers.removeLocked(func(b model.BuyerProfile) bool { return b.UserID == id }),
				"BusinessListing": db.listings.removeLocked(func(l model.BusinessListing) bool { return l.OwnerID == id }),
			}
		},
	}

	db.buyers = &memStore[model.BuyerProfile, model.BuyerInput]{
		mu:   mu,
		idOf: func(b model.BuyerProfile) int64 { return b.ID },
		build: func(id int64, in model.BuyerInput) model.BuyerProfile {
			if in.Industries == nil {
				in.Industries = []string{}
			}
			return model.BuyerProfile{ID: id, BuyerInput: in, CreatedAt: now}
		},
		check: func(in model.BuyerInput) error {
			if !db.users.existsLocked(in.UserID) {
				return missingReference()
			}
			return nil
		},
		cascade: func(id int64) map[string]int64 {
			return map[string]int64{
				"Match": db.matches.removeLocked(func(m model.Match) bool { return m.BuyerID == id }),
			}
		},
	}

	db.listings = &memStore[model.BusinessListing, model.ListingInput]{
		mu:   mu,
		idOf: func(l model.BusinessListing) int64 { return l.ID },
		build: func(id int64, in model.ListingInput) model.BusinessListing {
			return model.BusinessListing{ID: id, ListingInput: in, CreatedAt: now}
		},
		check: func(in model.ListingInput) error {
			if !db.users.existsLocked(in.OwnerID) {
				return missingReference()
			}
			return nil
		},
		cascade: func(id int64) map[string]int64 {
			return map[string]int64{
				"Match": db.matches.removeLocked(func(m model.Match) bool { return m.BusinessID == id }),
			}
		},
	}

	db.matches = &memStore[model.Match, model.MatchInput]{
		mu:   mu,
		idOf: func(m model.Match) int64 { return m.ID },
		build: func(id int64, in model.MatchInput) model.Match {
			return model.Match{ID: id, MatchInput: in, CreatedAt: now}
		},
		check: func(in model.MatchInput) error {
			if !db.buyers.existsLocked(in.BuyerID) || !db.listings.existsLocked(in.BusinessID) {
				return missingReference()
			}
			return nil
		},
	}

	return db
}

func (db *memDB) stores() service.Stores {
	return service.Stores{
		Users:    db.users,
		Buyers:   db.buyers,
		Listings: db.listings,
		Matches:  db.matches,
	}
}
