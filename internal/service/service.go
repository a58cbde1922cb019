// Package service contains the business logic.
//
// It sits between the handler and repository layers. Each entity has a
// service that makes exactly one store call per operation and logs the
// outcome through the request-scoped logger.
package service

import (
	"context"

	"github.com/deppfellow/tradehands/internal/repository"
	"github.com/rs/zerolog"
)

// Store is the data access contract shared by every entity.
type Store[T, In any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (repository.Result[T], error)
	Create(ctx context.Context, in In) (int64, error)
	Delete(ctx context.Context, id int64) (repository.Result[repository.Deletion], error)
}

// EntityService runs the four operations of one entity against its store.
type EntityService[T, In any] struct {
	entity string
	store  Store[T, In]
}

func newEntityService[T, In any](entity string, store Store[T, In]) *EntityService[T, In] {
	return &EntityService[T, In]{entity: entity, store: store}
}

func (s *EntityService[T, In]) logger(ctx context.Context, operation string) zerolog.Logger {
	return zerolog.Ctx(ctx).With().
		Str("entity", s.entity).
		Str("operation", operation).
		Logger()
}

// List returns every row, oldest first.
func (s *EntityService[T, In]) List(ctx context.Context) ([]T, error) {
	items, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	logger := s.logger(ctx, "list")
	logger.Debug().Int("count", len(items)).Msg("listed rows")
	return items, nil
}

// Get returns the row with the given id, or an absent result.
func (s *EntityService[T, In]) Get(ctx context.Context, id int64) (repository.Result[T], error) {
	result, err := s.store.Get(ctx, id)
	if err != nil {
		return result, err
	}

	logger := s.logger(ctx, "get")
	logger.Debug().Int64("id", id).Bool("found", result.Found).Msg("looked up row")
	return result, nil
}

// Create inserts a row and returns its id.
func (s *EntityService[T, In]) Create(ctx context.Context, in In) (int64, error) {
	id, err := s.store.Create(ctx, in)
	if err != nil {
		return 0, err
	}

	logger := s.logger(ctx, "create")
	logger.Info().Int64("id", id).Msg("created row")
	return id, nil
}

// Delete removes the row and its dependents. The cascade counts are logged.
func (s *EntityService[T, In]) Delete(ctx context.Context, id int64) (repository.Result[repository.Deletion], error) {
	result, err := s.store.Delete(ctx, id)
	if err != nil {
		return result, err
	}

	logger := s.logger(ctx, "delete")
	if !result.Found {
		logger.Debug().Int64("id", id).Msg("nothing to delete")
		return result, nil
	}

	event := logger.Info().Int64("id", result.Value.ID)
	for table, count := range result.Value.Cascaded {
		event = event.Int64("cascaded."+table, count)
	}
	event.Msg("deleted row")
	return result, nil
}
