// Package repository handles all interactions with the database.
//
// It contains the SQL for every entity, the Result type that separates
// "no such row" from failures, and the cascade-delete transactions.
package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/tradehands/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DB is the subset of *pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Result is the outcome of a single-row operation that did not fail:
// either a value was found or no row matched.
type Result[T any] struct {
	Value T
	Found bool
}

// Found wraps a value that was found.
func Found[T any](v T) Result[T] {
	return Result[T]{Value: v, Found: true}
}

// Absent is the result of an operation that matched no row.
func Absent[T any]() Result[T] {
	return Result[T]{}
}

// Deletion describes a committed delete: the id of the deleted row and how
// many dependent rows went with it, keyed by table.
type Deletion struct {
	ID       int64
	Cascaded map[string]int64
}

// table binds an entity type to its table and column list.
type table[T any] struct {
	name    string
	columns string
}

func (t table[T]) list(ctx context.Context, db DB) ([]T, error) {
	rows, err := db.Query(ctx, fmt.Sprintf("SELECT %s FROM %s ORDER BY id", t.columns, t.name))
	if err != nil {
		return nil, errors.Wrapf(err, "listing %s", t.name)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, errors.Wrapf(err, "scanning %s", t.name)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (t table[T]) get(ctx context.Context, db DB, id int64) (Result[T], error) {
	rows, err := db.Query(ctx, fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", t.columns, t.name), id)
	if err != nil {
		return Absent[T](), errors.Wrapf(err, "getting %s %d", t.name, id)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return Absent[T](), nil
	}
	if err != nil {
		return Absent[T](), errors.Wrapf(err, "scanning %s %d", t.name, id)
	}
	return Found(item), nil
}

func insertReturningID(ctx context.Context, db DB, entity, sql string, args ...any) (int64, error) {
	var id int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, errors.Wrapf(err, "creating %s", entity)
	}
	return id, nil
}

// dependent is a statement that removes rows referencing the row being
// deleted. stmt takes the owning id as $1.
type dependent struct {
	table string
	stmt  string
}

// cascade is a delete that removes its dependents, in order, before the
// owning row. root must return the deleted id.
//
// lock, when set, selects the owning row FOR UPDATE before any dependent is
// touched. Inserts that reference the row wait for the cascade to finish
// and then no longer see it.
type cascade struct {
	entity     string
	lock       string
	dependents []dependent
	root       string
}

// run executes the cascade for id inside one transaction.
//
// Any failing statement or commit rolls everything back and the returned
// error wraps errs.ErrTransactionFailed. When the owning row does not exist
// the transaction is rolled back too and the result is Absent.
func (c cascade) run(ctx context.Context, db DB, id int64) (Result[Deletion], error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return Absent[Deletion](), c.failed(id, "begin", err)
	}

	committed := false
	defer func() {
		if !committed {
			c.rollback(ctx, tx, id)
		}
	}()

	if c.lock != "" {
		var locked int64
		err := tx.QueryRow(ctx, c.lock, id).Scan(&locked)
		if errors.Is(err, pgx.ErrNoRows) {
			return Absent[Deletion](), nil
		}
		if err != nil {
			return Absent[Deletion](), c.failed(id, "locking "+c.entity, err)
		}
	}

	deletion := Deletion{Cascaded: make(map[string]int64, len(c.dependents))}
	for _, dep := range c.dependents {
		tag, err := tx.Exec(ctx, dep.stmt, id)
		if err != nil {
			return Absent[Deletion](), c.failed(id, "deleting from "+dep.table, err)
		}
		deletion.Cascaded[dep.table] = tag.RowsAffected()
	}

	err = tx.QueryRow(ctx, c.root, id).Scan(&deletion.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return Absent[Deletion](), nil
	}
	if err != nil {
		return Absent[Deletion](), c.failed(id, "deleting from "+c.entity, err)
	}

	committed = true
	if err := tx.Commit(ctx); err != nil {
		return Absent[Deletion](), c.failed(id, "commit", err)
	}
	return Found(deletion), nil
}

func (c cascade) rollback(ctx context.Context, tx pgx.Tx, id int64) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("entity", c.entity).
			Int64("id", id).
			Msg("rollback failed")
	}
}

func (c cascade) failed(id int64, step string, err error) error {
	return errors.WithStack(fmt.Errorf("%w: deleting %s %d: %s: %w", errs.ErrTransactionFailed, c.entity, id, step, err))
}
