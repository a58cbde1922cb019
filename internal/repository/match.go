package repository

import (
	"context"

	"github.com/deppfellow/tradehands/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

var matches = table[model.Match]{
	name:    "Match",
	columns: "id, buyer_id, business_id, sent_from_bus_to_buy, created_at",
}

var matchCascade = cascade{
	entity: "Match",
	root:   "DELETE FROM Match WHERE id = $1 RETURNING id",
}

// Match has no declared foreign keys, so the insert only happens when both
// referenced rows exist. FOR KEY SHARE holds them until commit, the same
// lock a foreign key check takes, so a concurrent profile or listing delete
// either waits for this insert or makes it see no row.
const insertMatch = `
INSERT INTO Match (buyer_id, business_id, sent_from_bus_to_buy)
SELECT $1::bigint, $2::bigint, $3::boolean
WHERE EXISTS (SELECT 1 FROM BuyerProfile WHERE id = $1 FOR KEY SHARE)
  AND EXISTS (SELECT 1 FROM BusinessListing WHERE id = $2 FOR KEY SHARE)
RETURNING id`

// MatchRepository stores matches between buyer profiles and listings.
type MatchRepository struct {
	db DB
}

// NewMatchRepository returns a MatchRepository over db.
func NewMatchRepository(db DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]model.Match, error) {
	return matches.list(ctx, r.db)
}

func (r *MatchRepository) Get(ctx context.Context, id int64) (Result[model.Match], error) {
	return matches.get(ctx, r.db, id)
}

// Create inserts a match. When the buyer profile or the listing does not
// exist nothing is written and the error is a foreign key violation.
func (r *MatchRepository) Create(ctx context.Context, in model.MatchInput) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, insertMatch, in.BuyerID, in.BusinessID, in.SentFromBusToBuy).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, errors.WithStack(&pgconn.PgError{
			Severity:  "ERROR",
			Code:      "23503",
			Message:   "match references a missing buyer profile or business listing",
			TableName: "match",
		})
	}
	if err != nil {
		return 0, errors.Wrapf(err, "creating %s", matches.name)
	}
	return id, nil
}

// Delete removes a single match.
func (r *MatchRepository) Delete(ctx context.Context, id int64) (Result[Deletion], error) {
	return matchCascade.run(ctx, r.db, id)
}
