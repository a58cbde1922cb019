package repository

import (
	"context"

	"github.com/deppfellow/tradehands/internal/model"
)

var buyers = table[model.BuyerProfile]{
	name: "BuyerProfile",
	columns: "id, user_id, title, about, experience, budget_range_lower, budget_range_higher, " +
		"city, state, country, industries, size_preference, timeline, linkedin_url, created_at",
}

var buyerCascade = cascade{
	entity: "BuyerProfile",
	lock:   "SELECT id FROM BuyerProfile WHERE id = $1 FOR UPDATE",
	dependents: []dependent{
		{table: "Match", stmt: "DELETE FROM Match WHERE buyer_id = $1"},
	},
	root: "DELETE FROM BuyerProfile WHERE id = $1 RETURNING id",
}

const insertBuyer = `
INSERT INTO BuyerProfile (user_id, title, about, experience, budget_range_lower, budget_range_higher,
	city, state, country, industries, size_preference, timeline, linkedin_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id`

// BuyerRepository stores buyer profiles.
type BuyerRepository struct {
	db DB
}

// NewBuyerRepository returns a BuyerRepository over db.
func NewBuyerRepository(db DB) *BuyerRepository {
	return &BuyerRepository{db: db}
}

func (r *BuyerRepository) List(ctx context.Context) ([]model.BuyerProfile, error) {
	return buyers.list(ctx, r.db)
}

func (r *BuyerRepository) Get(ctx context.Context, id int64) (Result[model.BuyerProfile], error) {
	return buyers.get(ctx, r.db, id)
}

// Create inserts a buyer profile. A missing industries list is stored as an
// empty one.
func (r *BuyerRepository) Create(ctx context.Context, in model.BuyerInput) (int64, error) {
	industries := in.Industries
	if industries == nil {
		industries = []string{}
	}
	return insertReturningID(ctx, r.db, buyers.name, insertBuyer,
		in.UserID, in.Title, in.About, in.Experience, in.BudgetRangeLower, in.BudgetRangeHigher,
		in.City, in.State, in.Country, industries, in.SizePreference, in.Timeline, in.LinkedinURL)
}

// Delete removes the profile and every match it takes part in.
func (r *BuyerRepository) Delete(ctx context.Context, id int64) (Result[Deletion], error) {
	return buyerCascade.run(ctx, r.db, id)
}
