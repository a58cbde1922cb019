package repository

import (
	"context"

	"github.com/deppfellow/tradehands/internal/model"
)

var listings = table[model.BusinessListing]{
	name: "BusinessListing",
	columns: "id, owner_id, name, industry, city, state, country, image_url, " +
		"asking_price_upper_bound, asking_price_lower_bound, description, employees, " +
		"years_in_operation, annual_revenue, monthly_revenue, profit_margin, timeline, website, created_at",
}

var listingCascade = cascade{
	entity: "BusinessListing",
	lock:   "SELECT id FROM BusinessListing WHERE id = $1 FOR UPDATE",
	dependents: []dependent{
		{table: "Match", stmt: "DELETE FROM Match WHERE business_id = $1"},
	},
	root: "DELETE FROM BusinessListing WHERE id = $1 RETURNING id",
}

const insertListing = `
INSERT INTO BusinessListing (owner_id, name, industry, city, state, country, image_url,
	asking_price_upper_bound, asking_price_lower_bound, description, employees, years_in_operation,
	annual_revenue, monthly_revenue, profit_margin, timeline, website)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
RETURNING id`

// ListingRepository stores business listings.
type ListingRepository struct {
	db DB
}

// NewListingRepository returns a ListingRepository over db.
func NewListingRepository(db DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) List(ctx context.Context) ([]model.BusinessListing, error) {
	return listings.list(ctx, r.db)
}

func (r *ListingRepository) Get(ctx context.Context, id int64) (Result[model.BusinessListing], error) {
	return listings.get(ctx, r.db, id)
}

func (r *ListingRepository) Create(ctx context.Context, in model.ListingInput) (int64, error) {
	return insertReturningID(ctx, r.db, listings.name, insertListing,
		in.OwnerID, in.Name, in.Industry, in.City, in.State, in.Country, in.ImageURL,
		in.AskingPriceUpperBound, in.AskingPriceLowerBound, in.Description, in.Employees, in.YearsInOperation,
		in.AnnualRevenue, in.MonthlyRevenue, in.ProfitMargin, in.Timeline, in.Website)
}

// Delete removes the listing and every match it takes part in.
func (r *ListingRepository) Delete(ctx context.Context, id int64) (Result[Deletion], error) {
	return listingCascade.run(ctx, r.db, id)
}
