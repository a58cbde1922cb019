package model

import "time"

// ListingInput is the body of POST /listings.
type ListingInput struct {
	OwnerID               int64   `json:"owner_id" db:"owner_id" validate:"required"`
	Name                  string  `json:"name" db:"name" validate:"required"`
	Industry              string  `json:"industry" db:"industry" validate:"required"`
	City                  string  `json:"city" db:"city" validate:"required"`
	State                 string  `json:"state" db:"state" validate:"required"`
	Country               string  `json:"country" db:"country" validate:"required"`
	ImageURL              *string `json:"image_url" db:"image_url"`
	AskingPriceUpperBound int64   `json:"asking_price_upper_bound" db:"asking_price_upper_bound"`
	AskingPriceLowerBound int64   `json:"asking_price_lower_bound" db:"asking_price_lower_bound"`
	Description           string  `json:"description" db:"description" validate:"required"`
	Employees             string  `json:"employees" db:"employees" validate:"required"`
	YearsInOperation      int32   `json:"years_in_operation" db:"years_in_operation"`
	AnnualRevenue         int64   `json:"annual_revenue" db:"annual_revenue"`
	MonthlyRevenue        int64   `json:"monthly_revenue" db:"monthly_revenue"`
	ProfitMargin          float64 `json:"profit_margin" db:"profit_margin"`
	Timeline              int32   `json:"timeline" db:"timeline"`
	Website               *string `json:"website" db:"website"`
}

func (i *ListingInput) Validate() error {
	return validate.Struct(i)
}

// BusinessListing is a row of BusinessListing.
type BusinessListing struct {
	ID int64 `json:"id" db:"id"`
	ListingInput
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
