package model

import "time"

// BuyerInput is the body of POST /buyers.
type BuyerInput struct {
	UserID            int64    `json:"user_id" db:"user_id" validate:"required"`
	Title             string   `json:"title" db:"title" validate:"required"`
	About             string   `json:"about" db:"about" validate:"required"`
	Experience        int32    `json:"experience" db:"experience"`
	BudgetRangeLower  int64    `json:"budget_range_lower" db:"budget_range_lower"`
	BudgetRangeHigher int64    `json:"budget_range_higher" db:"budget_range_higher"`
	City              string   `json:"city" db:"city" validate:"required"`
	State             string   `json:"state" db:"state" validate:"required"`
	Country           string   `json:"country" db:"country" validate:"required"`
	Industries        []string `json:"industries" db:"industries"`
	SizePreference    string   `json:"size_preference" db:"size_preference" validate:"required"`
	Timeline          int32    `json:"timeline" db:"timeline"`
	LinkedinURL       *string  `json:"linkedin_url" db:"linkedin_url"`
}

func (i *BuyerInput) Validate() error {
	return validate.Struct(i)
}

// BuyerProfile is a row of BuyerProfile. Industries keeps the order it was
// created with.
type BuyerProfile struct {
	ID int64 `json:"id" db:"id"`
	BuyerInput
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
