package model

import "time"

// MatchInput is the body of POST /matches. SentFromBusToBuy is true when
// the listing side expressed the interest.
type MatchInput struct {
	BuyerID          int64 `json:"buyer_id" db:"buyer_id" validate:"required"`
	BusinessID       int64 `json:"business_id" db:"business_id" validate:"required"`
	SentFromBusToBuy bool  `json:"sent_from_bus_to_buy" db:"sent_from_bus_to_buy"`
}

func (i *MatchInput) Validate() error {
	return validate.Struct(i)
}

// Match is a row of Match.
type Match struct {
	ID int64 `json:"id" db:"id"`
	MatchInput
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
