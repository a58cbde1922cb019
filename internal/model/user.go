package model

import "time"

// UserInput is the body of POST /users.
type UserInput struct {
	FirstName       string  `json:"first_name" db:"first_name" validate:"required"`
	LastName        string  `json:"last_name" db:"last_name" validate:"required"`
	Email           string  `json:"email" db:"email" validate:"required"`
	Phone           *string `json:"phone" db:"phone"`
	PasswordHash    string  `json:"password_hash" db:"password_hash" validate:"required"`
	ProfileImageURL *string `json:"profile_image_url" db:"profile_image_url"`
}

func (i *UserInput) Validate() error {
	return validate.Struct(i)
}

// User is a row of AppUser.
type User struct {
	ID int64 `json:"id" db:"id"`
	UserInput
	Verified  bool      `json:"verified" db:"verified"`
	Private   bool      `json:"private" db:"private"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
