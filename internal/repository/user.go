package repository

import (
	"context"

	"github.com/deppfellow/tradehands/internal/model"
)

var users = table[model.User]{
	name: "AppUser",
	columns: "id, first_name, last_name, email, phone, password_hash, profile_image_url, " +
		"verified, private, created_at",
}

// A user owns buyer profiles and listings. Matches that point at those rows
// are left in place.
var userCascade = cascade{
	entity: "AppUser",
	lock:   "SELECT id FROM AppUser WHERE id = $1 FOR UPDATE",
	dependents: []dependent{
		{table: "BuyerProfile", stmt: "DELETE FROM BuyerProfile WHERE user_id = $1"},
		{table: "BusinessListing", stmt: "DELETE FROM BusinessListing WHERE owner_id = $1"},
	},
	root: "DELETE FROM AppUser WHERE id = $1 RETURNING id",
}

const insertUser = `
INSERT INTO AppUser (first_name, last_name, email, phone, password_hash, profile_image_url)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

// UserRepository stores users.
type UserRepository struct {
	db DB
}

// NewUserRepository returns a UserRepository over db.
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	return users.list(ctx, r.db)
}

func (r *UserRepository) Get(ctx context.Context, id int64) (Result[model.User], error) {
	return users.get(ctx, r.db, id)
}

func (r *UserRepository) Create(ctx context.Context, in model.UserInput) (int64, error) {
	return insertReturningID(ctx, r.db, users.name, insertUser,
		in.FirstName, in.LastName, in.Email, in.Phone, in.PasswordHash, in.ProfileImageURL)
}

// Delete removes the user together with its buyer profiles and listings.
func (r *UserRepository) Delete(ctx context.Context, id int64) (Result[Deletion], error) {
	return userCascade.run(ctx, r.db, id)
}
