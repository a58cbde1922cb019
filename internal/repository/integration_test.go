package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/deppfellow/tradehands/internal/database"
	"github.com/deppfellow/tradehands/internal/errs"
	"github.com/deppfellow/tradehands/internal/model"
	"github.com/deppfellow/tradehands/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDatabaseURLEnv = "TRADEHANDS_TEST_DATABASE_URL"

// setupTestDB migrates the database named by TRADEHANDS_TEST_DATABASE_URL,
// empties every table and returns repositories over a fresh pool. The test
// is skipped when the variable is not set.
func setupTestDB(t *testing.T) *Repositories {
	t.Helper()

	url := os.Getenv(testDatabaseURLEnv)
	if url == "" {
		t.Skipf("%s not set, skipping integration test", testDatabaseURLEnv)
	}

	ctx := context.Background()
	logger := zerolog.Nop()

	conn, err := pgx.Connect(ctx, url)
	require.NoError(t, err)
	require.NoError(t, database.ApplyMigrations(ctx, &logger, conn))
	_, err = conn.Exec(ctx, "TRUNCATE Match, BuyerProfile, BusinessListing, AppUser RESTART IDENTITY")
	require.NoError(t, err)
	require.NoError(t, conn.Close(ctx))

	pool, err := pgxpool.New(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return newRepositories(pool)
}

func createUser(t *testing.T, repos *Repositories, email string) int64 {
	t.Helper()
	id, err := repos.Users.Create(context.Background(), model.UserInput{
		FirstName: "A", LastName: "B", Email: email, PasswordHash: "x",
	})
	require.NoError(t, err)
	return id
}

func createBuyer(t *testing.T, repos *Repositories, userID int64) int64 {
	t.Helper()
	id, err := repos.Buyers.Create(context.Background(), model.BuyerInput{
		UserID: userID, Title: "Operator", About: "Ex-COO", Experience: 10,
		BudgetRangeLower: 100, BudgetRangeHigher: 200,
		City: "Austin", State: "TX", Country: "US",
		Industries: []string{"food", "retail"}, SizePreference: "small", Timeline: 6,
	})
	require.NoError(t, err)
	return id
}

func createListing(t *testing.T, repos *Repositories, ownerID int64) int64 {
	t.Helper()
	id, err := repos.Listings.Create(context.Background(), model.ListingInput{
		OwnerID: ownerID, Name: "Corner Bakery", Industry: "food",
		City: "Austin", State: "TX", Country: "US",
		AskingPriceUpperBound: 900, AskingPriceLowerBound: 700,
		Description: "Bakery", Employees: "11-50", YearsInOperation: 14,
		AnnualRevenue: 1200, MonthlyRevenue: 100, ProfitMargin: 0.18, Timeline: 3,
	})
	require.NoError(t, err)
	return id
}

func createMatch(t *testing.T, repos *Repositories, buyerID, listingID int64) int64 {
	t.Helper()
	id, err := repos.Matches.Create(context.Background(), model.MatchInput{BuyerID: buyerID, BusinessID: listingID})
	require.NoError(t, err)
	return id
}

func TestIntegration_CreateThenRead(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	phone := "+15550100"
	userInput := model.UserInput{FirstName: "A", LastName: "B", Email: "a@b.com", Phone: &phone, PasswordHash: "x"}
	userID, err := repos.Users.Create(ctx, userInput)
	require.NoError(t, err)

	user, err := repos.Users.Get(ctx, userID)
	require.NoError(t, err)
	require.True(t, user.Found)
	assert.Equal(t, userInput, user.Value.UserInput)
	assert.False(t, user.Value.Verified)
	assert.False(t, user.Value.Private)

	buyerID := createBuyer(t, repos, userID)
	buyer, err := repos.Buyers.Get(ctx, buyerID)
	require.NoError(t, err)
	require.True(t, buyer.Found)
	assert.Equal(t, []string{"food", "retail"}, buyer.Value.Industries)

	listingInput := model.ListingInput{
		OwnerID: userID, Name: "Corner Bakery", Industry: "food",
		City: "Austin", State: "TX", Country: "US",
		AskingPriceUpperBound: 900, AskingPriceLowerBound: 700,
		Description: "Bakery", Employees: "11-50", YearsInOperation: 14,
		AnnualRevenue: 1200, MonthlyRevenue: 100, ProfitMargin: 0.123456789, Timeline: 3,
	}
	listingID, err := repos.Listings.Create(ctx, listingInput)
	require.NoError(t, err)
	listing, err := repos.Listings.Get(ctx, listingID)
	require.NoError(t, err)
	require.True(t, listing.Found)
	assert.Equal(t, listingInput, listing.Value.ListingInput)

	wide := listingInput
	wide.ProfitMargin = 1234.5678
	wideID, err := repos.Listings.Create(ctx, wide)
	require.NoError(t, err)
	listing, err = repos.Listings.Get(ctx, wideID)
	require.NoError(t, err)
	assert.Equal(t, 1234.5678, listing.Value.ProfitMargin)

	matchID := createMatch(t, repos, buyerID, listingID)
	match, err := repos.Matches.Get(ctx, matchID)
	require.NoError(t, err)
	require.True(t, match.Found)
	assert.Equal(t, model.MatchInput{BuyerID: buyerID, BusinessID: listingID}, match.Value.MatchInput)
}

func TestIntegration_ListCompleteness(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	var ids []int64
	for _, email := range []string{"1@x.io", "2@x.io", "3@x.io", "4@x.io"} {
		ids = append(ids, createUser(t, repos, email))
	}

	for _, id := range []int64{ids[1], ids[3]} {
		result, err := repos.Users.Delete(ctx, id)
		require.NoError(t, err)
		require.True(t, result.Found)
	}

	users, err := repos.Users.List(ctx)
	require.NoError(t, err)
	var got []int64
	for _, u := range users {
		got = append(got, u.ID)
	}
	assert.Equal(t, []int64{ids[0], ids[2]}, got)
}

func TestIntegration_UserCascade(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	userID := createUser(t, repos, "owner@x.io")
	buyerIDs := []int64{createBuyer(t, repos, userID), createBuyer(t, repos, userID)}
	listingID := createListing(t, repos, userID)
	matchID := createMatch(t, repos, buyerIDs[0], listingID)

	result, err := repos.Users.Delete(ctx, userID)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, int64(2), result.Value.Cascaded["BuyerProfile"])
	assert.Equal(t, int64(1), result.Value.Cascaded["BusinessListing"])

	for _, id := range buyerIDs {
		buyer, err := repos.Buyers.Get(ctx, id)
		require.NoError(t, err)
		assert.False(t, buyer.Found)
	}
	listing, err := repos.Listings.Get(ctx, listingID)
	require.NoError(t, err)
	assert.False(t, listing.Found)

	// the match outlives the profile and listing it points at
	match, err := repos.Matches.Get(ctx, matchID)
	require.NoError(t, err)
	assert.True(t, match.Found)
}

func TestIntegration_MatchCascade(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	userID := createUser(t, repos, "owner@x.io")
	buyerID := createBuyer(t, repos, userID)
	listingA := createListing(t, repos, userID)
	listingB := createListing(t, repos, userID)
	createMatch(t, repos, buyerID, listingA)
	createMatch(t, repos, buyerID, listingB)
	survivor := createMatch(t, repos, createBuyer(t, repos, userID), listingA)

	result, err := repos.Buyers.Delete(ctx, buyerID)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, int64(2), result.Value.Cascaded["Match"])

	matches, err := repos.Matches.List(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, survivor, matches[0].ID)
}

func TestIntegration_DeleteAbsent(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	result, err := repos.Users.Delete(ctx, 12345)
	require.NoError(t, err)
	assert.False(t, result.Found)

	buyer, err := repos.Buyers.Get(ctx, 12345)
	require.NoError(t, err)
	assert.False(t, buyer.Found)
}

func TestIntegration_ReferentialIntegrity(t *testing.T) {
	repos := setupTestDB(t)
	ctx := context.Background()

	_, err := repos.Buyers.Create(ctx, model.BuyerInput{
		UserID: 999, Title: "t", About: "a", City: "c", State: "s", Country: "c", SizePreference: "s",
	})
	require.Error(t, err)
	assert.Equal(t, errs.KindConstraintViolation, sqlerr.HandleError(err).Kind)

	_, err = repos.Matches.Create(ctx, model.MatchInput{BuyerID: 999, BusinessID: 999})
	require.Error(t, err)
	assert.Equal(t, errs.KindConstraintViolation, sqlerr.HandleError(err).Kind)

	matches, err := repos.Matches.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// waitForLockWait blocks until some session is waiting on a row lock.
func waitForLockWait(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	require.Eventually(t, func() bool {
		var waiting int
		err := pool.QueryRow(context.Background(),
			"SELECT count(*) FROM pg_stat_activity WHERE wait_event_type = 'Lock'").Scan(&waiting)
		return err == nil && waiting > 0
	}, 5*time.Second, 10*time.Millisecond)
}

// A profile delete that starts while a match insert for it is uncommitted
// waits for the insert and then removes the new match with the rest.
func TestIntegration_DeleteWaitsForMatchInsert(t *testing.T) {
	repos := setupTestDB(t)
	pool := repos.Matches.db.(*pgxpool.Pool)
	ctx := context.Background()

	userID := createUser(t, repos, "owner@x.io")
	buyerID := createBuyer(t, repos, userID)
	listingID := createListing(t, repos, userID)

	insert, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer insert.Rollback(ctx) //nolint:errcheck
	_, err = NewMatchRepository(insert).Create(ctx, model.MatchInput{BuyerID: buyerID, BusinessID: listingID})
	require.NoError(t, err)

	type outcome struct {
		result Result[Deletion]
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := repos.Buyers.Delete(ctx, buyerID)
		done <- outcome{result, err}
	}()

	waitForLockWait(t, pool)
	require.NoError(t, insert.Commit(ctx))

	deleted := <-done
	require.NoError(t, deleted.err)
	require.True(t, deleted.result.Found)
	assert.Equal(t, int64(1), deleted.result.Value.Cascaded["Match"])

	matches, err := repos.Matches.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

// A match insert that starts while a profile delete is uncommitted waits
// for the delete and then fails as a missing reference.
func TestIntegration_MatchInsertWaitsForDelete(t *testing.T) {
	repos := setupTestDB(t)
	pool := repos.Matches.db.(*pgxpool.Pool)
	ctx := context.Background()

	userID := createUser(t, repos, "owner@x.io")
	buyerID := createBuyer(t, repos, userID)
	listingID := createListing(t, repos, userID)

	del, err := pool.Begin(ctx)
	require.NoError(t, err)
	defer del.Rollback(ctx) //nolint:errcheck
	_, err = del.Exec(ctx, "SELECT id FROM BuyerProfile WHERE id = $1 FOR UPDATE", buyerID)
	require.NoError(t, err)
	_, err = del.Exec(ctx, "DELETE FROM Match WHERE buyer_id = $1", buyerID)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := repos.Matches.Create(ctx, model.MatchInput{BuyerID: buyerID, BusinessID: listingID})
		done <- err
	}()

	waitForLockWait(t, pool)
	_, err = del.Exec(ctx, "DELETE FROM BuyerProfile WHERE id = $1", buyerID)
	require.NoError(t, err)
	require.NoError(t, del.Commit(ctx))

	err = <-done
	require.Error(t, err)
	assert.Equal(t, errs.KindConstraintViolation, sqlerr.HandleError(err).Kind)

	matches, err := repos.Matches.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)
}
