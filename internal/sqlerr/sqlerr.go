// Package sqlerr classifies errors coming out of pgx and Postgres.
//
// It turns SQLSTATE codes, connection failures and driver sentinels into
// the errs taxonomy, and extracts the Postgres details (code, table,
// constraint) that the error handler logs.
package sqlerr
