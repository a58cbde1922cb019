package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/deppfellow/tradehands/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		kind   errs.Kind
		status int
	}{
		{
			name:   "foreign key violation",
			err:    &pgconn.PgError{Code: "23503", Severity: "ERROR", TableName: "buyerprofile", ColumnName: "user_id"},
			kind:   errs.KindConstraintViolation,
			status: http.StatusInternalServerError,
		},
		{
			name:   "not null violation",
			err:    fmt.Errorf("creating user: %w", &pgconn.PgError{Code: "23502"}),
			kind:   errs.KindConstraintViolation,
			status: http.StatusInternalServerError,
		},
		{
			name:   "exclusion violation",
			err:    &pgconn.PgError{Code: "23P01"},
			kind:   errs.KindConstraintViolation,
			status: http.StatusInternalServerError,
		},
		{
			name:   "admin shutdown",
			err:    &pgconn.PgError{Code: "57P01", Severity: "FATAL"},
			kind:   errs.KindStoreUnavailable,
			status: http.StatusInternalServerError,
		},
		{
			name:   "connection failure",
			err:    &pgconn.PgError{Code: "08006"},
			kind:   errs.KindStoreUnavailable,
			status: http.StatusInternalServerError,
		},
		{
			name:   "deadline",
			err:    fmt.Errorf("listing: %w", context.DeadlineExceeded),
			kind:   errs.KindStoreUnavailable,
			status: http.StatusInternalServerError,
		},
		{
			name:   "network",
			err:    &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")},
			kind:   errs.KindStoreUnavailable,
			status: http.StatusInternalServerError,
		},
		{
			name:   "undefined table",
			err:    &pgconn.PgError{Code: "42P01"},
			kind:   errs.KindInternal,
			status: http.StatusInternalServerError,
		},
		{
			name:   "transaction failure wins over sqlstate",
			err:    fmt.Errorf("%w: deleting user 3: %w", errs.ErrTransactionFailed, &pgconn.PgError{Code: "23503"}),
			kind:   errs.KindTransactionFailure,
			status: http.StatusInternalServerError,
		},
		{
			name:   "no rows",
			err:    fmt.Errorf("get: %w", pgx.ErrNoRows),
			kind:   errs.KindNotFound,
			status: http.StatusNotFound,
		},
		{
			name:   "unknown",
			err:    errors.New("boom"),
			kind:   errs.KindInternal,
			status: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := HandleError(tt.err)
			require.NotNil(t, httpErr)
			assert.Equal(t, tt.kind, httpErr.Kind)
			assert.Equal(t, tt.status, httpErr.Status)
			if tt.kind != errs.KindNotFound {
				assert.ErrorIs(t, httpErr, tt.err)
			}
		})
	}
}

func TestHandleError_PassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFoundError()
	assert.Same(t, original, HandleError(fmt.Errorf("wrapped: %w", original)))
	assert.Nil(t, HandleError(nil))
}

func TestDetails(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23503",
		Severity:       "ERROR",
		Message:        "insert or update violates foreign key constraint",
		TableName:      "businesslisting",
		ColumnName:     "owner_id",
		ConstraintName: "businesslisting_owner_id_fkey",
	}

	details := Details(fmt.Errorf("create: %w", pgErr))
	require.NotNil(t, details)
	assert.Equal(t, ForeignKeyViolation, details.Code)
	assert.Equal(t, SeverityError, details.Severity)
	assert.Equal(t, "businesslisting_owner_id_fkey", details.ConstraintName)
	assert.Equal(t, "Owner", details.Entity())
	assert.ErrorIs(t, details, pgErr)

	assert.Nil(t, Details(errors.New("plain")))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestMapCode(t *testing.T) {
	assert.Equal(t, UniqueViolation, MapCode("23505"))
	assert.Equal(t, IntegrityViolation, MapCode("23P01"))
	assert.Equal(t, ConnectionException, MapCode("08001"))
	assert.Equal(t, OperatorIntervention, MapCode("57P03"))
	assert.Equal(t, Other, MapCode("40001"))
}

func TestGetEntityName(t *testing.T) {
	assert.Equal(t, "User", getEntityName("AppUser", ""))
	assert.Equal(t, "Buyer", getEntityName("match", "buyer_id"))
	assert.Equal(t, "Businesslisting", getEntityName("businesslistings", ""))
	assert.Equal(t, "record", getEntityName("", ""))
}
