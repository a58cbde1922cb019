package sqlerr

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"strings"

	"github.com/deppfellow/tradehands/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the Code of the first Postgres error in err's chain, or
// Other.
func ErrCode(err error) Code {
	if pgErr := Details(err); pgErr != nil {
		return pgErr.Code
	}
	return Other
}

// Details extracts the Postgres error from err's chain, or returns nil when
// the failure did not come from the server.
func Details(err error) *Error {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr)
	}
	return nil
}

// HandleError classifies err into an *errs.HTTPError.
//
//   - an *errs.HTTPError already in the chain is returned as is
//   - errs.ErrTransactionFailed becomes transaction_failure
//   - class 23 SQLSTATEs become constraint_violation
//   - connection failures, class 08, 57P0x and deadlines become store_unavailable
//   - pgx.ErrNoRows and sql.ErrNoRows become not_found
//   - everything else is internal
//
// Only not_found maps to a 404; every other kind is an opaque 500.
func HandleError(err error) *errs.HTTPError {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if errors.Is(err, errs.ErrTransactionFailed) {
		return errs.NewInternalServerError(errs.KindTransactionFailure, err)
	}

	if pgErr := Details(err); pgErr != nil {
		switch {
		case pgErr.Code.IsConstraint():
			return errs.NewInternalServerError(errs.KindConstraintViolation, err)
		case pgErr.Code.IsUnavailable():
			return errs.NewInternalServerError(errs.KindStoreUnavailable, err)
		default:
			return errs.NewInternalServerError(errs.KindInternal, err)
		}
	}

	if isUnavailable(err) {
		return errs.NewInternalServerError(errs.KindStoreUnavailable, err)
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError()
	}

	return errs.NewInternalServerError(errs.KindInternal, err)
}

func isUnavailable(err error) bool {
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// getEntityName infers the entity a table or column refers to.
//
// A column ending in "_id" wins ("owner_id" -> "Owner"); otherwise the table
// name is used with a trailing "s" dropped; otherwise "record".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		entity := strings.ToLower(tableName)
		if entity == "appuser" {
			entity = "user"
		}
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText turns snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
