package sqlerr

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is a coarse grouping of SQLSTATE values.
type Code string

const (
	Other                Code = "other"
	UniqueViolation      Code = "unique_violation"
	ForeignKeyViolation  Code = "foreign_key_violation"
	NotNullViolation     Code = "not_null_violation"
	CheckViolation       Code = "check_violation"
	IntegrityViolation   Code = "integrity_violation"
	ConnectionException  Code = "connection_exception"
	OperatorIntervention Code = "operator_intervention"
	InvalidText          Code = "invalid_text_representation"
	UndefinedTable       Code = "undefined_table"
	UndefinedColumn      Code = "undefined_column"
)

// MapCode maps a SQLSTATE onto a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	case "22P02":
		return InvalidText
	case "42P01":
		return UndefinedTable
	case "42703":
		return UndefinedColumn
	}

	switch {
	case strings.HasPrefix(sqlstate, "23"):
		return IntegrityViolation
	case strings.HasPrefix(sqlstate, "08"):
		return ConnectionException
	case strings.HasPrefix(sqlstate, "57P0"):
		// admin_shutdown, crash_shutdown, cannot_connect_now
		return OperatorIntervention
	}
	return Other
}

// IsConstraint reports whether the code is an integrity constraint violation.
func (c Code) IsConstraint() bool {
	switch c {
	case UniqueViolation, ForeignKeyViolation, NotNullViolation, CheckViolation, IntegrityViolation:
		return true
	}
	return false
}

// IsUnavailable reports whether the code means the server could not be used.
func (c Code) IsUnavailable() bool {
	return c == ConnectionException || c == OperatorIntervention
}

// Severity is the Postgres message severity.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityUnknown Severity = "UNKNOWN"
)

// MapSeverity maps the severity string sent by the server.
func MapSeverity(severity string) Severity {
	switch Severity(strings.ToUpper(severity)) {
	case SeverityError:
		return SeverityError
	case SeverityFatal:
		return SeverityFatal
	case SeverityPanic:
		return SeverityPanic
	case SeverityWarning:
		return SeverityWarning
	case SeverityNotice:
		return SeverityNotice
	}
	return SeverityUnknown
}

// Error is a Postgres error reduced to the fields worth logging.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (SQLSTATE %s): %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// Entity names the row type the error refers to, e.g. "User" for a
// violation on user_id.
func (e *Error) Entity() string {
	return getEntityName(e.TableName, e.ColumnName)
}

// ConvertPgError converts a raw pgconn.PgError.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
