// Package backend describes how failures reported by the hosted relational
// store are classified. Callers branch on a closed set of error kinds
// instead of matching driver error text.
package backend

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
)

// Kind is the category of a backend failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindTableMissing
	KindPermissionDenied
	KindConflict
	KindInvalid
	KindTransient
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindTableMissing:
		return "table_missing"
	case KindPermissionDenied:
		return "permission_denied"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	case KindTransient:
		return "transient"
	default:
		return "unknown"
	}
}

// MySQL server error numbers that map onto a Kind.
const (
	erDBAccessDenied      = 1044
	erAccessDenied        = 1045
	erBadDB               = 1049
	erBadField            = 1054
	erDupEntry            = 1062
	erTableAccessDenied   = 1142
	erColumnAccessDenied  = 1143
	erNoSuchTable         = 1146
	erLockWaitTimeout     = 1205
	erLockDeadlock        = 1213
	erNoReferencedRow     = 1452
	erRowIsReferenced     = 1451
	erDataTooLong         = 1406
	erTruncatedWrongValue = 1292
	erServerShutdown      = 1053
	erTooManyConnections  = 1040
)

// Error wraps a store failure with the operation and table it came from.
type Error struct {
	Kind  Kind
	Op    string
	Table string
	Err   error
}

func (e *Error) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Table, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Wrap classifies err and annotates it with op and table. A nil err stays nil
// and an err that already carries a Kind keeps it.
func Wrap(op, table string, err error) error {
	if err == nil {
		return nil
	}
	var be *Error
	if errors.As(err, &be) {
		return err
	}
	return &Error{Kind: Classify(err), Op: op, Table: table, Err: err}
}

// KindOf returns the kind of err, classifying it when it is not already a
// *Error.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return Classify(err)
}

// Is reports whether err is of kind k.
func Is(err error, k Kind) bool { return err != nil && KindOf(err) == k }

// Classify maps a raw driver or database/sql error onto a Kind.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case erNoSuchTable, erBadDB:
			return KindTableMissing
		case erDBAccessDenied, erAccessDenied, erTableAccessDenied, erColumnAccessDenied:
			return KindPermissionDenied
		case erDupEntry, erRowIsReferenced:
			return KindConflict
		case erNoReferencedRow, erBadField, erDataTooLong, erTruncatedWrongValue:
			return KindInvalid
		case erLockWaitTimeout, erLockDeadlock, erServerShutdown, erTooManyConnections:
			return KindTransient
		}
		return KindUnknown
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTransient
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return KindTransient
	}
	return KindUnknown
}
