// Package repository defines error values that are reused across multiple
// repositories. Store failures are returned as *backend.Error so callers can
// branch on backend.Kind; the sentinels below cover the cases that are
// decided by the repository itself rather than by the database.
package repository

import "errors"

// ErrNotFound is returned when a lookup or update matches no row. It is
// always wrapped in a *backend.Error of kind backend.KindNotFound.
var ErrNotFound = errors.New("record not found")

// ErrUnknownColumn is returned when a filter names a column the table does
// not expose. Handlers should translate this into an HTTP 400 response.
var ErrUnknownColumn = errors.New("unknown filter column")

// ErrEmailExists is returned by UserRepo.Create when the email is taken.
var ErrEmailExists = errors.New("email already exists")
