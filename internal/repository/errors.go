// Package repository contains data access logic separated from HTTP
// handlers.  Every repository works against the store.Collection port so
// the concrete document database is injected at startup.  This file
// defines sentinel errors reused across repositories; handlers translate
// them into HTTP status codes (the storefront answers duplicate
// constraints with 400 for compatibility with its original API contract).
package repository

import "errors"

// ErrEmailExists is returned when registering with an email address that
// is already present in the users collection.
var ErrEmailExists = errors.New("email already registered")

// ErrDuplicateReview is returned when a user attempts a second review of
// the same product.  The check is a best-effort pre-insert lookup; two
// concurrent submissions can still both pass it.
var ErrDuplicateReview = errors.New("product already reviewed by user")
