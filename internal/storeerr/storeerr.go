// Package storeerr specifically handles document store driver errors.
//
// It classifies errors coming out of the MongoDB driver into a small set of
// codes, then converts them into user-friendly HTTP errors (e.g. converting
// a "no documents" result into a "Not Found" error).
package storeerr

import "errors"

// Code is the category of a store failure.
type Code string

const (
	// Other is any failure not covered below. Always a 500.
	Other Code = "other"
	// NoDocuments means the filter matched nothing.
	NoDocuments Code = "no_documents"
	// InvalidID means the identifier is not a valid ObjectID. It is a client
	// error and must never be reported as "not found".
	InvalidID Code = "invalid_id"
	// DuplicateKey is a unique index violation.
	DuplicateKey Code = "duplicate_key"
	// Timeout covers driver timeouts and context deadlines.
	Timeout Code = "timeout"
	// Network covers connection level failures.
	Network Code = "network"
	// Uninitialized means the connection manager was used before Initialize.
	Uninitialized Code = "uninitialized"
)

// ErrInvalidID is returned by repositories when an identifier cannot be
// parsed into an ObjectID.
var ErrInvalidID = errors.New("invalid object id")

// Error is a classified store error.
type Error struct {
	Code Code
	// Collection is the collection the operation ran against, e.g. "Contacts".
	Collection string
	// Field is the offending field, when the driver reports one (duplicate keys).
	Field string
	// Message is the driver's message.
	Message string

	driverErr error
}

func (e *Error) Error() string {
	if e.Collection == "" {
		return string(e.Code) + ": " + e.Message
	}
	return e.Collection + ": " + string(e.Code) + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.driverErr
}
