package db

import "errors"

var (
	ErrDuplicateCardCode = errors.New("duplicate card code within the set")
)

// UniqueViolation is the Postgres error code for unique constraint breaches.
const UniqueViolation = "23505"
