package collection

import "errors"

// Domain errors used by the collection service and mapped to HTTP statuses
// at the transport layer. A missing card surfaces as catalog.ErrCardNotFound.
var (
	ErrAlreadyInCollection = errors.New("card already in collection")
	ErrNotInCollection     = errors.New("card not in collection")
)
