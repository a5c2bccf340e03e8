package catalog

import "errors"

// ErrCardNotFound is returned when a card id does not exist in the catalog.
// Expected outcome for malformed identifiers, not exceptional control flow;
// the transport layer maps it to a not-found status.
var ErrCardNotFound = errors.New("card not found")
