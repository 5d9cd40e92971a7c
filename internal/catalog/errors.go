package catalog

import "errors"

// Business-rule errors for the catalog domain. Storage-level failures
// (unique violations, missing rows) are not redeclared here: the repository
// lets the driver errors propagate so the response layer can classify them.
var (
	ErrPriceLocked   = errors.New("price cannot change on a discontinued item")
	ErrInvalidStatus = errors.New("invalid item status")
)
