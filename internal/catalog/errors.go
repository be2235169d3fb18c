package catalog

import "errors"

// ErrNotFound indicates the catalog entry does not exist.
var ErrNotFound = errors.New("catalog entry not found")
