package evaluations

import "errors"

// ErrNotFound indicates the evaluation does not exist.
var ErrNotFound = errors.New("evaluation not found")

// ErrNoCandidates indicates the catalog has no options for the finding's
// category and the request supplied none inline.
var ErrNoCandidates = errors.New("no candidate options for category")
