package feature

import "errors"

// ErrUnknownFeature is returned when a feature name is not in the catalog.
var ErrUnknownFeature = errors.New("unknown feature")
