package memstore

import "errors"

var (
	ErrFixturesNotReadable = errors.New("fixtures file is not readable")
	ErrInvalidFixtures     = errors.New("invalid fixtures")
)
