package store

import "errors"

var ErrSubdomainTaken = errors.New("subdomain already taken")
