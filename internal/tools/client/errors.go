package client

import "errors"

// ErrNotFound marks a 404 from a lookup tool: the key does not exist in
// the reference store.
var ErrNotFound = errors.New("record not found")
