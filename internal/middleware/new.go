package middleware

import (
	"smartcars-insurance/pkg/log"
)

// Middleware bundles the gin middleware used by the HTTP servers.
type Middleware struct {
	l log.Logger
}

func New(l log.Logger) Middleware {
	return Middleware{l: l}
}
