package middleware

import (
	"pharma-search-srv/pkg/log"
	"pharma-search-srv/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
}

// New builds the middleware set. jwtManager may be nil, in which case every request is anonymous.
func New(l log.Logger, jwtManager scope.Manager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
}
