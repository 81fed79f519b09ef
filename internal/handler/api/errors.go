package api

import "errors"

var errUnauthenticated = errors.New("no authenticated operator in context")
