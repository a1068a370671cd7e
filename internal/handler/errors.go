package handler

import "errors"

// errNoHandlersAreCreated means the configuration names no listen address.
var errNoHandlersAreCreated = errors.New("no handlers are created")
