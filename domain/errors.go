package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")
	// ErrCacheMiss will throw if the requested key is not in cache
	ErrCacheMiss = errors.New("cache miss")
	// ErrUnauthorized will throw if the viewer must be authenticated
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden will throw if the viewer is not allowed to do the action
	ErrForbidden = errors.New("you are not allowed to do this")
)
