package store

import "errors"

// The store reports every expected failure through one of these sentinel
// errors. None of them is fatal; a lookup miss is a normal branch for callers.
var (
	// ErrUserNotFound is returned when a nickname does not resolve to a user.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when a nickname is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrCollectionNotFound is returned when a collection id does not exist for the user.
	ErrCollectionNotFound = errors.New("collection not found")
	// ErrRouteNotInCollection is returned when a removal names a route id that
	// is not a member of the collection. Distinct from ErrCollectionNotFound.
	ErrRouteNotInCollection = errors.New("route not in collection")
	// ErrInvalidBanRequest is returned for a temporary ban without a positive duration.
	ErrInvalidBanRequest = errors.New("invalid ban request")
	// ErrInvalidProgress is returned for a progress goal below one.
	ErrInvalidProgress = errors.New("invalid progress target")
)
