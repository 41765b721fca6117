// Package schemas defines the data structures exchanged over the HTTP surface.
package schemas

// CustomError is a struct that represents an error returned to the caller.
// Code is a stable identifier, Message a human readable description.
type CustomError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// The error catalog of the API. Every expected failure of the store maps to
// exactly one of these; none of them is a fault.
var (
	// BadRequest is returned when the request body or parameters are invalid.
	BadRequest = &CustomError{
		Code:    "ERR-001",
		Message: "The request body is invalid. Please check the request body and try again.",
	}
	// NicknameTaken is returned when a registration names an existing nickname.
	NicknameTaken = &CustomError{
		Code:    "ERR-002",
		Message: "The nickname is already taken. Please try another nickname.",
	}
	// InternalServerError is returned for unexpected conditions.
	InternalServerError = &CustomError{
		Code:    "ERR-003",
		Message: "An internal server error occurred. Please try again later.",
	}
	// UserNotFound is returned when a nickname does not resolve to a user.
	UserNotFound = &CustomError{
		Code:    "ERR-004",
		Message: "The user was not found. Please check the nickname and try again.",
	}
	// CollectionNotFound is returned when a collection id does not exist for the user.
	CollectionNotFound = &CustomError{
		Code:    "ERR-005",
		Message: "The collection was not found. Please check the collection id and try again.",
	}
	// RouteNotInCollection is returned when a removal names a route that is not a member.
	RouteNotInCollection = &CustomError{
		Code:    "ERR-006",
		Message: "The route is not part of the collection. Please check the route id and try again.",
	}
	// InvalidBanRequest is returned for a temporary ban without a positive duration.
	InvalidBanRequest = &CustomError{
		Code:    "ERR-007",
		Message: "The ban request is invalid. A temporary ban requires a positive duration in days.",
	}
	// InvalidProgress is returned for a progress goal below one.
	InvalidProgress = &CustomError{
		Code:    "ERR-008",
		Message: "The progress request is invalid. The total progress must be at least one.",
	}
	// ProgressNotFound is returned when no progress was recorded for the achievement yet.
	ProgressNotFound = &CustomError{
		Code:    "ERR-009",
		Message: "No progress was recorded for this achievement yet.",
	}
)
