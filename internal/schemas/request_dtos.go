package schemas

// CreateUserRequest is a struct that represents a user registration request
// Nickname is required, must be less than 25 characters and URL-safe
type CreateUserRequest struct {
	Nickname string `json:"nickname" validate:"required,max=25,nickname_validation"`
}

// CreateCollectionRequest is a struct that represents a create collection request
// Name is required and must be less than 100 characters
// RouteId optionally seeds the new collection with a single route
type CreateCollectionRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	RouteId string `json:"routeId" validate:"max=64"`
}

// AddRouteRequest is a struct that represents an add route request
// RouteId is required; route ids are opaque to this service
type AddRouteRequest struct {
	RouteId string `json:"routeId" validate:"required,max=64"`
}

// BanRequest is a struct that represents a ban request
// Kind must be either temporary or permanent
// Duration is the ban duration in days, required for temporary bans
// Reason is optional and defaults to a generic text
type BanRequest struct {
	Kind     string `json:"kind" validate:"required,ban_kind_validation"`
	Duration int    `json:"duration" validate:"min=0"`
	Reason   string `json:"reason" validate:"max=256"`
}

// RecordProgressRequest is a struct that represents a progress update request
// TotalProgress is the catalog goal, supplied by the caller on every call
type RecordProgressRequest struct {
	AchievementId   string `json:"achievementId" validate:"required,max=64"`
	CurrentProgress int    `json:"currentProgress"`
	TotalProgress   int    `json:"totalProgress" validate:"required,min=1"`
}
