package schemas

// ErrorDTO is a struct that represents an error response
// Error is the custom error, see CustomError
type ErrorDTO struct {
	Error CustomError `json:"error"`
}

// MetadataDTO is a struct that represents the service metadata response
type MetadataDTO struct {
	ApiVersion string `json:"apiVersion"`
	ApiName    string `json:"apiName"`
}

// HealthDTO is a struct that represents the health response
// Users is the number of registered users in the store
type HealthDTO struct {
	Status string `json:"status"`
	Users  int    `json:"users"`
}

// UserDTO is a struct that represents a user response
// Nickname is the unique nickname of the user
// CreatedAt is the timestamp of when the user was created, RFC3339 formatted
// Ban carries the current moderation state of the user
type UserDTO struct {
	Nickname  string      `json:"nickname"`
	CreatedAt string      `json:"createdAt"`
	Ban       BanStateDTO `json:"ban"`
}

// BanStateDTO is a struct that represents the moderation state of a user
// ExpiresAt is only set for temporary bans, RFC3339 formatted
type BanStateDTO struct {
	Banned    bool   `json:"banned"`
	Kind      string `json:"kind,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// CollectionDTO is a struct that represents a route collection response
// Id is unique within the owning user, not globally
type CollectionDTO struct {
	Id        int      `json:"id"`
	Name      string   `json:"name"`
	RouteIds  []string `json:"routeIds"`
	CreatedAt string   `json:"createdAt"`
}

// ProgressDTO is a struct that represents an achievement progress response
// Completed is derived from the counters and never stored separately
type ProgressDTO struct {
	AchievementId   string `json:"achievementId"`
	CurrentProgress int    `json:"currentProgress"`
	TotalProgress   int    `json:"totalProgress"`
	Completed       bool   `json:"completed"`
}

// ReconciliationDTO is a struct that represents the outcome of a lazy ban
// expiry check
// Expired is true only when the call lifted a lapsed temporary ban
type ReconciliationDTO struct {
	Expired bool `json:"expired"`
}

// PaginatedResponse is a struct that represents a paginated response
// Records is the records of the response
// Pagination is the pagination of the response
type PaginatedResponse struct {
	Records    interface{} `json:"records"`
	Pagination interface{} `json:"pagination"`
}

// Pagination is a struct that represents a pagination
// Offset is the given offset of the pagination
// Limit is the given limit of the pagination
// Records is the total records of the pagination
type Pagination struct {
	Offset  int `json:"offset"`
	Limit   int `json:"limit"`
	Records int `json:"records"`
}
