package store

import "time"

// BanKind is the kind of a moderation ban.
type BanKind string

const (
	// BanKindTemporary is a time-bounded ban that lapses at BanExpiresAt.
	BanKindTemporary BanKind = "temporary"
	// BanKindPermanent is an unbounded ban that only an explicit unban lifts.
	BanKindPermanent BanKind = "permanent"
)

// User represents the data model for a user in the store.
// The nickname is the unique key and is immutable once created.
type User struct {
	Nickname     string           `json:"nickname"`      // Unique identifier for the user.
	CreatedAt    time.Time        `json:"created_at"`    // Timestamp when the user was created.
	IsBanned     bool             `json:"is_banned"`     // Whether the user is currently banned.
	BanKind      BanKind          `json:"ban_kind"`      // Kind of the active ban, empty when not banned.
	BanExpiresAt *time.Time       `json:"ban_expires_at"` // Expiry of a temporary ban, nil otherwise.
	BanReason    string           `json:"ban_reason"`    // Reason of the active ban, empty when not banned.
	Collections  []Collection     `json:"collections"`   // Ordered list of the user's route collections.
	Progress     []ProgressRecord `json:"progress"`      // Achievement progress records of the user.
}

// Collection represents a named, user-owned list of route identifiers.
// Its id is unique within the owning user's collection set, not globally.
type Collection struct {
	Id        int       `json:"id"`         // Identifier, allocated as max(existing)+1 per user.
	Name      string    `json:"name"`       // Display name of the collection.
	RouteIds  []string  `json:"route_ids"`  // Ordered route identifiers, treated as opaque.
	CreatedAt time.Time `json:"created_at"` // Timestamp when the collection was created.
}

// ProgressRecord represents a user's progress toward one cataloged achievement.
type ProgressRecord struct {
	AchievementId   string `json:"achievement_id"`   // Identifier of the achievement in the external catalog.
	CurrentProgress int    `json:"current_progress"` // Progress so far, clamped to [0, TotalProgress].
	TotalProgress   int    `json:"total_progress"`   // Goal supplied by the caller from the catalog.
}

// Completed reports whether the record has reached its goal.
func (p ProgressRecord) Completed() bool {
	return p.CurrentProgress >= p.TotalProgress
}

// clone returns a deep copy of the user so callers can never reach
// into the store's mutable state through a returned snapshot.
func (u *User) clone() User {
	c := *u
	if u.BanExpiresAt != nil {
		expiry := *u.BanExpiresAt
		c.BanExpiresAt = &expiry
	}
	c.Collections = cloneCollections(u.Collections)
	c.Progress = make([]ProgressRecord, len(u.Progress))
	copy(c.Progress, u.Progress)
	return c
}

func cloneCollections(collections []Collection) []Collection {
	cloned := make([]Collection, len(collections))
	for i, collection := range collections {
		cloned[i] = collection
		cloned[i].RouteIds = make([]string, len(collection.RouteIds))
		copy(cloned[i].RouteIds, collection.RouteIds)
	}
	return cloned
}
