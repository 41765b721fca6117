// Package managers wires the handlers to the user store behind a narrow
// interface so handler tests can substitute a mock.
package managers

import (
	log "github.com/sirupsen/logrus"

	"routemarket/internal/store"
)

// StoreMgr defines the interface for the user/collection store.
// It lists exactly the operations the HTTP handlers rely on.
type StoreMgr interface {
	CreateUser(nickname string) (store.User, error)
	GetUser(nickname string) (store.User, bool)
	GetUserCollections(nickname string) []store.Collection
	UserCount() int

	CreateCollection(nickname, name, initialRouteId string) (store.Collection, error)
	DeleteCollection(nickname string, collectionId int) error
	AddRouteToCollection(nickname string, collectionId int, routeId string) error
	RemoveRouteFromCollection(nickname string, collectionId int, routeId string) error

	BanUser(nickname string, kind store.BanKind, durationInDays int, reason string) error
	UnbanUser(nickname string) error
	CheckAndReconcileExpiration(nickname string) bool

	RecordProgress(nickname, achievementId string, currentProgress, totalProgress int) error
	GetProgress(nickname, achievementId string) (store.ProgressRecord, bool)
	ListProgress(nickname string) []store.ProgressRecord
}

// NewStoreManager returns the given store as a StoreMgr.
// It logs the initialization process, mirroring the other managers.
func NewStoreManager(s *store.Store) StoreMgr {
	log.Info("Initializing store manager")
	return s
}
