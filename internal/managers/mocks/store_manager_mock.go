package mocks

import (
	"github.com/stretchr/testify/mock"

	"routemarket/internal/store"
)

type MockStoreManager struct {
	mock.Mock
}

func (m *MockStoreManager) CreateUser(nickname string) (store.User, error) {
	args := m.Called(nickname)
	return args.Get(0).(store.User), args.Error(1)
}

func (m *MockStoreManager) GetUser(nickname string) (store.User, bool) {
	args := m.Called(nickname)
	return args.Get(0).(store.User), args.Bool(1)
}

func (m *MockStoreManager) GetUserCollections(nickname string) []store.Collection {
	args := m.Called(nickname)
	return args.Get(0).([]store.Collection)
}

func (m *MockStoreManager) UserCount() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockStoreManager) CreateCollection(nickname, name, initialRouteId string) (store.Collection, error) {
	args := m.Called(nickname, name, initialRouteId)
	return args.Get(0).(store.Collection), args.Error(1)
}

func (m *MockStoreManager) DeleteCollection(nickname string, collectionId int) error {
	args := m.Called(nickname, collectionId)
	return args.Error(0)
}

func (m *MockStoreManager) AddRouteToCollection(nickname string, collectionId int, routeId string) error {
	args := m.Called(nickname, collectionId, routeId)
	return args.Error(0)
}

func (m *MockStoreManager) RemoveRouteFromCollection(nickname string, collectionId int, routeId string) error {
	args := m.Called(nickname, collectionId, routeId)
	return args.Error(0)
}

func (m *MockStoreManager) BanUser(nickname string, kind store.BanKind, durationInDays int, reason string) error {
	args := m.Called(nickname, kind, durationInDays, reason)
	return args.Error(0)
}

func (m *MockStoreManager) UnbanUser(nickname string) error {
	args := m.Called(nickname)
	return args.Error(0)
}

func (m *MockStoreManager) CheckAndReconcileExpiration(nickname string) bool {
	args := m.Called(nickname)
	return args.Bool(0)
}

func (m *MockStoreManager) RecordProgress(nickname, achievementId string, currentProgress, totalProgress int) error {
	args := m.Called(nickname, achievementId, currentProgress, totalProgress)
	return args.Error(0)
}

func (m *MockStoreManager) GetProgress(nickname, achievementId string) (store.ProgressRecord, bool) {
	args := m.Called(nickname, achievementId)
	return args.Get(0).(store.ProgressRecord), args.Bool(1)
}

func (m *MockStoreManager) ListProgress(nickname string) []store.ProgressRecord {
	args := m.Called(nickname)
	return args.Get(0).([]store.ProgressRecord)
}
