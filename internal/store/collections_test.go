package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoreWithUser(t *testing.T, nickname string) *Store {
	t.Helper()
	s := NewStore()
	_, err := s.CreateUser(nickname)
	require.NoError(t, err)
	return s
}

func TestCreateCollectionScenario(t *testing.T) {
	s := newStoreWithUser(t, "alice")

	europe, err := s.CreateCollection("alice", "Europe", "route-7")
	require.NoError(t, err)
	assert.Equal(t, 1, europe.Id)
	assert.Equal(t, []string{"route-7"}, europe.RouteIds)

	asia, err := s.CreateCollection("alice", "Asia", "")
	require.NoError(t, err)
	assert.Equal(t, 2, asia.Id)
	assert.Empty(t, asia.RouteIds)

	require.NoError(t, s.AddRouteToCollection("alice", 2, "route-9"))

	require.NoError(t, s.DeleteCollection("alice", 1))

	collections := s.GetUserCollections("alice")
	require.Len(t, collections, 1)
	assert.Equal(t, 2, collections[0].Id)
	assert.Equal(t, []string{"route-9"}, collections[0].RouteIds)
}

func TestCreateCollectionUserNotFound(t *testing.T) {
	s := NewStore()

	_, err := s.CreateCollection("ghost", "Europe", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCollectionIdsUniqueAndMonotonic(t *testing.T) {
	s := newStoreWithUser(t, "alice")

	seen := make(map[int]bool)
	maxId := 0
	for i := 0; i < 5; i++ {
		collection, err := s.CreateCollection("alice", fmt.Sprintf("list-%d", i), "")
		require.NoError(t, err)
		assert.False(t, seen[collection.Id], "collection id %d allocated twice", collection.Id)
		assert.Greater(t, collection.Id, maxId)
		seen[collection.Id] = true
		maxId = collection.Id
	}
}

func TestCollectionIdAfterDelete(t *testing.T) {
	s := newStoreWithUser(t, "alice")

	for i := 0; i < 3; i++ {
		_, err := s.CreateCollection("alice", fmt.Sprintf("list-%d", i), "")
		require.NoError(t, err)
	}
	require.NoError(t, s.DeleteCollection("alice", 3))

	// The highest surviving id is 2, so the next allocation is 3 again.
	collection, err := s.CreateCollection("alice", "reused", "")
	require.NoError(t, err)
	assert.Equal(t, 3, collection.Id)
}

func TestConcurrentCreateCollectionAllocatesUniqueIds(t *testing.T) {
	s := newStoreWithUser(t, "alice")

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := s.CreateCollection("alice", fmt.Sprintf("list-%d", i), "")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	collections := s.GetUserCollections("alice")
	require.Len(t, collections, workers)

	seen := make(map[int]bool)
	for _, collection := range collections {
		assert.False(t, seen[collection.Id], "collection id %d allocated twice", collection.Id)
		seen[collection.Id] = true
	}
}

func TestDeleteCollectionNotFound(t *testing.T) {
	s := newStoreWithUser(t, "alice")

	assert.ErrorIs(t, s.DeleteCollection("alice", 42), ErrCollectionNotFound)
	assert.ErrorIs(t, s.DeleteCollection("ghost", 1), ErrUserNotFound)
}

func TestAddRouteIdempotent(t *testing.T) {
	s := newStoreWithUser(t, "alice")
	_, err := s.CreateCollection("alice", "Europe", "")
	require.NoError(t, err)

	require.NoError(t, s.AddRouteToCollection("alice", 1, "route-7"))
	require.NoError(t, s.AddRouteToCollection("alice", 1, "route-7"))

	collections := s.GetUserCollections("alice")
	assert.Equal(t, []string{"route-7"}, collections[0].RouteIds)
}

func TestAddRouteCollectionNotFound(t *testing.T) {
	s := newStoreWithUser(t, "alice")

	assert.ErrorIs(t, s.AddRouteToCollection("alice", 1, "route-7"), ErrCollectionNotFound)
	assert.ErrorIs(t, s.AddRouteToCollection("ghost", 1, "route-7"), ErrUserNotFound)
}

func TestRemoveRouteAsymmetric(t *testing.T) {
	s := newStoreWithUser(t, "alice")
	_, err := s.CreateCollection("alice", "Europe", "route-7")
	require.NoError(t, err)

	// Removing an absent route fails and leaves the collection untouched.
	err = s.RemoveRouteFromCollection("alice", 1, "route-9")
	assert.ErrorIs(t, err, ErrRouteNotInCollection)
	assert.Equal(t, []string{"route-7"}, s.GetUserCollections("alice")[0].RouteIds)

	require.NoError(t, s.RemoveRouteFromCollection("alice", 1, "route-7"))
	assert.Empty(t, s.GetUserCollections("alice")[0].RouteIds)

	// A second removal of the same route now fails again.
	err = s.RemoveRouteFromCollection("alice", 1, "route-7")
	assert.ErrorIs(t, err, ErrRouteNotInCollection)
}

func TestRemoveRouteCollectionNotFound(t *testing.T) {
	s := newStoreWithUser(t, "alice")

	assert.ErrorIs(t, s.RemoveRouteFromCollection("alice", 1, "route-7"), ErrCollectionNotFound)
	assert.ErrorIs(t, s.RemoveRouteFromCollection("ghost", 1, "route-7"), ErrUserNotFound)
}
