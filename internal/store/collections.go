package store

// CreateCollection creates a new collection for the user, optionally seeded
// with a single initial route id (pass an empty string for none). The id is
// allocated as max(existing ids)+1, starting at 1 for the first collection,
// under the user's lock so concurrent creates never collide.
func (s *Store) CreateCollection(nickname, name, initialRouteId string) (Collection, error) {
	entry := s.lookup(nickname)
	if entry == nil {
		return Collection{}, ErrUserNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	maxId := 0
	for _, collection := range entry.user.Collections {
		if collection.Id > maxId {
			maxId = collection.Id
		}
	}

	collection := Collection{
		Id:        maxId + 1,
		Name:      name,
		RouteIds:  []string{},
		CreatedAt: s.now(),
	}
	if initialRouteId != "" {
		collection.RouteIds = append(collection.RouteIds, initialRouteId)
	}
	entry.user.Collections = append(entry.user.Collections, collection)

	created := collection
	created.RouteIds = make([]string, len(collection.RouteIds))
	copy(created.RouteIds, collection.RouteIds)
	return created, nil
}

// DeleteCollection removes the collection with the given id from the user's
// list entirely. There is no soft delete; deleting a collection that does not
// exist is reported as ErrCollectionNotFound, not escalated further.
func (s *Store) DeleteCollection(nickname string, collectionId int) error {
	entry := s.lookup(nickname)
	if entry == nil {
		return ErrUserNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	for i, collection := range entry.user.Collections {
		if collection.Id == collectionId {
			entry.user.Collections = append(entry.user.Collections[:i], entry.user.Collections[i+1:]...)
			return nil
		}
	}

	return ErrCollectionNotFound
}

// AddRouteToCollection appends a route id to the collection. Adding a route
// that is already a member is a no-op that still succeeds, so repeated adds
// never produce duplicate entries.
func (s *Store) AddRouteToCollection(nickname string, collectionId int, routeId string) error {
	entry := s.lookup(nickname)
	if entry == nil {
		return ErrUserNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	collection := findCollection(&entry.user, collectionId)
	if collection == nil {
		return ErrCollectionNotFound
	}

	for _, existing := range collection.RouteIds {
		if existing == routeId {
			return nil
		}
	}

	collection.RouteIds = append(collection.RouteIds, routeId)
	return nil
}

// RemoveRouteFromCollection removes a route id from the collection. Unlike
// AddRouteToCollection, removing a route that is not a member fails with
// ErrRouteNotInCollection, so callers can tell "it was never there" apart
// from "the removal happened".
func (s *Store) RemoveRouteFromCollection(nickname string, collectionId int, routeId string) error {
	entry := s.lookup(nickname)
	if entry == nil {
		return ErrUserNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	collection := findCollection(&entry.user, collectionId)
	if collection == nil {
		return ErrCollectionNotFound
	}

	for i, existing := range collection.RouteIds {
		if existing == routeId {
			collection.RouteIds = append(collection.RouteIds[:i], collection.RouteIds[i+1:]...)
			return nil
		}
	}

	return ErrRouteNotInCollection
}

// findCollection returns a pointer into the user's collection list, or nil.
// Must be called with the user's lock held.
func findCollection(user *User, collectionId int) *Collection {
	for i := range user.Collections {
		if user.Collections[i].Id == collectionId {
			return &user.Collections[i]
		}
	}
	return nil
}
