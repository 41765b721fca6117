package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock pins the store's notion of now so tests can advance time.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func newStoreWithClock(t *testing.T, nickname string) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStore()
	s.now = clock.Now
	_, err := s.CreateUser(nickname)
	require.NoError(t, err)
	return s, clock
}

func TestBanUserTemporary(t *testing.T) {
	s, clock := newStoreWithClock(t, "alice")

	require.NoError(t, s.BanUser("alice", BanKindTemporary, 7, "spamming route reviews"))

	user, _ := s.GetUser("alice")
	assert.True(t, user.IsBanned)
	assert.Equal(t, BanKindTemporary, user.BanKind)
	assert.Equal(t, "spamming route reviews", user.BanReason)
	require.NotNil(t, user.BanExpiresAt)
	assert.Equal(t, clock.Now().Add(7*24*time.Hour), *user.BanExpiresAt)
}

func TestBanUserPermanent(t *testing.T) {
	s, _ := newStoreWithClock(t, "alice")

	require.NoError(t, s.BanUser("alice", BanKindPermanent, 0, ""))

	user, _ := s.GetUser("alice")
	assert.True(t, user.IsBanned)
	assert.Equal(t, BanKindPermanent, user.BanKind)
	assert.Equal(t, DefaultBanReason, user.BanReason)
	assert.Nil(t, user.BanExpiresAt)
}

func TestBanUserInvalidRequests(t *testing.T) {
	s, _ := newStoreWithClock(t, "alice")

	assert.ErrorIs(t, s.BanUser("alice", BanKindTemporary, 0, ""), ErrInvalidBanRequest)
	assert.ErrorIs(t, s.BanUser("alice", BanKindTemporary, -3, ""), ErrInvalidBanRequest)
	assert.ErrorIs(t, s.BanUser("alice", BanKind("shadow"), 1, ""), ErrInvalidBanRequest)
	assert.ErrorIs(t, s.BanUser("ghost", BanKindPermanent, 0, ""), ErrUserNotFound)

	user, _ := s.GetUser("alice")
	assert.False(t, user.IsBanned)
}

func TestBanUnbanRoundTrip(t *testing.T) {
	s, _ := newStoreWithClock(t, "alice")

	require.NoError(t, s.BanUser("alice", BanKindTemporary, 7, "test"))
	require.NoError(t, s.UnbanUser("alice"))

	user, _ := s.GetUser("alice")
	assert.False(t, user.IsBanned)
	assert.Empty(t, user.BanKind)
	assert.Nil(t, user.BanExpiresAt)
	assert.Empty(t, user.BanReason)
}

func TestUnbanUserNotFound(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.UnbanUser("ghost"), ErrUserNotFound)
}

func TestCheckAndReconcileExpiration(t *testing.T) {
	s, clock := newStoreWithClock(t, "alice")

	require.NoError(t, s.BanUser("alice", BanKindTemporary, 1, "cooldown"))

	// Before expiry the ban stays in place.
	assert.False(t, s.CheckAndReconcileExpiration("alice"))
	user, _ := s.GetUser("alice")
	assert.True(t, user.IsBanned)

	clock.Advance(24*time.Hour + time.Minute)

	assert.True(t, s.CheckAndReconcileExpiration("alice"))
	user, _ = s.GetUser("alice")
	assert.False(t, user.IsBanned)
	assert.Nil(t, user.BanExpiresAt)

	// A second call observes an active user and reports false.
	assert.False(t, s.CheckAndReconcileExpiration("alice"))
}

func TestCheckAndReconcileExpirationNonTemporary(t *testing.T) {
	s, clock := newStoreWithClock(t, "alice")

	// Not banned at all.
	assert.False(t, s.CheckAndReconcileExpiration("alice"))
	// Unknown user.
	assert.False(t, s.CheckAndReconcileExpiration("ghost"))

	// Permanent bans never lapse.
	require.NoError(t, s.BanUser("alice", BanKindPermanent, 0, ""))
	clock.Advance(365 * 24 * time.Hour)
	assert.False(t, s.CheckAndReconcileExpiration("alice"))
	user, _ := s.GetUser("alice")
	assert.True(t, user.IsBanned)
}

func TestSweepExpiredBans(t *testing.T) {
	clock := &fakeClock{current: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s := NewStore()
	s.now = clock.Now

	for _, nickname := range []string{"alice", "bob", "carol", "dave"} {
		_, err := s.CreateUser(nickname)
		require.NoError(t, err)
	}

	require.NoError(t, s.BanUser("alice", BanKindTemporary, 1, ""))
	require.NoError(t, s.BanUser("bob", BanKindTemporary, 30, ""))
	require.NoError(t, s.BanUser("carol", BanKindPermanent, 0, ""))

	clock.Advance(48 * time.Hour)

	assert.Equal(t, 1, s.SweepExpiredBans())

	alice, _ := s.GetUser("alice")
	assert.False(t, alice.IsBanned)
	bob, _ := s.GetUser("bob")
	assert.True(t, bob.IsBanned)
	carol, _ := s.GetUser("carol")
	assert.True(t, carol.IsBanned)

	// Nothing left to lift on a second sweep.
	assert.Equal(t, 0, s.SweepExpiredBans())
}
