package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultBanReason is stored when a ban is applied without an explicit reason.
const DefaultBanReason = "No reason provided"

// BanUser puts the user into the banned state. A temporary ban requires a
// positive duration in days and expires at now + duration; a permanent ban
// carries no expiry. Re-banning an already banned user overwrites the
// previous ban.
func (s *Store) BanUser(nickname string, kind BanKind, durationInDays int, reason string) error {
	if kind != BanKindTemporary && kind != BanKindPermanent {
		return ErrInvalidBanRequest
	}
	if kind == BanKindTemporary && durationInDays < 1 {
		return ErrInvalidBanRequest
	}

	entry := s.lookup(nickname)
	if entry == nil {
		return ErrUserNotFound
	}

	if reason == "" {
		reason = DefaultBanReason
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.user.IsBanned = true
	entry.user.BanKind = kind
	entry.user.BanReason = reason
	entry.user.BanExpiresAt = nil
	if kind == BanKindTemporary {
		expiry := s.now().Add(time.Duration(durationInDays) * 24 * time.Hour)
		entry.user.BanExpiresAt = &expiry
	}

	return nil
}

// UnbanUser clears all four ban fields unconditionally, returning the user to
// the active state regardless of the prior ban kind.
func (s *Store) UnbanUser(nickname string) error {
	entry := s.lookup(nickname)
	if entry == nil {
		return ErrUserNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	clearBan(&entry.user)
	return nil
}

// CheckAndReconcileExpiration lazily expires a lapsed temporary ban. It
// reports true only when this call lifted the ban; for active, permanently
// banned or unknown users it reports false. Concurrent calls are safe: the
// loser of the race observes an active user and reports false.
func (s *Store) CheckAndReconcileExpiration(nickname string) bool {
	entry := s.lookup(nickname)
	if entry == nil {
		return false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if !banExpired(&entry.user, s.now()) {
		return false
	}

	clearBan(&entry.user)
	return true
}

// SweepExpiredBans reconciles every lapsed temporary ban in the store and
// returns how many bans it lifted. Entries are collected under the registry
// read lock and reconciled one user at a time, so the sweep never holds the
// global lock while touching user state.
func (s *Store) SweepExpiredBans() int {
	s.mu.RLock()
	entries := make([]*userEntry, 0, len(s.users))
	for _, entry := range s.users {
		entries = append(entries, entry)
	}
	s.mu.RUnlock()

	expired := 0
	now := s.now()
	for _, entry := range entries {
		entry.mu.Lock()
		if banExpired(&entry.user, now) {
			clearBan(&entry.user)
			expired++
		}
		entry.mu.Unlock()
	}

	return expired
}

// RunExpirySweeper periodically sweeps expired bans until the context is
// canceled. It complements the lazy reconcile so that a user who is never
// read again does not stay reported as banned past expiry.
func (s *Store) RunExpirySweeper(ctx context.Context, interval time.Duration) {
	log.Infof("Starting ban expiry sweeper with interval %s", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping ban expiry sweeper")
			return
		case <-ticker.C:
			if expired := s.SweepExpiredBans(); expired > 0 {
				log.Infof("Ban expiry sweep lifted %d ban(s)", expired)
			}
		}
	}
}

// banExpired reports whether the user carries a temporary ban that has lapsed.
// Must be called with the user's lock held.
func banExpired(user *User, now time.Time) bool {
	return user.IsBanned && user.BanKind == BanKindTemporary &&
		user.BanExpiresAt != nil && now.After(*user.BanExpiresAt)
}

// clearBan resets the ban fields to their mutually consistent unbanned state.
// Must be called with the user's lock held.
func clearBan(user *User) {
	user.IsBanned = false
	user.BanKind = ""
	user.BanExpiresAt = nil
	user.BanReason = ""
}
