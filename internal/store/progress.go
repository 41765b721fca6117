package store

// RecordProgress records progress toward an achievement. The first write for
// a (user, achievement) pair creates the record; later writes update it. The
// caller supplies the catalog goal on every call and the store keeps whatever
// it is given, but the current progress is always clamped into [0, total]
// before storing. A goal below one is rejected.
func (s *Store) RecordProgress(nickname, achievementId string, currentProgress, totalProgress int) error {
	if totalProgress < 1 {
		return ErrInvalidProgress
	}

	entry := s.lookup(nickname)
	if entry == nil {
		return ErrUserNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	currentProgress = clamp(currentProgress, 0, totalProgress)

	for i := range entry.user.Progress {
		if entry.user.Progress[i].AchievementId == achievementId {
			entry.user.Progress[i].CurrentProgress = currentProgress
			entry.user.Progress[i].TotalProgress = totalProgress
			return nil
		}
	}

	entry.user.Progress = append(entry.user.Progress, ProgressRecord{
		AchievementId:   achievementId,
		CurrentProgress: currentProgress,
		TotalProgress:   totalProgress,
	})

	return nil
}

// IsCompleted reports whether the user has a progress record for the
// achievement that reached its goal. Completion is always derived from the
// stored counters; there is no separately settable completed flag.
func (s *Store) IsCompleted(nickname, achievementId string) bool {
	record, found := s.GetProgress(nickname, achievementId)
	return found && record.Completed()
}

// GetProgress returns the user's progress record for one achievement and
// whether it exists.
func (s *Store) GetProgress(nickname, achievementId string) (ProgressRecord, bool) {
	entry := s.lookup(nickname)
	if entry == nil {
		return ProgressRecord{}, false
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	for _, record := range entry.user.Progress {
		if record.AchievementId == achievementId {
			return record, true
		}
	}

	return ProgressRecord{}, false
}

// ListProgress returns a snapshot of all progress records of the user, or an
// empty slice if the user is absent or has no progress yet.
func (s *Store) ListProgress(nickname string) []ProgressRecord {
	entry := s.lookup(nickname)
	if entry == nil {
		return []ProgressRecord{}
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	records := make([]ProgressRecord, len(entry.user.Progress))
	copy(records, entry.user.Progress)
	return records
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
