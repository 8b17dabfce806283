package store

import (
	"path/filepath"
	"sync"

	"sportsterminal/internal/domain"
)

const snapshotsFilename = "snapshots.json"

// SnapshotFileStore keeps the last scoreboard of each league on disk.
type SnapshotFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSnapshotFileStore returns a SnapshotFileStore rooted at dir.
func NewSnapshotFileStore(dir string) *SnapshotFileStore {
	return &SnapshotFileStore{dir: dir}
}

// SaveSnapshot replaces the stored scoreboard for the board's league and mode.
// An unreadable snapshot file is left untouched and its error returned.
func (s *SnapshotFileStore) SaveSnapshot(board domain.Scoreboard) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := filepath.Join(s.dir, snapshotsFilename)
	m := map[string]domain.Scoreboard{}
	if err := readJSON(path, &m); err != nil {
		return err
	}
	m[snapshotKey(board.Sport, board.League, board.Upcoming)] = board
	return writeJSON(path, m, 0o600)
}

// LoadSnapshot returns the stored scoreboard and whether one was present.
func (s *SnapshotFileStore) LoadSnapshot(
	sport domain.SportID,
	league domain.LeagueID,
	upcoming bool,
) (domain.Scoreboard, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := map[string]domain.Scoreboard{}
	if err := readJSON(filepath.Join(s.dir, snapshotsFilename), &m); err != nil {
		return domain.Scoreboard{}, false, err
	}
	board, ok := m[snapshotKey(sport, league, upcoming)]
	return board, ok, nil
}

func snapshotKey(sport domain.SportID, league domain.LeagueID, upcoming bool) string {
	key := sport.String() + "/" + league.String()
	if upcoming {
		key += "/upcoming"
	}
	return key
}

// Compile-time assertion that SnapshotFileStore implements domain.SnapshotStore.
var _ domain.SnapshotStore = (*SnapshotFileStore)(nil)
