// Package state persists the target master window count of each space.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mj1618/ymsp/internal/model"
)

// DefaultCount is the master count of a space seen for the first time.
const DefaultCount = 1

// ErrUnknownSpace is returned for a space that has no entry.
var ErrUnknownSpace = errors.New("no master count stored for space")

// State maps a space id to its target master count. On disk it is a JSON
// object keyed by the decimal space id.
type State map[int]int

// Get returns the stored count for a space.
func (s State) Get(spaceID int) (int, error) {
	n, ok := s[spaceID]
	if !ok {
		return 0, fmt.Errorf("%w %d", ErrUnknownSpace, spaceID)
	}
	return n, nil
}

// Set stores the count for a space. Counts below one are rejected.
func (s State) Set(spaceID, n int) error {
	if n < 1 {
		return fmt.Errorf("master count for space %d must be at least 1, got %d", spaceID, n)
	}
	s[spaceID] = n
	return nil
}

// Merge adds missing live spaces with the default count and drops entries
// for spaces yabai no longer reports. It reports whether anything changed.
func (s State) Merge(spaces []model.Space) bool {
	live := make(map[int]bool, len(spaces))
	changed := false
	for _, sp := range spaces {
		live[sp.ID] = true
		if n, ok := s[sp.ID]; !ok || n < 1 {
			s[sp.ID] = DefaultCount
			changed = true
		}
	}
	for id := range s {
		if !live[id] {
			delete(s, id)
			changed = true
		}
	}
	return changed
}

// Store reads and writes State at a fixed path.
type Store struct {
	path   string
	logger *log.Logger
}

func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{path: path, logger: logger}
}

func (s *Store) Path() string { return s.path }

// Load reads the state file and merges it against the live spaces. A missing
// file yields a fresh state.
func (s *Store) Load(spaces []model.Space) (State, error) {
	st := State{}
	data, err := os.ReadFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Debug("no state file, starting fresh", "path", s.path)
	case err != nil:
		return nil, fmt.Errorf("load state: %w", err)
	default:
		if err := json.Unmarshal(data, &st); err != nil {
			return nil, fmt.Errorf("unmarshal state %s: %w", s.path, err)
		}
	}
	if st.Merge(spaces) {
		s.logger.Debug("state merged with live spaces", "spaces", len(spaces), "entries", len(st))
	}
	return st, nil
}

// Save writes st atomically: a temp file in the same directory is renamed
// over the old state.
func (s *Store) Save(st State) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace state: %w", err)
	}
	s.logger.Debug("state saved", "path", s.path, "entries", len(st))
	return nil
}
