package actionplan

import (
	"os"
	"path/filepath"
	"sync"

	json "github.com/goccy/go-json"
)

// Store is the persistence port for completed checklist steps. Load may
// return an error; the tracker absorbs it and degrades to an empty set.
type Store interface {
	Load(planID string) ([]int, error)
	Save(planID string, steps []int) error
}

const storeFileName = "action-plan.json"

// FileStore keeps every plan's completed steps in one JSON document on disk,
// a map of plan id to an array of step numbers. Writes go through a temp file
// rename so a crash mid-write never corrupts existing plans.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(dataDir string) *FileStore {
	return &FileStore{path: filepath.Join(dataDir, storeFileName)}
}

func (s *FileStore) Load(planID string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plans, err := s.read()
	if err != nil {
		return nil, err
	}
	return plans[planID], nil
}

func (s *FileStore) Save(planID string, steps []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Malformed existing content must not block a save: start over with an
	// empty document, matching the read-side degradation.
	plans, err := s.read()
	if err != nil {
		plans = map[string][]int{}
	}
	if steps == nil {
		steps = []int{}
	}
	plans[planID] = steps

	data, err := json.Marshal(plans)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) read() (map[string][]int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string][]int{}, nil
		}
		return nil, err
	}
	var plans map[string][]int
	if err := json.Unmarshal(data, &plans); err != nil {
		return nil, err
	}
	if plans == nil {
		plans = map[string][]int{}
	}
	return plans, nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu    sync.Mutex
	plans map[string][]int
	// LoadErr, when set, is returned by every Load to exercise the
	// fail-soft path.
	LoadErr error
}

func NewMemStore() *MemStore {
	return &MemStore{plans: map[string][]int{}}
}

func (s *MemStore) Load(planID string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return append([]int(nil), s.plans[planID]...), nil
}

func (s *MemStore) Save(planID string, steps []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[planID] = append([]int(nil), steps...)
	return nil
}
