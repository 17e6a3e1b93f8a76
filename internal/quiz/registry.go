package quiz

import (
	"sync"

	"github.com/google/uuid"
)

// Registry hands out and resolves quiz sessions by id. Sessions live in
// memory only; a restart of the service forgets them, which matches how the
// quiz behaves in the browser.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create starts a fresh session and returns its id.
func (r *Registry) Create() (string, *Session) {
	s := NewSession(Questions())
	s.Start()

	id := uuid.New().String()
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
	return id, s
}

func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}
