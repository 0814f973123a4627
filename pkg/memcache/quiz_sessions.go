package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"elope/internal/quiz"
)

type QuizSessionStore interface {
	Create(userID string, state quiz.FlowState, ttl time.Duration) string

	// Get returns the session state if present and not expired.
	Get(id string) (Session, bool)

	Update(id string, state quiz.FlowState) bool

	// BeginSave marks the session's save as in flight. started is false when
	// a save is already outstanding; the caller must not issue a second write.
	BeginSave(id string) (started bool, found bool)

	EndSave(id string)

	Delete(id string)
}

type Session struct {
	UserID string
	State  quiz.FlowState
}

type entry struct {
	userID    string
	state     quiz.FlowState
	saving    bool
	expiresAt time.Time
}

type QuizSessions struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewQuizSessions() *QuizSessions {
	return &QuizSessions{
		data: make(map[string]entry),
	}
}

func (s *QuizSessions) Create(userID string, state quiz.FlowState, ttl time.Duration) string {
	id := uuid.New().String()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry{
		userID:    userID,
		state:     state,
		expiresAt: time.Now().Add(ttl),
	}
	return id
}

func (s *QuizSessions) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[id]
	if !ok || time.Now().After(e.expiresAt) {
		return Session{}, false
	}
	return Session{UserID: e.userID, State: e.state}, true
}

func (s *QuizSessions) Update(id string, state quiz.FlowState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return false
	}
	e.state = state
	s.data[id] = e
	return true
}

func (s *QuizSessions) BeginSave(id string) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok || time.Now().After(e.expiresAt) {
		return false, false
	}
	if e.saving {
		return false, true
	}
	e.saving = true
	s.data[id] = e
	return true, true
}

func (s *QuizSessions) EndSave(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return
	}
	e.saving = false
	s.data[id] = e
}

func (s *QuizSessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
