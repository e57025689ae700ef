// Package session holds the in-memory authentication state of the running
// client and fans state changes out to interested screens.
//
// The cell has a single writer (the auth service) and any number of
// readers. Subscribers always observe the latest published value; a slow
// subscriber skips intermediate states instead of blocking the writer.
package session

import (
	"sync"

	"github.com/dkrylov/animereview/models"
)

// Session is an observable cell holding the currently authenticated user.
// A nil value means no user is logged in. The zero value is not usable;
// construct with [NewSession].
type Session struct {
	mu      sync.Mutex
	current *models.User
	subs    map[int]chan *models.User
	nextID  int
}

func NewSession() *Session {
	return &Session{
		subs: make(map[int]chan *models.User),
	}
}

// Current returns the authenticated user, or nil when logged out.
func (s *Session) Current() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set publishes a new session state. Passing nil marks the session as
// logged out. Only the auth service is expected to call Set.
func (s *Session) Set(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = user

	for _, ch := range s.subs {
		// replace a pending value so the subscriber sees the latest state
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- user:
		default:
		}
	}
}

// Subscribe registers a listener for session changes. The returned channel
// carries at most the latest state; call cancel to unregister and close it.
// The current state is delivered immediately so new subscribers need no
// separate initial read.
func (s *Session) Subscribe() (<-chan *models.User, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	ch := make(chan *models.User, 1)
	ch <- s.current
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}

	return ch, cancel
}
