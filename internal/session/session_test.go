package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkrylov/animereview/models"
)

func TestSession_CurrentStartsNil(t *testing.T) {
	s := NewSession()
	assert.Nil(t, s.Current())
}

func TestSession_SetUpdatesCurrent(t *testing.T) {
	s := NewSession()
	user := &models.User{ID: "u-1", Email: "ana@example.com"}

	s.Set(user)
	assert.Equal(t, user, s.Current())

	s.Set(nil)
	assert.Nil(t, s.Current())
}

func TestSession_SubscribeDeliversCurrentStateImmediately(t *testing.T) {
	s := NewSession()
	user := &models.User{ID: "u-1"}
	s.Set(user)

	ch, cancel := s.Subscribe()
	defer cancel()

	select {
	case got := <-ch:
		assert.Equal(t, user, got)
	default:
		t.Fatal("expected the current state to be buffered at subscribe time")
	}
}

func TestSession_SlowSubscriberSeesLatestState(t *testing.T) {
	s := NewSession()

	ch, cancel := s.Subscribe()
	defer cancel()

	// the subscriber never drains while three states are published
	s.Set(&models.User{ID: "u-1"})
	s.Set(&models.User{ID: "u-2"})
	s.Set(nil)

	got := <-ch
	assert.Nil(t, got, "intermediate states must be dropped in favor of the latest")
}

func TestSession_CancelClosesChannel(t *testing.T) {
	s := NewSession()

	ch, cancel := s.Subscribe()
	cancel()

	// drain the buffered initial state, then observe the close
	for range ch {
	}

	// publishing after cancel must not panic on the closed channel
	s.Set(&models.User{ID: "u-1"})

	// cancel is idempotent
	cancel()
}

func TestSession_ConcurrentReadersAndWriter(t *testing.T) {
	s := NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch, cancel := s.Subscribe()
			defer cancel()
			for j := 0; j < 50; j++ {
				s.Current()
				select {
				case <-ch:
				default:
				}
			}
		}()
	}

	for i := 0; i < 100; i++ {
		s.Set(&models.User{ID: "u-1"})
		s.Set(nil)
	}
	wg.Wait()
}
