// pkg/memcache/login_attempts.go
package mem

import (
	"sync"
	"time"
)

const (
	DefaultMaxLoginAttempts = 5
	DefaultBlockWindow      = 5 * time.Minute
)

// LoginAttemptStore tracks failed logins per email. An email with
// maxAttempts failures inside the block window is blocked; the entry
// expires lazily once the window has passed since the last failure.
// Implementations must be safe for concurrent use.
type LoginAttemptStore interface {
	RecordFailure(email string)
	IsBlocked(email string) bool
	Reset(email string)
}

type loginAttempt struct {
	count       int
	lastAttempt time.Time
}

type LoginAttempts struct {
	mu          sync.Mutex
	data        map[string]loginAttempt
	maxAttempts int
	window      time.Duration
}

func NewLoginAttempts(maxAttempts int, window time.Duration) *LoginAttempts {
	return &LoginAttempts{
		data:        make(map[string]loginAttempt),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (s *LoginAttempts) RecordFailure(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt := s.data[email]
	attempt.count++
	attempt.lastAttempt = time.Now()
	s.data[email] = attempt
}

func (s *LoginAttempts) IsBlocked(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.data[email]
	if !ok {
		return false
	}
	if time.Since(attempt.lastAttempt) > s.window {
		delete(s.data, email) // window passed, cleanup
		return false
	}
	return attempt.count >= s.maxAttempts
}

func (s *LoginAttempts) Reset(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, email)
}
