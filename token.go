package opentdb

import (
	"context"
	"sync"
	"time"
)

// kTokenTTL is the server-side inactivity window after which a session token
// is invalidated.
const kTokenTTL = 6 * time.Hour

// tokenState is the single-writer cell owning the session token and its
// issuance timestamp. Request-building reads an atomic snapshot; mutations
// go through the setters. The cell detects expiry but never clears itself.
type tokenState struct {
	mu       sync.Mutex
	disabled bool
	token    string
	issuedAt time.Time
	fatal    error

	// ready is closed once the cell leaves the uninitialized state, either
	// by a successful fetch or by a recorded fatal issuance failure.
	ready chan struct{}

	now func() time.Time
}

func newTokenState(disabled bool) *tokenState {
	return &tokenState{
		disabled: disabled,
		ready:    make(chan struct{}),
		now:      time.Now,
	}
}

// snapshot returns the current token, its issuance time, and whether a token
// exists at all.
func (s *tokenState) snapshot() (string, time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.issuedAt, s.token != ""
}

// set records a freshly issued token and marks the cell ready.
func (s *tokenState) set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.issuedAt = s.now()
	s.signalReady()
}

// refresh bumps the issuance time without changing the token identity.
// A reset clears the server-side memory of seen questions, not the token.
func (s *tokenState) refresh() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issuedAt = s.now()
}

// setFatal records a broken token-issuance invariant and unblocks waiters.
func (s *tokenState) setFatal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fatal == nil {
		s.fatal = err
	}
	s.signalReady()
}

func (s *tokenState) signalReady() {
	select {
	case <-s.ready:
	default:
		close(s.ready)
	}
}

func (s *tokenState) fatalErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fatal
}

// expired reports whether more than the inactivity window has passed since
// issuance. It is false when no token was ever issued.
func (s *tokenState) expired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.issuedAt.IsZero() {
		return false
	}
	return s.now().Sub(s.issuedAt) > kTokenTTL
}

// await blocks until the cell leaves the uninitialized state or ctx is done.
// On a recorded issuance failure it returns that fatal error.
func (s *tokenState) await(ctx context.Context) error {
	if s.disabled {
		return ErrNoToken
	}
	select {
	case <-s.ready:
		return s.fatalErr()
	case <-ctx.Done():
		return ctx.Err()
	}
}
