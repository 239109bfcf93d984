// Package session holds the client-side authentication state machine:
// token lifecycle, profile hydration and the route-guard decision. The
// store is constructed with its collaborators so tests can run isolated
// sessions against fakes.
package session

import (
	"context"
	"errors"
	"sync"

	"taskboard/internal/api"
	"taskboard/internal/models"
)

// Gateway is the slice of the API client the session needs.
type Gateway interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) error
	Profile(ctx context.Context) (models.User, error)
}

// TokenStore is the durable storage holding the bearer token across
// reloads. In the browser it is backed by localStorage.
type TokenStore interface {
	Token() string
	SetToken(token string)
	Clear()
}

// State is a snapshot of the session. User is nil until profile
// hydration succeeds and is never populated while Token is empty.
type State struct {
	Token   string
	User    *models.User
	Loading bool
	Err     string
}

// LoggedIn reports whether a bearer token is present.
func (s State) LoggedIn() bool { return s.Token != "" }

// Store owns the session state. All operations are safe for concurrent
// use; overlapping async operations are not deduplicated and the last
// resolution wins.
type Store struct {
	gateway Gateway
	tokens  TokenStore

	mu    sync.Mutex
	state State
	boot  sync.Once

	nextSub int
	subs    map[int]func()
}

// New primes the session from durable storage: a persisted token is
// restored, the user stays nil until Bootstrap hydrates it.
func New(gateway Gateway, tokens TokenStore) *Store {
	return &Store{
		gateway: gateway,
		tokens:  tokens,
		state:   State{Token: tokens.Token()},
		subs:    map[int]func(){},
	}
}

// Snapshot returns the current session state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to run after every state transition and returns
// a cancel func. Mounted components subscribe so hydration re-renders
// them.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// set applies mutate under the lock and notifies subscribers after
// releasing it.
func (s *Store) set(mutate func(*State)) {
	s.mu.Lock()
	mutate(&s.state)
	subs := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) begin() {
	s.set(func(st *State) {
		st.Loading = true
		st.Err = ""
	})
}

// Login exchanges credentials for a token. On success the token is
// persisted and applied; on failure the token is left unchanged and Err
// carries the server message or a generic fallback.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.begin()
	token, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		s.set(func(st *State) {
			st.Loading = false
			st.Err = errMessage(err, "Login failed")
		})
		return err
	}
	s.tokens.SetToken(token)
	s.set(func(st *State) {
		st.Loading = false
		st.Token = token
	})
	return nil
}

// Register creates an account. It never mutates the token; the caller
// must log in separately.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	s.begin()
	if err := s.gateway.Register(ctx, name, email, password); err != nil {
		s.set(func(st *State) {
			st.Loading = false
			st.Err = errMessage(err, "Registration failed")
		})
		return err
	}
	s.set(func(st *State) { st.Loading = false })
	return nil
}

// FetchProfile hydrates the user from the API. Failure keeps the prior
// user and does not clear the token. A result arriving after Logout is
// discarded: the user must never be populated without a token.
func (s *Store) FetchProfile(ctx context.Context) error {
	s.begin()
	user, err := s.gateway.Profile(ctx)
	if err != nil {
		s.set(func(st *State) {
			st.Loading = false
			st.Err = "Failed to load profile"
		})
		return err
	}
	s.set(func(st *State) {
		st.Loading = false
		if st.Token == "" {
			return
		}
		st.User = &user
	})
	return nil
}

// Logout clears the token, the user and the persisted token. It makes no
// network call and is idempotent.
func (s *Store) Logout() {
	s.tokens.Clear()
	s.set(func(st *State) {
		st.Token = ""
		st.User = nil
	})
}

// Bootstrap runs once per process: if durable storage holds a token, it
// triggers profile hydration. Repeated calls are no-ops.
func (s *Store) Bootstrap(ctx context.Context) {
	s.boot.Do(func() {
		if s.tokens.Token() == "" {
			return
		}
		s.FetchProfile(ctx)
	})
}

// errMessage prefers the server-provided message over the fallback.
// Transport errors and empty API bodies fall back to the generic text.
func errMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
