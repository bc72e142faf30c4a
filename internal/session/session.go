// Package session tracks the authenticated user and the Basic-auth
// credential the transport layer attaches to every request.
package session

import (
	"encoding/base64"
	"fmt"

	"github.com/trackwise-dev/trackwise/internal/storage"
)

// Storage keys mirror the wire contract used by other clients of the API.
const (
	keyToken    = "auth.basic"
	keyUsername = "auth.user"
)

// Store holds the current session state, restored from persistent storage
// at construction and kept consistent with it on login/logout.
type Store struct {
	storage       storage.Store
	authenticated bool
	username      string
}

// New creates a Store, restoring any persisted credential.
func New(st storage.Store) *Store {
	s := &Store{storage: st}
	if _, ok := st.Get(keyToken); ok {
		s.authenticated = true
		s.username, _ = st.Get(keyUsername)
	}
	return s
}

// Login derives a Basic-auth token from the credentials, persists it, and
// marks the session authenticated. It does not verify the credential
// against the server; callers do that with a probe request.
func (s *Store) Login(username, password string) error {
	token := base64.StdEncoding.EncodeToString([]byte(username + ":" + password))
	if err := s.storage.Set(keyToken, token); err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}
	if err := s.storage.Set(keyUsername, username); err != nil {
		return fmt.Errorf("persisting username: %w", err)
	}
	s.authenticated = true
	s.username = username
	return nil
}

// Logout clears the persisted credential and marks the session
// unauthenticated. Called both by the logout command and by the transport
// layer on a 401.
func (s *Store) Logout() error {
	if err := s.storage.Delete(keyToken); err != nil {
		return fmt.Errorf("clearing credential: %w", err)
	}
	if err := s.storage.Delete(keyUsername); err != nil {
		return fmt.Errorf("clearing username: %w", err)
	}
	s.authenticated = false
	s.username = ""
	return nil
}

// Authenticated reports whether a credential is held.
func (s *Store) Authenticated() bool {
	return s.authenticated
}

// Username returns the logged-in username, if any.
func (s *Store) Username() (string, bool) {
	if !s.authenticated {
		return "", false
	}
	return s.username, true
}

// Token returns the persisted Basic-auth token, if any.
func (s *Store) Token() (string, bool) {
	return s.storage.Get(keyToken)
}
