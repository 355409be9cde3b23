// file: internals/features/admin/service/session_service.go
package service

import (
	"crypto/subtle"
	"sync"

	"github.com/google/uuid"

	"blackbear_backend/internals/errs"
)

// SessionService holds the set of active admin tokens. Tokens only exist in
// process memory: a restart logs every admin out.
type SessionService struct {
	password string

	mu     sync.RWMutex
	tokens map[string]struct{}
}

func NewSessionService(password string) *SessionService {
	return &SessionService{
		password: password,
		tokens:   make(map[string]struct{}),
	}
}

// Login exchanges the shared admin password for a fresh bearer token.
func (s *SessionService) Login(password string) (string, error) {
	if password == "" || subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		return "", errs.Unauthorized("Invalid password.")
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return token, nil
}

// Authorize checks that token was issued by Login and not yet revoked.
func (s *SessionService) Authorize(token string) error {
	if token == "" {
		return errs.Unauthorized("Unauthorized")
	}
	s.mu.RLock()
	_, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok {
		return errs.Unauthorized("Unauthorized")
	}
	return nil
}

// Logout revokes token. Revoking an unknown or already revoked token is not
// an error.
func (s *SessionService) Logout(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
