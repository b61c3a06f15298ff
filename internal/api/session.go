package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/martinsuchenak/orbitd/internal/log"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 12 * time.Hour

// SessionStore issues and validates dashboard session tokens. The login gate
// is cosmetic product behavior, not a security boundary; the API bearer token
// remains the real access control.
type SessionStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{tokens: make(map[string]time.Time)}
}

// Create issues a new session token
func (s *SessionStore) Create() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = time.Now().Add(sessionTTL)
	s.mu.Unlock()
	return token
}

// Valid reports whether a token exists and has not expired. Expired tokens
// are dropped on sight.
func (s *SessionStore) Valid(token string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// createSession handles POST /api/session
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// No hash configured means the gate is disabled; any login succeeds.
	if h.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)); err != nil {
			log.Warn("Dashboard login rejected", "remote", r.RemoteAddr)
			h.writeError(w, http.StatusUnauthorized, "invalid password")
			return
		}
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"token": h.sessions.Create()})
}
