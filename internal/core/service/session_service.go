package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/roomiefies/admin-gateway/internal/api/metrics"
	"github.com/roomiefies/admin-gateway/internal/core/domain"
	"github.com/roomiefies/admin-gateway/internal/core/ports"
)

// SessionService owns the staff session lifecycle: login, logout,
// per-request resolution and teardown on authentication rejection.
//
// Each session id carries a monotonic generation counter. A mutation
// (logout, invalidate) bumps it, so an in-flight resolution that
// completes afterwards is discarded instead of resurrecting a cleared
// session.
type SessionService struct {
	backend ports.Backend
	tokens  ports.TokenStore
	log     zerolog.Logger

	mu   sync.Mutex
	gens map[string]uint64
}

func NewSessionService(backend ports.Backend, tokens ports.TokenStore, log zerolog.Logger) *SessionService {
	return &SessionService{
		backend: backend,
		tokens:  tokens,
		log:     log,
		gens:    make(map[string]uint64),
	}
}

func (s *SessionService) generation(sid string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[sid]
}

func (s *SessionService) bump(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[sid]++
}

func (s *SessionService) stillCurrent(sid string, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gens[sid] == gen
}

// Resolve validates a persisted session. Absent token yields
// domain.ErrSessionNotFound; a token the backend rejects clears the
// persisted state and yields domain.ErrSessionExpired. Resolve always
// returns, bounded by the backend round trip.
func (s *SessionService) Resolve(ctx context.Context, sessionID string) (*domain.Session, error) {
	gen := s.generation(sessionID)

	token, err := s.tokens.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	user, err := s.backend.Me(ctx, token)
	if err != nil {
		// Any who-am-I failure clears the persisted token so the next
		// visit starts from a clean login.
		if s.stillCurrent(sessionID, gen) {
			s.clear(ctx, sessionID)
		}
		if domain.IsAuthFailure(err) {
			metrics.AuthFailuresTotal.Inc()
			return nil, domain.ErrSessionExpired
		}
		return nil, err
	}

	if !s.stillCurrent(sessionID, gen) {
		// Session was torn down while the check was in flight.
		return nil, domain.ErrSessionNotFound
	}
	return &domain.Session{User: user, Token: token}, nil
}

// Login authenticates against the backend. On success the returned
// token is persisted under a fresh session id; on failure nothing is
// stored, and a backend 401 maps to domain.ErrInvalidCredentials.
func (s *SessionService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		if domain.IsAuthFailure(err) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	sid := uuid.NewString()
	if err := s.tokens.Set(ctx, sid, res.Token); err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int("user_id", res.User.ID).Msg("staff login")
	return sid, &domain.Session{User: res.User, Token: res.Token}, nil
}

// Logout revokes the token best-effort and always tears the session
// down locally.
func (s *SessionService) Logout(ctx context.Context, sessionID string, token string) {
	s.bump(sessionID)

	if token == "" {
		token, _ = s.tokens.Get(ctx, sessionID)
	}
	if token != "" {
		if err := s.backend.Logout(ctx, token); err != nil {
			s.log.Warn().Err(err).Msg("backend logout failed, clearing session anyway")
		}
	}
	if err := s.tokens.Delete(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Msg("token delete failed")
	}
	s.log.Info().Msg("staff logout")
}

// Invalidate clears a session after a backend call reported an
// authentication failure mid-request.
func (s *SessionService) Invalidate(ctx context.Context, sessionID string) {
	s.bump(sessionID)
	s.clear(ctx, sessionID)
	metrics.AuthFailuresTotal.Inc()
}

func (s *SessionService) clear(ctx context.Context, sessionID string) {
	if err := s.tokens.Delete(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Msg("token delete failed")
	}
}
