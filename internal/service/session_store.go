package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"interview-prep/internal/cache"
	"interview-prep/internal/domain"
	"interview-prep/internal/logger"

	"go.uber.org/zap"
)

// SessionStore keeps the state of an in-progress interview flow between stages.
type SessionStore interface {
	Save(ctx context.Context, session *domain.InterviewSession) error
	Get(ctx context.Context, sessionID string) (*domain.InterviewSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// cacheSessionStore implements SessionStore on top of domain.Cache.
type cacheSessionStore struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewSessionStore creates a SessionStore whose entries expire after ttl.
func NewSessionStore(c domain.Cache, ttl time.Duration) SessionStore {
	return &cacheSessionStore{
		cache: c,
		ttl:   ttl,
	}
}

func sessionKey(sessionID string) string {
	return cache.GenerateCacheKey("interview", "session", sessionID)
}

// Save writes the session, refreshing its TTL.
func (s *cacheSessionStore) Save(ctx context.Context, session *domain.InterviewSession) error {
	if session == nil {
		return domain.NewInvalidInputError("cannot store nil session")
	}

	key := sessionKey(session.ID)
	data, err := json.Marshal(session)
	if err != nil {
		logger.Get().Error("Failed to marshal interview session", zap.Error(err), zap.String("sessionID", session.ID))
		return domain.NewInternalError("failed to marshal interview session", err)
	}

	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to store interview session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to store session for key %s", key), err)
	}
	logger.Get().Debug("Stored interview session",
		zap.String("key", key),
		zap.String("stage", string(session.Stage)),
		zap.Duration("ttl", s.ttl))
	return nil
}

// Get loads a session. Unknown or expired ids yield SESSION_NOT_FOUND.
func (s *cacheSessionStore) Get(ctx context.Context, sessionID string) (*domain.InterviewSession, error) {
	key := sessionKey(sessionID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Interview session cache miss", zap.String("key", key))
			return nil, domain.NewSessionNotFoundError(sessionID)
		}
		logger.Get().Error("Failed to load interview session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to load session for key %s", key), err)
	}
	if data == "" {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}

	var session domain.InterviewSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		logger.Get().Error("Failed to unmarshal interview session", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal session for key %s", key), err)
	}
	return &session, nil
}

// Delete discards a session. Deleting an unknown id is not an error.
func (s *cacheSessionStore) Delete(ctx context.Context, sessionID string) error {
	key := sessionKey(sessionID)
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Error("Failed to delete interview session", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to delete session for key %s", key), err)
	}
	return nil
}
