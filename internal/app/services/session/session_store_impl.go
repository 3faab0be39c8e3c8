package session

import (
	"context"
	"time"

	"clinic-portal/internal/app/contracts"
	"clinic-portal/internal/app/models"
	"clinic-portal/internal/pkg/constvars"
	"clinic-portal/internal/pkg/exceptions"
	"clinic-portal/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type sessionStore struct {
	redisRepo contracts.RedisRepository
	ttl       time.Duration
	Log       *zap.Logger
}

// NewSessionStore keeps each session as one Redis hash holding exactly the
// token and user fields, so the two are always written and removed together.
func NewSessionStore(redisRepo contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.SessionStore {
	return &sessionStore{
		redisRepo: redisRepo,
		ttl:       ttl,
		Log:       logger,
	}
}

func sessionKey(sessionID string) string {
	return constvars.RedisSessionKeyPrefix + sessionID
}

func (s *sessionStore) Load(ctx context.Context, sessionID string) *models.Session {
	requestID := utils.RequestIDFromContext(ctx)
	if sessionID == "" {
		return nil
	}

	fields, err := s.redisRepo.GetHash(ctx, sessionKey(sessionID))
	if err != nil {
		s.Log.Warn("sessionStore.Load error reading session, treating as signed out",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}

	token, hasToken := fields[constvars.SessionFieldToken]
	rawUser, hasUser := fields[constvars.SessionFieldUser]
	if !hasToken || !hasUser || token == "" {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.Log.Warn("sessionStore.Load malformed user, treating as signed out",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil
	}

	return &models.Session{Token: token, User: user}
}

func (s *sessionStore) Save(ctx context.Context, sessionID, token string, user models.User) error {
	requestID := utils.RequestIDFromContext(ctx)

	rawUser, err := json.Marshal(user)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.redisRepo.ReplaceHash(ctx, sessionKey(sessionID), map[string]interface{}{
		constvars.SessionFieldToken: token,
		constvars.SessionFieldUser:  string(rawUser),
	}, s.ttl)
	if err != nil {
		s.Log.Error("sessionStore.Save error calling redisRepo.ReplaceHash",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	s.Log.Info("sessionStore.Save succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoleKey, user.Role),
	)
	return nil
}

func (s *sessionStore) Clear(ctx context.Context, sessionID string) error {
	err := s.redisRepo.Delete(ctx, sessionKey(sessionID))
	if err != nil {
		s.Log.Error("sessionStore.Clear error calling redisRepo.Delete",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return err
	}
	return nil
}
