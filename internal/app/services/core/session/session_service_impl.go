package session

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository          contracts.RedisRepository
	SessionExpiryTimeInHours int
}

func NewSessionService(redisRepository contracts.RedisRepository, sessionExpiryTimeInHours int) contracts.SessionService {
	return &sessionService{
		RedisRepository:          redisRepository,
		SessionExpiryTimeInHours: sessionExpiryTimeInHours,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	sessionID := utils.GenerateSessionID()
	session.SessionID = sessionID

	expiry := time.Duration(svc.SessionExpiryTimeInHours) * time.Hour
	err := svc.RedisRepository.Set(ctx, constvars.SessionKeyPrefix+sessionID, session, expiry)
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (svc *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, constvars.SessionKeyPrefix+sessionID)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	return sessionData, nil
}

func (svc *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	err := json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, constvars.SessionKeyPrefix+sessionID)
}
