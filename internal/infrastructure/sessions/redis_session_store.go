package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Pivvot-Consulting/billing-form/internal/domain/entities"
	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"
)

const (
	accessKeyPrefix  = "session:access:"
	refreshKeyPrefix = "session:refresh:"
)

// RedisSessionStore keeps operator sessions in Redis with a TTL matching
// the session expiry, so revocation and expiry are enforced by the store
// itself. The refresh key is an indirection to the access key; both
// disappear together.

type RedisSessionStore struct {
	client *redis.Client
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, session entities.OperatorSession) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, accessKeyPrefix+session.AccessToken, payload, ttl)
	pipe.Set(ctx, refreshKeyPrefix+session.RefreshToken, session.AccessToken, ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisSessionStore) GetByAccessToken(ctx context.Context, token string) (entities.OperatorSession, error) {
	payload, err := s.client.Get(ctx, accessKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.OperatorSession{}, nil
	}
	if err != nil {
		return entities.OperatorSession{}, err
	}

	var session entities.OperatorSession
	if err := json.Unmarshal(payload, &session); err != nil {
		return entities.OperatorSession{}, err
	}
	return session, nil
}

func (s *RedisSessionStore) GetByRefreshToken(ctx context.Context, token string) (entities.OperatorSession, error) {
	accessToken, err := s.client.Get(ctx, refreshKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return entities.OperatorSession{}, nil
	}
	if err != nil {
		return entities.OperatorSession{}, err
	}
	return s.GetByAccessToken(ctx, accessToken)
}

func (s *RedisSessionStore) Delete(ctx context.Context, accessToken string) error {
	session, err := s.GetByAccessToken(ctx, accessToken)
	if err != nil {
		return err
	}

	keys := []string{accessKeyPrefix + accessToken}
	if session.RefreshToken != "" {
		keys = append(keys, refreshKeyPrefix+session.RefreshToken)
	}
	return s.client.Del(ctx, keys...).Err()
}
