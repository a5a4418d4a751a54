package pubsub

import (
	"context"
	"encoding/json"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/Pivvot-Consulting/billing-form/internal/usecase/interfaces"
)

const codeChannelPrefix = "operator_codes:"

// RedisCodeBus propagates operator-code mutations through Redis pub/sub,
// one channel per operator, so every dashboard session of the same
// operator (tabs, devices, other instances of this service) observes the
// same stream.

type RedisCodeBus struct {
	client *redis.Client
}

var _ interfaces.ICodeEventBus = (*RedisCodeBus)(nil)

func NewRedisCodeBus(client *redis.Client) *RedisCodeBus {
	return &RedisCodeBus{client: client}
}

func (b *RedisCodeBus) Publish(ctx context.Context, event interfaces.CodeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, codeChannelPrefix+event.OperatorID, payload).Err()
}

func (b *RedisCodeBus) Subscribe(ctx context.Context, operatorID string) (interfaces.ICodeSubscription, error) {
	pubsub := b.client.Subscribe(ctx, codeChannelPrefix+operatorID)

	// Force the SUBSCRIBE round-trip so a broken connection surfaces here
	// instead of as a silently empty feed.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	sub := &redisCodeSubscription{
		pubsub: pubsub,
		events: make(chan interfaces.CodeEvent, 16),
	}
	go sub.pump()
	return sub, nil
}

type redisCodeSubscription struct {
	pubsub *redis.PubSub
	events chan interfaces.CodeEvent
}

func (s *redisCodeSubscription) Events() <-chan interfaces.CodeEvent {
	return s.events
}

func (s *redisCodeSubscription) Close() error {
	// Closing the PubSub ends its channel, which ends pump and closes events.
	return s.pubsub.Close()
}

func (s *redisCodeSubscription) pump() {
	defer close(s.events)
	for msg := range s.pubsub.Channel() {
		var ev interfaces.CodeEvent
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			log.Printf("[code][pubsub] event decode failed channel=%s err=%v", msg.Channel, err)
			continue
		}
		s.events <- ev
	}
}
