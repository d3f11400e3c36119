package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	livev1 "wahlfang/contracts/gen/live/v1"
)

const DefaultChannelPrefix = "wahlfang:live:"

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// ConnectRedis opens a client and verifies the connection with PING.
func ConnectRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	if strings.TrimSpace(cfg.Address) == "" {
		return nil, errors.New("redis address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// RedisBus relays publishes through Redis channels so every instance's local
// subscribers see them. Subscriptions stay process-local.
type RedisBus struct {
	client *redis.Client
	prefix string
	local  *MemoryBus
	logger *slog.Logger
}

func NewRedisBus(client *redis.Client, prefix string, local *MemoryBus, logger *slog.Logger) *RedisBus {
	if logger == nil {
		logger = slog.Default()
	}
	if local == nil {
		local = NewMemoryBus(logger)
	}
	if prefix == "" {
		prefix = DefaultChannelPrefix
	}
	return &RedisBus{
		client: client,
		prefix: prefix,
		local:  local,
		logger: logger,
	}
}

func (b *RedisBus) Close() error {
	return b.client.Close()
}

func (b *RedisBus) Local() *MemoryBus {
	return b.local
}

func (b *RedisBus) Subscribe(ctx context.Context, group string, sink Sink) error {
	return b.local.Subscribe(ctx, group, sink)
}

func (b *RedisBus) Unsubscribe(ctx context.Context, group string, sink Sink) error {
	return b.local.Unsubscribe(ctx, group, sink)
}

func (b *RedisBus) Publish(ctx context.Context, group string, msg livev1.Notification) error {
	group = strings.TrimSpace(group)
	if group == "" {
		return ErrEmptyGroup
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	if err := b.client.Publish(ctx, b.prefix+group, payload).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", group, err)
	}
	return nil
}

// Run pattern-subscribes to every group channel and fans received messages
// into the local bus. It returns when ctx is cancelled.
func (b *RedisBus) Run(ctx context.Context) error {
	pubsub := b.client.PSubscribe(ctx, b.prefix+"*")
	defer func() {
		_ = pubsub.Close()
	}()
	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("redis psubscribe: %w", err)
	}

	b.logger.Info("redis relay started",
		"event", "bus_relay_started",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"pattern", b.prefix+"*",
	)

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case raw, ok := <-messages:
			if !ok {
				return nil
			}
			b.relay(ctx, raw)
		}
	}
}

func (b *RedisBus) relay(ctx context.Context, raw *redis.Message) {
	group := strings.TrimPrefix(raw.Channel, b.prefix)
	var msg livev1.Notification
	if err := json.Unmarshal([]byte(raw.Payload), &msg); err != nil {
		b.logger.Warn("discarding malformed relay payload",
			"event", "bus_relay_decode_failed",
			"module", "internal/platform/messaging",
			"layer", "platform",
			"channel", raw.Channel,
			"error", err.Error(),
		)
		return
	}
	if err := b.local.Publish(ctx, group, msg); err != nil {
		b.logger.Warn("relay publish failed",
			"event", "bus_relay_publish_failed",
			"module", "internal/platform/messaging",
			"layer", "platform",
			"group", group,
			"error", err.Error(),
		)
	}
}
