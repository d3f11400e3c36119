package messaging

import (
	"context"
	"errors"
	"hash/fnv"
	"log/slog"
	"strings"
	"sync"

	livev1 "wahlfang/contracts/gen/live/v1"
)

var (
	ErrEmptyGroup = errors.New("bus group key is required")
	ErrNilSink    = errors.New("bus sink is required")
)

const shardCount = 32

// Sink receives notifications for one subscribed connection. A sink is
// identified by the channel value itself, so subscribing the same channel
// twice keeps a single registration.
type Sink = chan<- livev1.Notification

// MemoryBus is the in-process group fan-out used by a single instance.
// Groups are spread over shards so publishes to unrelated groups never
// contend on one lock.
type MemoryBus struct {
	shards [shardCount]shard
	logger *slog.Logger
}

type shard struct {
	mu     sync.RWMutex
	groups map[string]map[Sink]struct{}
}

func NewMemoryBus(logger *slog.Logger) *MemoryBus {
	if logger == nil {
		logger = slog.Default()
	}
	bus := &MemoryBus{logger: logger}
	for i := range bus.shards {
		bus.shards[i].groups = make(map[string]map[Sink]struct{})
	}
	return bus
}

func (b *MemoryBus) shardFor(group string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(group))
	return &b.shards[h.Sum32()%shardCount]
}

func (b *MemoryBus) Subscribe(_ context.Context, group string, sink Sink) error {
	group = strings.TrimSpace(group)
	if group == "" {
		return ErrEmptyGroup
	}
	if sink == nil {
		return ErrNilSink
	}

	s := b.shardFor(group)
	s.mu.Lock()
	defer s.mu.Unlock()
	sinks, ok := s.groups[group]
	if !ok {
		sinks = make(map[Sink]struct{})
		s.groups[group] = sinks
	}
	sinks[sink] = struct{}{}
	return nil
}

// Unsubscribe removes the sink from the group. Unknown sinks and groups are
// ignored. Once Unsubscribe returns no publish can reach the sink anymore.
func (b *MemoryBus) Unsubscribe(_ context.Context, group string, sink Sink) error {
	group = strings.TrimSpace(group)
	if group == "" || sink == nil {
		return nil
	}

	s := b.shardFor(group)
	s.mu.Lock()
	defer s.mu.Unlock()
	sinks, ok := s.groups[group]
	if !ok {
		return nil
	}
	delete(sinks, sink)
	if len(sinks) == 0 {
		delete(s.groups, group)
	}
	return nil
}

// Publish delivers msg to every sink currently subscribed to group. Delivery
// never blocks: a sink whose buffer is full misses the message.
func (b *MemoryBus) Publish(ctx context.Context, group string, msg livev1.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	group = strings.TrimSpace(group)
	if group == "" {
		return ErrEmptyGroup
	}

	s := b.shardFor(group)
	delivered, dropped := 0, 0
	// Sends happen under the read lock so Unsubscribe cannot return while a
	// send to the removed sink is still in flight.
	s.mu.RLock()
	for sink := range s.groups[group] {
		select {
		case sink <- msg:
			delivered++
		default:
			dropped++
		}
	}
	s.mu.RUnlock()

	if dropped > 0 {
		b.logger.Warn("dropping notification for slow subscriber",
			"event", "bus_publish_drop",
			"module", "internal/platform/messaging",
			"layer", "platform",
			"group", group,
			"table", string(msg.Table),
			"dropped", dropped,
		)
	}
	b.logger.Debug("notification published",
		"event", "bus_publish",
		"module", "internal/platform/messaging",
		"layer", "platform",
		"group", group,
		"table", string(msg.Table),
		"delivered", delivered,
	)
	return nil
}

func (b *MemoryBus) NumGroups() int {
	total := 0
	for i := range b.shards {
		s := &b.shards[i]
		s.mu.RLock()
		total += len(s.groups)
		s.mu.RUnlock()
	}
	return total
}

func (b *MemoryBus) NumSinks(group string) int {
	s := b.shardFor(strings.TrimSpace(group))
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.groups[strings.TrimSpace(group)])
}
