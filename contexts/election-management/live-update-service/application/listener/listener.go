package listener

import (
	"context"
	"log/slog"
	"time"

	"wahlfang/contexts/election-management/live-update-service/application"
	"wahlfang/contexts/election-management/live-update-service/ports"
	livev1 "wahlfang/contracts/gen/live/v1"
)

const (
	moduleName            = "election-management/live-update-service"
	DefaultPublishTimeout = 2 * time.Second
)

// Listener turns committed writes into bus notifications. It is the commit
// hook of the persistence layer and never reports failure back to it.
type Listener struct {
	Bus            ports.Bus
	ManagerFanout  bool
	PublishTimeout time.Duration
	Logger         *slog.Logger
}

// AfterCommit publishes one notification to the session group of the
// changed entity and, with manager fan-out enabled, one to each of the
// session's manager groups.
func (l Listener) AfterCommit(ctx context.Context, event livev1.ChangeEvent) {
	logger := application.ResolveLogger(l.Logger)

	table, ok := livev1.TableFor(event.Entity)
	if !ok || event.SessionID <= 0 {
		logger.Warn("change event without routable owner",
			"event", "live_change_unroutable",
			"module", moduleName,
			"layer", "application",
			"entity", string(event.Entity),
			"entity_id", event.EntityID,
			"session_id", event.SessionID,
		)
		return
	}

	timeout := l.PublishTimeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	// The write already committed; a cancelled request must not suppress
	// its notification.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	sessionGroup := livev1.SessionGroup(event.SessionID)
	l.publish(publishCtx, logger, event, livev1.Notification{
		Type:     livev1.NotificationTypeUpdate,
		Table:    table,
		GroupKey: sessionGroup,
		EntityID: event.EntityID,
	})

	if !l.ManagerFanout {
		return
	}
	for _, managerID := range event.ManagerIDs {
		if managerID <= 0 {
			continue
		}
		l.publish(publishCtx, logger, event, livev1.Notification{
			Type:      livev1.NotificationTypeUpdate,
			Table:     table,
			GroupKey:  livev1.ManagerGroup(managerID),
			SessionID: event.SessionID,
			EntityID:  event.EntityID,
		})
	}
}

func (l Listener) publish(ctx context.Context, logger *slog.Logger, event livev1.ChangeEvent, msg livev1.Notification) {
	if err := l.Bus.Publish(ctx, msg.GroupKey, msg); err != nil {
		logger.Error("notification publish failed",
			"event", "live_publish_failed",
			"module", moduleName,
			"layer", "application",
			"group", msg.GroupKey,
			"table", string(msg.Table),
			"entity", string(event.Entity),
			"entity_id", event.EntityID,
			"change", string(event.Change),
			"error", err.Error(),
		)
		return
	}
	logger.Debug("notification published",
		"event", "live_notification_published",
		"module", moduleName,
		"layer", "application",
		"group", msg.GroupKey,
		"table", string(msg.Table),
		"entity", string(event.Entity),
		"change", string(event.Change),
	)
}
