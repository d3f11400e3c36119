package gateway

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"wahlfang/contexts/election-management/live-update-service/application"
	"wahlfang/contexts/election-management/live-update-service/application/auth"
	"wahlfang/contexts/election-management/live-update-service/application/groups"
	"wahlfang/contexts/election-management/live-update-service/domain/entities"
	"wahlfang/contexts/election-management/live-update-service/ports"
	livev1 "wahlfang/contracts/gen/live/v1"
)

const (
	moduleName        = "election-management/live-update-service"
	DefaultSinkBuffer = 16
)

// Gateway runs the per-connection state machine
// connecting -> open -> closed.
type Gateway struct {
	Resolver   auth.Resolver
	Bus        ports.Bus
	Clock      ports.Clock
	IDs        ports.IDGenerator
	SinkBuffer int
	Logger     *slog.Logger

	mu     sync.RWMutex
	open   map[string]entities.ConnectionInfo
	active atomic.Int64
}

func New(
	resolver auth.Resolver,
	bus ports.Bus,
	clock ports.Clock,
	ids ports.IDGenerator,
	sinkBuffer int,
	logger *slog.Logger,
) *Gateway {
	return &Gateway{
		Resolver:   resolver,
		Bus:        bus,
		Clock:      clock,
		IDs:        ids,
		SinkBuffer: sinkBuffer,
		Logger:     logger,
		open:       make(map[string]entities.ConnectionInfo),
	}
}

// Active returns the number of connections currently open.
func (g *Gateway) Active() int64 {
	return g.active.Load()
}

func (g *Gateway) Connections() []entities.ConnectionInfo {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]entities.ConnectionInfo, 0, len(g.open))
	for _, info := range g.open {
		out = append(out, info)
	}
	return out
}

// Serve authenticates conn and forwards its group's notifications until the
// peer disconnects, a send fails or ctx is cancelled. The connection is
// always closed and unsubscribed when Serve returns. Authentication and
// audience failures close with the same code and return the cause.
func (g *Gateway) Serve(
	ctx context.Context,
	conn ports.Conn,
	credential entities.Credential,
	audience entities.Audience,
) error {
	logger := application.ResolveLogger(g.Logger)
	connID, err := g.IDs.NewID(ctx)
	if err != nil {
		_ = conn.Close(entities.CloseInternalError, "connection id unavailable")
		return err
	}
	state := entities.ConnConnecting

	principal, err := g.Resolver.Resolve(ctx, credential)
	if err == nil {
		err = groups.Authorize(principal, audience)
	}
	var group string
	if err == nil {
		group, err = groups.GroupOf(principal)
	}
	if err != nil {
		logger.Info("connection rejected",
			"event", "live_connection_rejected",
			"module", moduleName,
			"layer", "application",
			"connection_id", connID,
			"audience", string(audience),
			"state", string(state),
			"error", err.Error(),
		)
		_ = conn.Close(entities.CloseAuthFailed, entities.CloseAuthFailedText)
		return err
	}

	buffer := g.SinkBuffer
	if buffer <= 0 {
		buffer = DefaultSinkBuffer
	}
	sink := make(chan livev1.Notification, buffer)
	if err := g.Bus.Subscribe(ctx, group, sink); err != nil {
		logger.Error("connection subscribe failed",
			"event", "live_subscribe_failed",
			"module", moduleName,
			"layer", "application",
			"connection_id", connID,
			"group", group,
			"error", err.Error(),
		)
		_ = conn.Close(entities.CloseInternalError, "subscribe failed")
		return err
	}

	state = entities.ConnOpen
	info := entities.ConnectionInfo{
		ConnectionID: connID,
		Principal:    principal,
		Audience:     audience,
		GroupKey:     group,
		OpenedAt:     g.now(),
	}
	g.track(info)
	logger.Info("connection opened",
		"event", "live_connection_opened",
		"module", moduleName,
		"layer", "application",
		"connection_id", connID,
		"principal_kind", string(principal.Kind),
		"group", group,
		"state", string(state),
	)

	closeCode := entities.CloseNormal
	var closeOnce sync.Once
	shutdown := func() {
		closeOnce.Do(func() {
			// Unsubscribe first so nothing is delivered to a closed sink.
			if err := g.Bus.Unsubscribe(context.WithoutCancel(ctx), group, sink); err != nil {
				logger.Warn("connection unsubscribe failed",
					"event", "live_unsubscribe_failed",
					"module", moduleName,
					"layer", "application",
					"connection_id", connID,
					"group", group,
					"error", err.Error(),
				)
			}
			_ = conn.Close(closeCode, "")
			g.untrack(connID)
			state = entities.ConnClosed
			logger.Info("connection closed",
				"event", "live_connection_closed",
				"module", moduleName,
				"layer", "application",
				"connection_id", connID,
				"group", group,
				"state", string(state),
				"close_code", closeCode,
			)
		})
	}
	defer shutdown()

	readErr := make(chan error, 1)
	go func() {
		for {
			if err := conn.Receive(); err != nil {
				readErr <- err
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			closeCode = entities.CloseGoingAway
			return nil
		case <-readErr:
			return nil
		case msg := <-sink:
			if err := conn.Send(ctx, outbound(principal, msg)); err != nil {
				if errors.Is(err, context.Canceled) {
					closeCode = entities.CloseGoingAway
					return nil
				}
				closeCode = entities.CloseInternalError
				logger.Warn("connection send failed",
					"event", "live_send_failed",
					"module", moduleName,
					"layer", "application",
					"connection_id", connID,
					"group", group,
					"error", err.Error(),
				)
				return err
			}
		}
	}
}

func outbound(principal entities.Principal, msg livev1.Notification) entities.OutboundMessage {
	out := entities.OutboundMessage{
		Type:  msg.Type,
		Table: string(msg.Table),
	}
	if out.Type == "" {
		out.Type = livev1.NotificationTypeUpdate
	}
	if principal.Kind == entities.PrincipalManager {
		out.SessionID = msg.SessionID
	}
	return out
}

func (g *Gateway) now() time.Time {
	if g.Clock != nil {
		return g.Clock.Now()
	}
	return time.Now().UTC()
}

func (g *Gateway) track(info entities.ConnectionInfo) {
	g.mu.Lock()
	if g.open == nil {
		g.open = make(map[string]entities.ConnectionInfo)
	}
	g.open[info.ConnectionID] = info
	g.mu.Unlock()
	g.active.Add(1)
}

func (g *Gateway) untrack(connID string) {
	g.mu.Lock()
	delete(g.open, connID)
	g.mu.Unlock()
	g.active.Add(-1)
}
