package wsadapter

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"wahlfang/contexts/election-management/live-update-service/domain/entities"
	"wahlfang/contexts/election-management/live-update-service/ports"
)

const (
	DefaultWriteTimeout = 10 * time.Second
	DefaultPingInterval = 30 * time.Second
	maxInboundBytes     = 512
)

var ErrConnClosed = errors.New("websocket connection closed")

type Options struct {
	WriteTimeout time.Duration
	PingInterval time.Duration
}

func (o Options) withDefaults() Options {
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = DefaultWriteTimeout
	}
	if o.PingInterval <= 0 {
		o.PingInterval = DefaultPingInterval
	}
	return o
}

// NewUpgrader accepts same-origin requests, requests without an Origin
// header and the listed origins. A "*" entry allows every origin.
func NewUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin != "" {
			allowed[strings.ToLower(origin)] = struct{}{}
		}
	}
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			if _, ok := allowed["*"]; ok {
				return true
			}
			if _, ok := allowed[strings.ToLower(origin)]; ok {
				return true
			}
			parsed, err := url.Parse(origin)
			if err != nil {
				return false
			}
			return strings.EqualFold(parsed.Host, r.Host)
		},
	}
}

// Conn adapts a gorilla websocket to ports.Conn. Receive is called from one
// goroutine and Send from another; pings and the close frame go through
// WriteControl, which gorilla allows concurrently with both.
type Conn struct {
	ws        *websocket.Conn
	opts      Options
	done      chan struct{}
	closeOnce sync.Once
}

func NewConn(ws *websocket.Conn, opts Options) *Conn {
	opts = opts.withDefaults()
	c := &Conn{
		ws:   ws,
		opts: opts,
		done: make(chan struct{}),
	}

	ws.SetReadLimit(maxInboundBytes)
	_ = ws.SetReadDeadline(time.Now().Add(c.pongWait()))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(c.pongWait()))
	})
	go c.keepalive()
	return c
}

func (c *Conn) pongWait() time.Duration {
	return 2 * c.opts.PingInterval
}

func (c *Conn) keepalive() {
	ticker := time.NewTicker(c.opts.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(c.opts.WriteTimeout)
			if err := c.ws.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				_ = c.ws.Close()
				return
			}
		}
	}
}

func (c *Conn) Receive() error {
	_, _, err := c.ws.ReadMessage()
	return err
}

func (c *Conn) Send(ctx context.Context, msg entities.OutboundMessage) error {
	select {
	case <-c.done:
		return ErrConnClosed
	default:
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	deadline := time.Now().Add(c.opts.WriteTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := c.ws.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return c.ws.WriteJSON(msg)
}

// Close sends a close frame with code and reason and releases the socket.
// Later calls are no-ops.
func (c *Conn) Close(code int, reason string) error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		frame := websocket.FormatCloseMessage(code, reason)
		_ = c.ws.WriteControl(websocket.CloseMessage, frame, time.Now().Add(c.opts.WriteTimeout))
		err = c.ws.Close()
	})
	return err
}

var _ ports.Conn = (*Conn)(nil)
