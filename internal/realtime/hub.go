package realtime

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"

	"github.com/emerginginv/traceaid/pkg/logger"
)

// Hub fans notification payloads out to connected SSE streams. It runs an
// embedded NATS server so a single binary needs no external broker; subjects
// are scoped per organization and user.
type Hub struct {
	server *server.Server
	nc     *nats.Conn
	port   int
}

type Config struct {
	Port int
}

func DefaultConfig() *Config {
	return &Config{Port: 4222}
}

func New(cfg *Config) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Hub{port: cfg.Port}
}

func (h *Hub) Start() error {
	opts := &server.Options{
		Port: h.port,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		return fmt.Errorf("failed to create NATS server: %w", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(10 * time.Second) {
		return fmt.Errorf("NATS server not ready for connections")
	}

	h.server = ns

	nc, err := nats.Connect(ns.ClientURL(),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			logger.Error("NATS error", "err", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to embedded NATS: %w", err)
	}

	h.nc = nc
	logger.Info("Embedded NATS server started", "port", h.port)
	return nil
}

// Connect joins an already-running hub over the network instead of embedding
// a server. The worker uses this to reach the API process's broker.
func Connect(url string) (*Hub, error) {
	nc, err := nats.Connect(url,
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			logger.Error("NATS error", "err", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	return &Hub{nc: nc}, nil
}

func subject(orgID, userID int64) string {
	return fmt.Sprintf("notify.%d.%d", orgID, userID)
}

func (h *Hub) Publish(orgID, userID int64, data []byte) error {
	if h.nc == nil {
		return fmt.Errorf("realtime hub not started")
	}
	return h.nc.Publish(subject(orgID, userID), data)
}

// Subscribe delivers payloads for one user until the context is cancelled.
// Slow consumers drop messages rather than block the hub. The channel is
// never closed: Unsubscribe does not wait for an in-flight callback, so a
// close here could race a concurrent send. Readers must select on their
// context instead.
func (h *Hub) Subscribe(ctx context.Context, orgID, userID int64) (<-chan []byte, error) {
	if h.nc == nil {
		return nil, fmt.Errorf("realtime hub not started")
	}

	out := make(chan []byte, 32)
	sub, err := h.nc.Subscribe(subject(orgID, userID), func(msg *nats.Msg) {
		select {
		case out <- msg.Data:
		default:
		}
	})
	if err != nil {
		return nil, err
	}

	go func() {
		<-ctx.Done()
		_ = sub.Unsubscribe()
	}()

	return out, nil
}

func (h *Hub) HealthCheck() error {
	if h.nc == nil || !h.nc.IsConnected() {
		return fmt.Errorf("NATS not connected")
	}
	if h.server != nil && !h.server.Running() {
		return fmt.Errorf("NATS server not running")
	}
	return nil
}

func (h *Hub) Shutdown() {
	if h.nc != nil {
		h.nc.Close()
	}
	if h.server != nil {
		h.server.Shutdown()
		h.server.WaitForShutdown()
	}
}
