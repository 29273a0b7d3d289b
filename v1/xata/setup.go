package xata

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/vectoradapters/std/v1/vectorstore"
)

// Store adapts the Xata backend to the vectorstore.Store contract.
//
// One Store owns one logical connection. The handle is established
// lazily and idempotently: Connect on a connected store is a no-op,
// and every operation connects on demand when needed. The store adds
// no locking of its own; it assumes one call in flight per instance.
type Store struct {
	cfg      *Config
	log      *zap.Logger
	tracer   trace.Tracer
	observer *Observer

	api       API
	ownAPI    bool
	connected bool

	// cause of the most recent failed connect, surfaced by
	// CheckConnection when the store is disconnected.
	connectErr error
}

// Option customizes a Store.
type Option func(*Store)

// WithLogger attaches a structured logger. The default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithObserver attaches an operation observer for metrics.
func WithObserver(o *Observer) Option {
	return func(s *Store) {
		s.observer = o
	}
}

// WithAPI substitutes the backend client. Intended for tests and for
// callers that construct their own client; when set, Disconnect keeps
// the client and only flips the connection state.
func WithAPI(api API) Option {
	return func(s *Store) {
		s.api = api
	}
}

// NewStore constructs a Store from Config. No network traffic happens
// here; call Connect (or let the first operation connect lazily).
func NewStore(cfg *Config, opts ...Option) *Store {
	s := &Store{
		cfg:    cfg,
		log:    zap.NewNop(),
		tracer: otel.Tracer("vectoradapters/xata"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect establishes the backend handle. It is idempotent: when
// already connected it returns nil without side effects. On failure
// the store stays disconnected and records the cause.
func (s *Store) Connect(ctx context.Context) error {
	if s.connected {
		return nil
	}

	if err := s.cfg.Validate(); err != nil {
		s.connectErr = err
		s.log.Error("xata connect failed", zap.Error(err))
		return vectorstore.NewError(vectorstore.ErrConnection, "", err)
	}

	if s.api == nil {
		s.api = newRESTClient(s.cfg)
		s.ownAPI = true
	}
	s.connected = true
	s.connectErr = nil
	s.log.Info("xata client connected", zap.String("database_url", s.cfg.DatabaseURL))
	return nil
}

// Disconnect releases the handle. No-op when already disconnected.
func (s *Store) Disconnect() error {
	if !s.connected {
		return nil
	}
	if s.ownAPI {
		s.api = nil
		s.ownAPI = false
	}
	s.connected = false
	s.log.Info("xata client disconnected")
	return nil
}

// CheckConnection performs a cheap authenticated round trip by
// fetching the current identity. If the connection was opened solely
// for the probe, it is closed again afterwards. On failure the store
// is forced to disconnected regardless of prior state.
func (s *Store) CheckConnection(ctx context.Context) vectorstore.Status {
	needClose := !s.connected

	if err := s.Connect(ctx); err != nil {
		return vectorstore.Status{Connected: false, Message: err.Error()}
	}

	if _, err := s.api.GetUser(ctx); err != nil {
		s.log.Error("xata connection check failed", zap.Error(err))
		_ = s.Disconnect()
		s.connectErr = err
		return vectorstore.Status{Connected: false, Message: err.Error()}
	}

	if needClose {
		_ = s.Disconnect()
	}
	return vectorstore.Status{Connected: true}
}

// API returns the underlying backend client, or nil when disconnected.
// Useful for direct access to low-level operations.
func (s *Store) API() API {
	return s.api
}

// handle supplies the live backend client, connecting on demand.
func (s *Store) handle(ctx context.Context) (API, error) {
	if err := s.Connect(ctx); err != nil {
		return nil, err
	}
	return s.api, nil
}

var _ vectorstore.Store = (*Store)(nil)
