// Package device keeps one context per client device, keyed by the
// X-Device-ID header, and evicts contexts that go idle.
package device

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"handyhub/config"
	"handyhub/services/emergency"
	"handyhub/services/notification"
	"handyhub/services/session"
	"handyhub/services/timer"
	"handyhub/services/wizard"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RecordFactory builds the durable session record of a device.
type RecordFactory func(deviceID string) session.Record

// Records picks the session backend named by cfg. A configured session
// secret seals every record at rest.
func Records(cfg config.Config, client *redis.Client) (RecordFactory, error) {
	base, err := backend(cfg, client)
	if err != nil {
		return nil, err
	}
	if cfg.SessionSecret == "" {
		return base, nil
	}
	if _, err := session.NewSealedRecord(&session.MemoryRecord{}, cfg.SessionSecret); err != nil {
		return nil, err
	}
	secret := cfg.SessionSecret
	return func(id string) session.Record {
		sealed, _ := session.NewSealedRecord(base(id), secret)
		return sealed
	}, nil
}

func backend(cfg config.Config, client *redis.Client) (RecordFactory, error) {
	switch strings.ToLower(cfg.SessionBackend) {
	case "", "file":
		dir := cfg.SessionDir
		return func(id string) session.Record { return session.NewFileRecord(dir, id) }, nil
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("session backend redis requires a redis client")
		}
		return func(id string) session.Record { return session.NewRedisRecord(client, id) }, nil
	case "memory":
		return func(string) session.Record { return &session.MemoryRecord{} }, nil
	}
	return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
}

type Options struct {
	Records RecordFactory
	Clock   timer.Clock
	Logger  *zap.Logger

	LoginDelay             time.Duration
	RegisterDelay          time.Duration
	BookingRedirectDelay   time.Duration
	EmergencySearchDelay   time.Duration
	EmergencyDispatchDelay time.Duration
	IdleTTL                time.Duration
}

// OptionsFromConfig maps configuration onto registry options.
func OptionsFromConfig(cfg config.Config, records RecordFactory, logger *zap.Logger) Options {
	return Options{
		Records:                records,
		Logger:                 logger,
		LoginDelay:             cfg.LoginDelay,
		RegisterDelay:          cfg.RegisterDelay,
		BookingRedirectDelay:   cfg.BookingRedirectDelay,
		EmergencySearchDelay:   cfg.EmergencySearchDelay,
		EmergencyDispatchDelay: cfg.EmergencyDispatchDelay,
		IdleTTL:                cfg.DeviceIdleTTL,
	}
}

type Registry struct {
	opts   Options
	logger *zap.Logger

	mu      sync.Mutex
	devices map[string]*Context
}

func NewRegistry(opts Options) *Registry {
	if opts.Records == nil {
		opts.Records = func(string) session.Record { return &session.MemoryRecord{} }
	}
	if opts.Clock == nil {
		opts.Clock = timer.Real{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Registry{opts: opts, logger: opts.Logger, devices: make(map[string]*Context)}
}

// Get returns the context for id, creating and restoring it on first use.
// Concurrent callers for a device being created wait until its session
// has been restored.
func (r *Registry) Get(ctx context.Context, id string) *Context {
	now := r.opts.Clock.Now()

	r.mu.Lock()
	if d, ok := r.devices[id]; ok {
		r.mu.Unlock()
		d.touch(now)
		d.waitReady(ctx)
		return d
	}
	d := r.newContext(id)
	d.lastSeen = now
	r.devices[id] = d
	r.mu.Unlock()

	defer close(d.ready)
	if d.Store.Restore(ctx) {
		r.logger.Info("Restored device session", zap.String("deviceID", id))
	}
	return d
}

func (r *Registry) newContext(id string) *Context {
	logger := r.logger.With(zap.String("deviceID", id))
	notices := notification.NewRecorder(50, r.opts.Clock.Now)
	notify := notification.Multi(notices, notification.Log{Logger: logger})

	return &Context{
		ID:      id,
		Notices: notices,
		Nav:     NewNavigator(),
		ready:   make(chan struct{}),
		Store: session.NewStore(session.Options{
			Record:        r.opts.Records(id),
			Notifier:      notify,
			Logger:        logger,
			LoginDelay:    r.opts.LoginDelay,
			RegisterDelay: r.opts.RegisterDelay,
		}),
		Emergency: emergency.New(emergency.Options{
			Clock:         r.opts.Clock,
			Notifier:      notify,
			Logger:        logger,
			SearchDelay:   r.opts.EmergencySearchDelay,
			DispatchDelay: r.opts.EmergencyDispatchDelay,
		}),
		notify:       notify,
		clock:        r.opts.Clock,
		logger:       logger,
		bookingDelay: r.opts.BookingRedirectDelay,
		bookings:     make(map[string]*wizard.Controller),
	}
}

// Evict tears down one device. Its durable session record is kept.
func (r *Registry) Evict(id string) bool {
	r.mu.Lock()
	d, ok := r.devices[id]
	delete(r.devices, id)
	r.mu.Unlock()
	if ok {
		d.Close()
	}
	return ok
}

// Len is the number of live device contexts.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.devices)
}

// Sweep evicts every device idle for longer than the configured TTL.
func (r *Registry) Sweep() int {
	if r.opts.IdleTTL <= 0 {
		return 0
	}
	cutoff := r.opts.Clock.Now().Add(-r.opts.IdleTTL)

	r.mu.Lock()
	var idle []*Context
	for id, d := range r.devices {
		if d.idleSince().Before(cutoff) {
			idle = append(idle, d)
			delete(r.devices, id)
		}
	}
	r.mu.Unlock()

	for _, d := range idle {
		d.Close()
	}
	if len(idle) > 0 {
		r.logger.Info("Evicted idle devices", zap.Int("count", len(idle)))
	}
	return len(idle)
}

// StartSweeper runs Sweep periodically until ctx is done.
func (r *Registry) StartSweeper(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Sweep()
			}
		}
	}()
}

// Close tears down every device.
func (r *Registry) Close() {
	r.mu.Lock()
	devices := r.devices
	r.devices = make(map[string]*Context)
	r.mu.Unlock()

	for _, d := range devices {
		d.Close()
	}
}
