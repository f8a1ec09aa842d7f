package notification

import (
	"fmt"
	"sync"
	"time"

	"handyhub/models"

	"go.uber.org/zap"
)

// Notifier raises transient user-visible messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Log writes notifications to a zap logger.
type Log struct {
	Logger *zap.Logger
}

func (l Log) Success(msg string) { l.Logger.Info(msg, zap.String("level", string(models.NotifySuccess))) }
func (l Log) Error(msg string)   { l.Logger.Warn(msg, zap.String("level", string(models.NotifyError))) }
func (l Log) Info(msg string)    { l.Logger.Info(msg, zap.String("level", string(models.NotifyInfo))) }

// Recorder buffers notifications until they are drained.
type Recorder struct {
	mu    sync.Mutex
	limit int
	items []models.Notification
	now   func() time.Time
}

// NewRecorder keeps at most limit notifications, dropping the oldest.
func NewRecorder(limit int, now func() time.Time) *Recorder {
	if limit <= 0 {
		limit = 50
	}
	if now == nil {
		now = time.Now
	}
	return &Recorder{limit: limit, now: now}
}

func (r *Recorder) add(level models.NotificationLevel, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, models.Notification{Level: level, Message: msg, CreatedAt: r.now()})
	if over := len(r.items) - r.limit; over > 0 {
		r.items = r.items[over:]
	}
}

func (r *Recorder) Success(msg string) { r.add(models.NotifySuccess, msg) }
func (r *Recorder) Error(msg string)   { r.add(models.NotifyError, msg) }
func (r *Recorder) Info(msg string)    { r.add(models.NotifyInfo, msg) }

// Drain returns and clears the buffered notifications.
func (r *Recorder) Drain() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.items
	r.items = nil
	if out == nil {
		out = []models.Notification{}
	}
	return out
}

// Peek returns the buffered notifications without clearing them.
func (r *Recorder) Peek() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Notification(nil), r.items...)
}

// Messages is a convenience for callers that only care about text.
func (r *Recorder) Messages() []string {
	items := r.Peek()
	out := make([]string, 0, len(items))
	for _, n := range items {
		out = append(out, fmt.Sprintf("%s: %s", n.Level, n.Message))
	}
	return out
}

type multi []Notifier

// Multi fans each notification out to every non-nil notifier.
func Multi(ns ...Notifier) Notifier {
	var out multi
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (m multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}

func (m multi) Info(msg string) {
	for _, n := range m {
		n.Info(msg)
	}
}

// Discard drops everything.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
func (Discard) Info(string)    {}
