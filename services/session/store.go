package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"handyhub/models"
	"handyhub/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUserType    = errors.New("user type must be customer or provider")
)

// Options configures a Store. Zero values fall back to in-memory, silent defaults.
type Options struct {
	Record        Record
	Notifier      notification.Notifier
	Logger        *zap.Logger
	LoginDelay    time.Duration
	RegisterDelay time.Duration
	NewID         func() string
}

// Store holds at most one Session for a device and mirrors it to a durable Record.
type Store struct {
	record        Record
	notify        notification.Notifier
	logger        *zap.Logger
	loginDelay    time.Duration
	registerDelay time.Duration
	newID         func() string
	credentials   []credential

	mu        sync.RWMutex
	current   *models.Session
	tokenHash string
}

func NewStore(opts Options) *Store {
	s := &Store{
		record:        opts.Record,
		notify:        opts.Notifier,
		logger:        opts.Logger,
		loginDelay:    opts.LoginDelay,
		registerDelay: opts.RegisterDelay,
		newID:         opts.NewID,
		credentials:   defaultCredentials,
	}
	if s.record == nil {
		s.record = &MemoryRecord{}
	}
	if s.notify == nil {
		s.notify = notification.Discard{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.newID == nil {
		s.newID = func() string { return uuid.New().String() }
	}
	return s
}

// Restore loads the session from the durable record. A missing or
// unreadable record leaves the store empty; it is never an error.
func (s *Store) Restore(ctx context.Context) bool {
	data, err := s.record.Load(ctx)
	if errors.Is(err, ErrNoRecord) {
		return false
	}
	if err != nil {
		s.logger.Warn("Restore: failed to read stored session", zap.Error(err))
		return false
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.logger.Warn("Restore: failed to parse stored session", zap.Error(err))
		return false
	}
	if sess.ID == "" || !sess.UserType.Valid() {
		s.logger.Warn("Restore: stored session is incomplete",
			zap.String("id", sess.ID), zap.String("userType", string(sess.UserType)))
		return false
	}

	s.mu.Lock()
	s.current = &sess
	s.tokenHash = ""
	s.mu.Unlock()
	return true
}

// Login succeeds only on an exact match against the known accounts.
func (s *Store) Login(ctx context.Context, email, password string) (models.Session, error) {
	if err := wait(ctx, s.loginDelay); err != nil {
		return models.Session{}, err
	}

	for _, c := range s.credentials {
		if c.session.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)) != nil {
			break
		}
		sess := c.session
		s.set(ctx, sess)
		s.notify.Success(fmt.Sprintf("Welcome back, %s!", sess.Name))
		return sess, nil
	}

	s.logger.Info("Login: credential mismatch", zap.String("email", email))
	s.notify.Error("Invalid email or password.")
	return models.Session{}, ErrInvalidCredentials
}

// Register always creates a new session; there is no uniqueness check.
func (s *Store) Register(ctx context.Context, email, password, name string, userType models.UserType) (models.Session, error) {
	if !userType.Valid() {
		s.notify.Error("Failed to create account.")
		return models.Session{}, ErrInvalidUserType
	}
	if err := wait(ctx, s.registerDelay); err != nil {
		s.notify.Error("Failed to create account.")
		return models.Session{}, err
	}

	sess := models.Session{
		ID:       s.newID(),
		Name:     strings.TrimSpace(name),
		Email:    strings.TrimSpace(email),
		UserType: userType,
	}
	s.set(ctx, sess)
	s.notify.Success(fmt.Sprintf("Welcome to HandyHub, %s!", sess.Name))
	return sess, nil
}

// Logout clears memory and the durable record. Calling it twice is harmless.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	had := s.current != nil
	s.current = nil
	s.tokenHash = ""
	s.mu.Unlock()

	if err := s.record.Clear(ctx); err != nil {
		s.logger.Error("Logout: failed to clear stored session", zap.Error(err))
	}
	if had {
		s.notify.Info("You've been logged out.")
	}
}

func (s *Store) set(ctx context.Context, sess models.Session) {
	s.mu.Lock()
	s.current = &sess
	s.tokenHash = ""
	s.mu.Unlock()

	data, err := json.Marshal(sess)
	if err != nil {
		s.logger.Error("failed to marshal session", zap.Error(err))
		return
	}
	if err := s.record.Save(ctx, data); err != nil {
		s.logger.Error("failed to persist session", zap.Error(err))
	}
}

// Current returns a copy of the active session.
func (s *Store) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// UserType is empty when no session exists.
func (s *Store) UserType() models.UserType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.UserType
}

// BindToken records the hash of the token issued for the session with the given id.
func (s *Store) BindToken(sessionID, hash string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil || s.current.ID != sessionID {
		return false
	}
	s.tokenHash = hash
	return true
}

// TokenHash is the hash bound to the current session, if any.
func (s *Store) TokenHash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokenHash
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
