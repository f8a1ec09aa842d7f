package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-redis/redis/v8"
)

// StorageKey is the fixed slot the serialized session lives under.
const StorageKey = "handyhub_user"

// ErrNoRecord is returned by Load when nothing has been saved.
var ErrNoRecord = errors.New("no session record")

// Record is the durable local slot for one device's session.
type Record interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}

// KeyFor scopes StorageKey to a device for backends shared by many devices.
func KeyFor(deviceID string) string {
	if deviceID == "" {
		return StorageKey
	}
	return StorageKey + ":" + deviceID
}

// MemoryRecord keeps the record in process memory.
type MemoryRecord struct {
	mu   sync.Mutex
	data []byte
}

func (m *MemoryRecord) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNoRecord
	}
	return append([]byte(nil), m.data...), nil
}

func (m *MemoryRecord) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *MemoryRecord) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

// FileRecord stores the record as a single file, the server-side stand-in for browser local storage.
type FileRecord struct {
	Path string
}

// NewFileRecord places the record for deviceID under dir. The device id is
// hashed so header values never reach the filesystem as path segments.
func NewFileRecord(dir, deviceID string) *FileRecord {
	sum := sha256.Sum256([]byte(deviceID))
	name := fmt.Sprintf("%s-%s.json", StorageKey, hex.EncodeToString(sum[:8]))
	return &FileRecord{Path: filepath.Join(dir, name)}
}

func (f *FileRecord) Load(context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("read session record: %w", err)
	}
	return data, nil
}

func (f *FileRecord) Save(_ context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session record: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		return fmt.Errorf("replace session record: %w", err)
	}
	return nil
}

func (f *FileRecord) Clear(context.Context) error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session record: %w", err)
	}
	return nil
}

// RedisRecord stores the record under a redis key with no expiry.
type RedisRecord struct {
	Client *redis.Client
	Key    string
}

func NewRedisRecord(client *redis.Client, deviceID string) *RedisRecord {
	return &RedisRecord{Client: client, Key: KeyFor(deviceID)}
}

func (r *RedisRecord) Load(ctx context.Context) ([]byte, error) {
	data, err := r.Client.Get(ctx, r.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session record: %w", err)
	}
	return data, nil
}

func (r *RedisRecord) Save(ctx context.Context, data []byte) error {
	if err := r.Client.Set(ctx, r.Key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session record: %w", err)
	}
	return nil
}

func (r *RedisRecord) Clear(ctx context.Context) error {
	if err := r.Client.Del(ctx, r.Key).Err(); err != nil {
		return fmt.Errorf("failed to clear session record: %w", err)
	}
	return nil
}
