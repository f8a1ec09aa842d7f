package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseRecord(t *testing.T, rec Record) {
	t.Helper()
	ctx := context.Background()

	_, err := rec.Load(ctx)
	assert.ErrorIs(t, err, ErrNoRecord)

	require.NoError(t, rec.Save(ctx, []byte(`{"id":"1"}`)))
	data, err := rec.Load(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(data))

	require.NoError(t, rec.Clear(ctx))
	require.NoError(t, rec.Clear(ctx))
	_, err = rec.Load(ctx)
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestMemoryRecord(t *testing.T) {
	exerciseRecord(t, &MemoryRecord{})
}

func TestFileRecord(t *testing.T) {
	dir := t.TempDir()
	rec := NewFileRecord(filepath.Join(dir, "sessions"), "../../etc/passwd")

	assert.Equal(t, filepath.Join(dir, "sessions"), filepath.Dir(rec.Path))
	assert.True(t, strings.HasPrefix(filepath.Base(rec.Path), StorageKey+"-"))
	exerciseRecord(t, rec)
}

func TestFileRecordSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first := NewStore(Options{Record: NewFileRecord(dir, "dev-1")})
	_, err := first.Login(ctx, "provider@example.com", "password")
	require.NoError(t, err)

	second := NewStore(Options{Record: NewFileRecord(dir, "dev-1")})
	require.True(t, second.Restore(ctx))
	sess, _ := second.Current()
	assert.Equal(t, "Jane Provider", sess.Name)

	other := NewStore(Options{Record: NewFileRecord(dir, "dev-2")})
	assert.False(t, other.Restore(ctx))
}

func TestFileRecordCorruptFileIsAbsent(t *testing.T) {
	dir := t.TempDir()
	rec := NewFileRecord(dir, "dev")
	require.NoError(t, os.WriteFile(rec.Path, []byte("\x00\x01"), 0o600))

	store := NewStore(Options{Record: rec})
	assert.False(t, store.Restore(context.Background()))
}

func TestRedisRecord(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rec := NewRedisRecord(client, "dev-9")
	assert.Equal(t, "handyhub_user:dev-9", rec.Key)
	exerciseRecord(t, rec)

	require.NoError(t, rec.Save(context.Background(), []byte("x")))
	assert.Equal(t, "x", func() string { v, _ := mr.Get("handyhub_user:dev-9"); return v }())
	assert.Zero(t, mr.TTL("handyhub_user:dev-9"))
}

func TestKeyFor(t *testing.T) {
	assert.Equal(t, StorageKey, KeyFor(""))
	assert.Equal(t, "handyhub_user:abc", KeyFor("abc"))
}

func TestSealedRecord(t *testing.T) {
	inner := &MemoryRecord{}
	rec, err := NewSealedRecord(inner, "s3cret")
	require.NoError(t, err)
	exerciseRecord(t, rec)

	ctx := context.Background()
	require.NoError(t, rec.Save(ctx, []byte(`{"email":"a@b.co"}`)))
	raw, err := inner.Load(ctx)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "a@b.co")

	other, err := NewSealedRecord(inner, "different")
	require.NoError(t, err)
	_, err = other.Load(ctx)
	assert.ErrorIs(t, err, ErrSealBroken)
}
