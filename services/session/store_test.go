package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"handyhub/models"
	"handyhub/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *MemoryRecord, *notification.Recorder) {
	t.Helper()
	rec := &MemoryRecord{}
	notes := notification.NewRecorder(0, nil)
	return NewStore(Options{Record: rec, Notifier: notes}), rec, notes
}

func TestLoginAcceptsEveryFixture(t *testing.T) {
	for _, f := range Fixtures {
		t.Run(f.Email, func(t *testing.T) {
			store, rec, notes := newTestStore(t)

			sess, err := store.Login(context.Background(), f.Email, f.Password)
			require.NoError(t, err)
			assert.Equal(t, f.UserType, sess.UserType)
			assert.Equal(t, f.ID, sess.ID)
			assert.True(t, store.IsAuthenticated())
			assert.Equal(t, f.UserType, store.UserType())

			data, err := rec.Load(context.Background())
			require.NoError(t, err)
			assert.NotContains(t, string(data), "password")

			var stored models.Session
			require.NoError(t, json.Unmarshal(data, &stored))
			assert.Equal(t, sess, stored)
			assert.Equal(t, []string{"success: Welcome back, " + f.Name + "!"}, notes.Messages())
		})
	}
}

func TestLoginRejectsUnknownPairs(t *testing.T) {
	cases := []struct{ email, password string }{
		{"customer@example.com", "wrong"},
		{"provider@example.com", ""},
		{"nobody@example.com", "password"},
		{"CUSTOMER@example.com", "password"},
		{"", ""},
	}
	for _, tc := range cases {
		store, rec, notes := newTestStore(t)

		_, err := store.Login(context.Background(), tc.email, tc.password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.False(t, store.IsAuthenticated())
		assert.Equal(t, models.UserType(""), store.UserType())

		_, err = rec.Load(context.Background())
		assert.ErrorIs(t, err, ErrNoRecord)
		assert.Equal(t, []string{"error: Invalid email or password."}, notes.Messages())
	}
}

func TestFailedLoginKeepsExistingSession(t *testing.T) {
	store, _, _ := newTestStore(t)
	_, err := store.Login(context.Background(), "provider@example.com", "password")
	require.NoError(t, err)

	_, err = store.Login(context.Background(), "customer@example.com", "nope")
	require.Error(t, err)

	sess, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, "2", sess.ID)
}

func TestRegisterGeneratesDistinctIDs(t *testing.T) {
	store, _, _ := newTestStore(t)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		sess, err := store.Register(context.Background(), "a@b.co", "secret1", "Ann", models.UserTypeCustomer)
		require.NoError(t, err)
		require.NotEmpty(t, sess.ID)
		assert.False(t, seen[sess.ID], "duplicate id %s", sess.ID)
		seen[sess.ID] = true
	}
}

func TestRegisterStoresSession(t *testing.T) {
	store, rec, notes := newTestStore(t)

	sess, err := store.Register(context.Background(), "jo@example.com", "secret1", "Jo Fixer", models.UserTypeProvider)
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeProvider, store.UserType())

	data, err := rec.Load(context.Background())
	require.NoError(t, err)
	var stored models.Session
	require.NoError(t, json.Unmarshal(data, &stored))
	assert.Equal(t, sess, stored)
	assert.Contains(t, notes.Messages(), "success: Welcome to HandyHub, Jo Fixer!")
}

func TestRegisterRejectsUnknownUserType(t *testing.T) {
	store, _, _ := newTestStore(t)
	_, err := store.Register(context.Background(), "a@b.co", "secret1", "Ann", "admin")
	assert.ErrorIs(t, err, ErrInvalidUserType)
	assert.False(t, store.IsAuthenticated())
}

func TestLogoutIsIdempotent(t *testing.T) {
	store, rec, notes := newTestStore(t)
	_, err := store.Login(context.Background(), "customer@example.com", "password")
	require.NoError(t, err)
	require.True(t, store.BindToken("1", "hash"))

	store.Logout(context.Background())
	store.Logout(context.Background())

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.TokenHash())
	_, err = rec.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoRecord)

	var infos int
	for _, n := range notes.Drain() {
		if n.Level == models.NotifyInfo {
			infos++
		}
	}
	assert.Equal(t, 1, infos)
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("valid record", func(t *testing.T) {
		rec := &MemoryRecord{}
		require.NoError(t, rec.Save(ctx, []byte(`{"id":"1","name":"John Customer","email":"customer@example.com","userType":"customer"}`)))
		store := NewStore(Options{Record: rec})

		assert.True(t, store.Restore(ctx))
		assert.Equal(t, models.UserTypeCustomer, store.UserType())
	})

	t.Run("missing record", func(t *testing.T) {
		store := NewStore(Options{Record: &MemoryRecord{}})
		assert.False(t, store.Restore(ctx))
		assert.False(t, store.IsAuthenticated())
	})

	for name, raw := range map[string]string{
		"garbage":       `{not json`,
		"wrong shape":   `[1,2,3]`,
		"unknown role":  `{"id":"1","userType":"admin"}`,
		"no identifier": `{"name":"x","userType":"customer"}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := &MemoryRecord{}
			require.NoError(t, rec.Save(ctx, []byte(raw)))
			store := NewStore(Options{Record: rec})

			assert.False(t, store.Restore(ctx))
			assert.False(t, store.IsAuthenticated())
		})
	}
}

func TestBindTokenRequiresMatchingSession(t *testing.T) {
	store, _, _ := newTestStore(t)
	assert.False(t, store.BindToken("1", "h"))

	_, err := store.Login(context.Background(), "customer@example.com", "password")
	require.NoError(t, err)
	assert.False(t, store.BindToken("2", "h"))
	assert.True(t, store.BindToken("1", "h"))
	assert.Equal(t, "h", store.TokenHash())
}

func TestLoginDelayHonoursContext(t *testing.T) {
	store := NewStore(Options{LoginDelay: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Login(ctx, "customer@example.com", "password")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, store.IsAuthenticated())
}
