package bridge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestHTTPBridgeSetup(t *testing.T) {
	var mu sync.Mutex
	got := map[string]command{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cmd command
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&cmd))
		mu.Lock()
		got[r.URL.Path] = cmd
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	core, logs := observer.New(zap.WarnLevel)
	Setup(context.Background(), New(srv.URL+"/"), "#0e95e9", zap.New(core))

	assert.Equal(t, "#0e95e9", got["/status-bar"].Value)
	assert.Equal(t, "keepAwake", got["/keep-awake"].Action)
	assert.Zero(t, logs.Len())
}

func TestSetupFailuresAreNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	core, logs := observer.New(zap.WarnLevel)
	Setup(context.Background(), New(srv.URL), "#000000", zap.New(core))

	assert.Equal(t, 2, logs.Len())
}

func TestNewWithoutHost(t *testing.T) {
	b := New("")
	assert.IsType(t, Noop{}, b)
	assert.NoError(t, b.SetStatusBarColor(context.Background(), "#fff"))
	assert.NoError(t, b.KeepAwake(context.Background()))
}
