package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// HostBridge talks to the native shell hosting the app.
type HostBridge interface {
	SetStatusBarColor(ctx context.Context, color string) error
	KeepAwake(ctx context.Context) error
}

// Noop is used when no host is attached.
type Noop struct{}

func (Noop) SetStatusBarColor(context.Context, string) error { return nil }
func (Noop) KeepAwake(context.Context) error                 { return nil }

// HTTPBridge posts commands to a host listening on BaseURL.
type HTTPBridge struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPBridge(baseURL string) *HTTPBridge {
	return &HTTPBridge{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type command struct {
	Action string `json:"action"`
	Value  string `json:"value,omitempty"`
}

func (b *HTTPBridge) SetStatusBarColor(ctx context.Context, color string) error {
	return b.post(ctx, "/status-bar", command{Action: "setBackgroundColor", Value: color})
}

func (b *HTTPBridge) KeepAwake(ctx context.Context) error {
	return b.post(ctx, "/keep-awake", command{Action: "keepAwake"})
}

func (b *HTTPBridge) post(ctx context.Context, path string, cmd command) error {
	body, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to encode bridge command: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build bridge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.Client.Do(req)
	if err != nil {
		return fmt.Errorf("bridge %s failed: %w", cmd.Action, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("bridge %s returned %s", cmd.Action, resp.Status)
	}
	return nil
}

// New picks the HTTP bridge when a host URL is configured.
func New(hostURL string) HostBridge {
	if hostURL == "" {
		return Noop{}
	}
	return NewHTTPBridge(hostURL)
}

// Setup applies the startup host calls. Failures are logged and never fatal.
func Setup(ctx context.Context, b HostBridge, statusBarColor string, logger *zap.Logger) {
	if b == nil {
		return
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := b.SetStatusBarColor(ctx, statusBarColor); err != nil {
		logger.Warn("Host bridge: failed to set status bar color", zap.String("color", statusBarColor), zap.Error(err))
	}
	if err := b.KeepAwake(ctx); err != nil {
		logger.Warn("Host bridge: failed to keep screen awake", zap.Error(err))
	}
}
