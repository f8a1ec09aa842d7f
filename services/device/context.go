package device

import (
	"context"
	"errors"
	"sync"
	"time"

	"handyhub/models"
	"handyhub/services/emergency"
	"handyhub/services/notification"
	"handyhub/services/session"
	"handyhub/services/timer"
	"handyhub/services/wizard"
	"handyhub/utils"

	"go.uber.org/zap"
)

var (
	ErrNoSession = errors.New("no active session")
	ErrNoWizard  = errors.New("no active wizard")
)

// Context bundles everything one device owns.
type Context struct {
	ID        string
	Store     *session.Store
	Notices   *notification.Recorder
	Nav       *Navigator
	Emergency *emergency.Simulator

	// ready is closed once the stored session has been restored.
	ready chan struct{}

	notify       notification.Notifier
	clock        timer.Clock
	logger       *zap.Logger
	bookingDelay time.Duration

	mu           sync.Mutex
	registration *wizard.Controller
	bookings     map[string]*wizard.Controller
	lastSeen     time.Time
}

// Notifier fans out to the device's notice buffer and the log.
func (d *Context) Notifier() notification.Notifier { return d.notify }

func (d *Context) waitReady(ctx context.Context) {
	select {
	case <-d.ready:
	case <-ctx.Done():
	}
}

func (d *Context) touch(now time.Time) {
	d.mu.Lock()
	d.lastSeen = now
	d.mu.Unlock()
}

func (d *Context) idleSince() time.Time {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.lastSeen
}

// StartRegistration replaces any registration in progress with a fresh one.
func (d *Context) StartRegistration() *wizard.Controller {
	c := wizard.New(wizard.RegistrationFlow(d.Store), d.clock, d.notify, d.Nav)
	d.mu.Lock()
	old := d.registration
	d.registration = c
	d.mu.Unlock()
	if old != nil {
		old.Close()
	}
	return c
}

// Registration returns the active registration wizard. A finished one is dropped.
func (d *Context) Registration() (*wizard.Controller, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.registration == nil {
		return nil, ErrNoWizard
	}
	if d.registration.Done() {
		d.registration = nil
		return nil, ErrNoWizard
	}
	return d.registration, nil
}

// StartBooking opens a booking wizard for svc, replacing one for the same service.
func (d *Context) StartBooking(svc models.ServiceRecord) *wizard.Controller {
	c := wizard.New(wizard.BookingFlow(svc, wizard.BookingOptions{RedirectDelay: d.bookingDelay}), d.clock, d.notify, d.Nav)
	d.mu.Lock()
	old := d.bookings[svc.ID]
	d.bookings[svc.ID] = c
	d.mu.Unlock()
	if old != nil {
		old.Close()
	}
	return c
}

// Booking returns the booking wizard for a service. A completed booking is
// kept so its delayed redirect can still fire.
func (d *Context) Booking(serviceID string) (*wizard.Controller, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.bookings[serviceID]
	if !ok {
		return nil, ErrNoWizard
	}
	return c, nil
}

// EndBooking abandons a booking wizard and cancels anything it scheduled.
func (d *Context) EndBooking(serviceID string) bool {
	d.mu.Lock()
	c, ok := d.bookings[serviceID]
	delete(d.bookings, serviceID)
	d.mu.Unlock()
	if ok {
		c.Close()
	}
	return ok
}

// EmergencyForm returns a one-shot SOS form bound to the device's simulator.
// The caller closes it once submitted.
func (d *Context) EmergencyForm() *wizard.Controller {
	return wizard.New(wizard.EmergencyFlow(d.Emergency), d.clock, d.notify, d.Nav)
}

// IssueToken signs a token for the current session and binds its hash to it.
func (d *Context) IssueToken(issuer *utils.TokenIssuer) (string, error) {
	sess, ok := d.Store.Current()
	if !ok {
		return "", ErrNoSession
	}
	token, err := issuer.GenerateToken(utils.SessionClaims{
		SessionID: sess.ID,
		Email:     sess.Email,
		Role:      string(sess.UserType),
		DeviceID:  d.ID,
	})
	if err != nil {
		return "", err
	}
	if !d.Store.BindToken(sess.ID, utils.HashToken(token)) {
		return "", ErrNoSession
	}
	return token, nil
}

// Logout ends the session and discards per-session state.
func (d *Context) Logout(ctx context.Context) {
	d.closeWizards()
	d.Emergency.Reset()
	d.Store.Logout(ctx)
	d.logger.Info("Device logged out", zap.String("deviceID", d.ID))
}

func (d *Context) closeWizards() {
	d.mu.Lock()
	reg := d.registration
	bookings := d.bookings
	d.registration = nil
	d.bookings = make(map[string]*wizard.Controller)
	d.mu.Unlock()

	if reg != nil {
		reg.Close()
	}
	for _, c := range bookings {
		c.Close()
	}
}

// Close tears the device down, cancelling every pending timer.
func (d *Context) Close() {
	d.closeWizards()
	d.Emergency.Close()
}
