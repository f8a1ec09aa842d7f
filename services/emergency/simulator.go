// Package emergency runs the scripted SOS dispatch: a submitted request
// moves from searching to found to dispatched on timers, and can be
// cancelled once a provider is on the way.
package emergency

import (
	"errors"
	"strings"
	"sync"
	"time"

	"handyhub/models"
	"handyhub/services/catalog"
	"handyhub/services/notification"
	"handyhub/services/timer"

	"go.uber.org/zap"
)

const (
	CurrentLocation = "Current Location"
	DispatchETA     = "15-20 minutes"
	DispatchedMsg   = "Emergency service provider dispatched to your location"
	CancelledMsg    = "Emergency request cancelled"
)

var (
	ErrInvalidRequest    = errors.New("invalid emergency request")
	ErrRequestInProgress = errors.New("an emergency request is already in progress")
	ErrNotCancellable    = errors.New("emergency request cannot be cancelled in its current state")
)

var dispatchedProvider = models.DispatchedProvider{
	Name:    "John Smith",
	Role:    "Emergency Plumber",
	Vehicle: "White Van (License: ABC-1234)",
}

type Options struct {
	Clock         timer.Clock
	Notifier      notification.Notifier
	Logger        *zap.Logger
	SearchDelay   time.Duration
	DispatchDelay time.Duration
}

// Simulator holds the emergency request of a single device.
type Simulator struct {
	timers        *timer.Group
	notify        notification.Notifier
	logger        *zap.Logger
	searchDelay   time.Duration
	dispatchDelay time.Duration

	mu     sync.Mutex
	snap   models.EmergencySnapshot
	gen    uint64
	subs   map[int]chan models.EmergencySnapshot
	nextID int
	closed bool
}

func New(opts Options) *Simulator {
	s := &Simulator{
		timers:        timer.NewGroup(opts.Clock),
		notify:        opts.Notifier,
		logger:        opts.Logger,
		searchDelay:   opts.SearchDelay,
		dispatchDelay: opts.DispatchDelay,
		snap:          models.EmergencySnapshot{Status: models.EmergencyInitial},
		subs:          make(map[int]chan models.EmergencySnapshot),
	}
	if s.notify == nil {
		s.notify = notification.Discard{}
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Validate reports every missing or unknown field of req.
func Validate(req models.EmergencyRequest) []models.FieldError {
	var errs []models.FieldError
	if _, ok := catalog.FindEmergencyType(req.ServiceType); !ok {
		errs = append(errs, models.FieldError{Field: "serviceType", Message: "Please select an emergency type"})
	}
	if !req.UseCurrentLocation && strings.TrimSpace(req.Location) == "" {
		errs = append(errs, models.FieldError{Field: "location", Message: "Please enter your location"})
	}
	if strings.TrimSpace(req.ContactNumber) == "" {
		errs = append(errs, models.FieldError{Field: "contactNumber", Message: "Please enter your contact number"})
	}
	return errs
}

// Submit starts the dispatch script. Validation problems are returned
// alongside ErrInvalidRequest and raised as error notifications.
func (s *Simulator) Submit(req models.EmergencyRequest) ([]models.FieldError, error) {
	s.mu.Lock()
	if s.closed || s.snap.Status != models.EmergencyInitial {
		s.mu.Unlock()
		return nil, ErrRequestInProgress
	}
	if errs := Validate(req); len(errs) > 0 {
		s.mu.Unlock()
		for _, e := range errs {
			s.notify.Error(e.Message)
		}
		return errs, ErrInvalidRequest
	}

	location := strings.TrimSpace(req.Location)
	if req.UseCurrentLocation {
		location = CurrentLocation
	}
	s.snap = models.EmergencySnapshot{
		Status:        models.EmergencySearching,
		ServiceType:   req.ServiceType,
		Location:      location,
		ContactNumber: strings.TrimSpace(req.ContactNumber),
	}
	s.gen++
	gen := s.gen
	s.publishLocked()
	s.mu.Unlock()

	s.logger.Info("Emergency request submitted",
		zap.String("serviceType", req.ServiceType),
		zap.String("location", location))
	s.timers.AfterFunc(s.searchDelay, func() { s.onFound(gen) })
	return nil, nil
}

func (s *Simulator) onFound(gen uint64) {
	s.mu.Lock()
	if s.gen != gen || s.snap.Status != models.EmergencySearching {
		s.mu.Unlock()
		return
	}
	s.snap.Status = models.EmergencyFound
	s.publishLocked()
	s.mu.Unlock()

	s.timers.AfterFunc(s.dispatchDelay, func() { s.onDispatched(gen) })
}

func (s *Simulator) onDispatched(gen uint64) {
	s.mu.Lock()
	if s.gen != gen || s.snap.Status != models.EmergencyFound {
		s.mu.Unlock()
		return
	}
	p := dispatchedProvider
	s.snap.Status = models.EmergencyDispatched
	s.snap.ETA = DispatchETA
	s.snap.Provider = &p
	s.publishLocked()
	s.mu.Unlock()

	s.logger.Info("Emergency provider dispatched", zap.String("provider", p.Name))
	s.notify.Success(DispatchedMsg)
}

// Cancel clears a dispatched request back to the initial state.
func (s *Simulator) Cancel() error {
	s.mu.Lock()
	if s.snap.Status != models.EmergencyDispatched {
		s.mu.Unlock()
		return ErrNotCancellable
	}
	s.snap = models.EmergencySnapshot{Status: models.EmergencyInitial}
	s.gen++
	s.publishLocked()
	s.mu.Unlock()

	s.notify.Info(CancelledMsg)
	return nil
}

// Reset drops any request in flight, whatever its state.
func (s *Simulator) Reset() {
	s.timers.CancelAll()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.snap.Status == models.EmergencyInitial {
		return
	}
	s.snap = models.EmergencySnapshot{Status: models.EmergencyInitial}
	s.publishLocked()
}

func (s *Simulator) Snapshot() models.EmergencySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSnapshot(s.snap)
}

// Subscribe streams snapshots, starting with the current one. Slow readers
// only ever miss intermediate states, never the latest. The returned func
// unsubscribes and closes the channel.
func (s *Simulator) Subscribe() (<-chan models.EmergencySnapshot, func()) {
	ch := make(chan models.EmergencySnapshot, 1)

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = ch
	ch <- cloneSnapshot(s.snap)
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// Close cancels pending timers and ends every subscription.
func (s *Simulator) Close() {
	s.timers.Close()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *Simulator) publishLocked() {
	for _, ch := range s.subs {
		snap := cloneSnapshot(s.snap)
		select {
		case ch <- snap:
		default:
			// Replace the stale value with the latest.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

func cloneSnapshot(in models.EmergencySnapshot) models.EmergencySnapshot {
	if in.Provider != nil {
		p := *in.Provider
		in.Provider = &p
	}
	return in
}
