package wizard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"handyhub/models"
	"handyhub/services/catalog"
	"handyhub/services/emergency"
	"handyhub/services/notification"
	"handyhub/services/session"
	"handyhub/services/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNav struct {
	paths []string
	backs int
}

func (f *fakeNav) Navigate(path string) { f.paths = append(f.paths, path) }
func (f *fakeNav) Back()                { f.backs++ }

func newRegistration(t *testing.T) (*Controller, *session.Store, *notification.Recorder, *fakeNav) {
	t.Helper()
	rec := notification.NewRecorder(0, nil)
	store := session.NewStore(session.Options{Notifier: rec})
	nav := &fakeNav{}
	c := New(RegistrationFlow(store), timer.NewManual(time.Unix(0, 0)), rec, nav)
	t.Cleanup(c.Close)
	return c, store, rec, nav
}

func TestRegistrationMissingEmailDoesNotAdvance(t *testing.T) {
	c, _, rec, _ := newRegistration(t)
	require.NoError(t, c.Set("name", "Sam"))

	res, err := c.Advance(context.Background())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "email", res.Errors[0].Field)
	assert.Equal(t, 1, c.State().CurrentStep)
	assert.Equal(t, []string{"error: Please fill in all fields"}, rec.Messages())
}

func TestRegistrationReportsEveryProblem(t *testing.T) {
	c, _, _, _ := newRegistration(t)
	require.NoError(t, c.Set("userType", "admin"))

	res, err := c.Advance(context.Background())
	require.Error(t, err)

	fields := make([]string, 0, len(res.Errors))
	for _, e := range res.Errors {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"name", "email", "userType"}, fields)
}

func TestRegistrationInvalidEmail(t *testing.T) {
	c, _, _, _ := newRegistration(t)
	require.NoError(t, c.SetAll(map[string]string{"name": "Sam", "email": "sam@nowhere"}))

	res, err := c.Advance(context.Background())
	require.Error(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Please enter a valid email address", res.Errors[0].Message)
}

func TestRegistrationPasswordRules(t *testing.T) {
	cases := []struct {
		name, pw, confirm, msg string
	}{
		{"missing", "", "abcdef", "Please fill in all password fields"},
		{"mismatch", "abcdef", "abcdeg", "Passwords don't match"},
		{"short", "abc", "abc", "Password should be at least 6 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _, _, _ := newRegistration(t)
			require.NoError(t, c.SetAll(map[string]string{"name": "Sam", "email": "sam@example.com"}))
			_, err := c.Advance(context.Background())
			require.NoError(t, err)

			require.NoError(t, c.SetAll(map[string]string{"password": tc.pw, "confirmPassword": tc.confirm}))
			res, err := c.Advance(context.Background())
			require.Error(t, err)
			require.NotEmpty(t, res.Errors)
			assert.Equal(t, tc.msg, res.Errors[0].Message)
			assert.Equal(t, 2, c.State().CurrentStep)
		})
	}
}

func TestRegistrationCompletesAndSignsIn(t *testing.T) {
	c, store, _, nav := newRegistration(t)
	require.NoError(t, c.SetAll(map[string]string{
		"name": "Pat", "email": "pat@example.com", "userType": "provider",
	}))
	_, err := c.Advance(context.Background())
	require.NoError(t, err)
	require.NoError(t, c.SetAll(map[string]string{"password": "secret1", "confirmPassword": "secret1"}))

	res, err := c.Advance(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, "/provider", res.Redirect)
	assert.Equal(t, []string{"/provider"}, nav.paths)
	assert.True(t, c.Done())

	sess, ok := store.Current()
	require.True(t, ok)
	assert.Equal(t, models.UserTypeProvider, sess.UserType)

	_, err = c.Advance(context.Background())
	assert.ErrorIs(t, err, ErrFinished)
}

func TestRetreat(t *testing.T) {
	c, _, _, nav := newRegistration(t)
	require.NoError(t, c.SetAll(map[string]string{"name": "Sam", "email": "sam@example.com"}))
	_, err := c.Advance(context.Background())
	require.NoError(t, err)

	res, err := c.Retreat()
	require.NoError(t, err)
	assert.Equal(t, 1, res.State.CurrentStep)
	assert.Equal(t, "sam@example.com", res.State.Fields["email"])

	res, err = c.Retreat()
	require.NoError(t, err)
	assert.True(t, res.Exited)
	assert.Equal(t, 1, nav.backs)
}

func TestSetRejectsUnknownField(t *testing.T) {
	c, _, _, _ := newRegistration(t)
	assert.ErrorIs(t, c.Set("isAdmin", "true"), ErrUnknownField)
}

func bookingController(t *testing.T, clock *timer.Manual) (*Controller, *notification.Recorder, *fakeNav) {
	t.Helper()
	svc, ok := catalog.FindByID("1")
	require.True(t, ok)
	rec := notification.NewRecorder(0, nil)
	nav := &fakeNav{}
	flow := BookingFlow(svc, BookingOptions{
		RedirectDelay: 2 * time.Second,
		NewReference:  func() string { return "ref-1" },
	})
	return New(flow, clock, rec, nav), rec, nav
}

func fillBooking(t *testing.T, c *Controller) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, c.SetAll(map[string]string{"date": "2026-11-02", "timeSlot": "10:00 AM"}))
	_, err := c.Advance(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Set("address", "12 Long Street"))
	_, err = c.Advance(ctx)
	require.NoError(t, err)
}

func TestBookingScheduleValidation(t *testing.T) {
	c, _, _ := bookingController(t, timer.NewManual(time.Unix(0, 0)))
	defer c.Close()

	require.NoError(t, c.Set("date", "2026-11-02"))
	res, err := c.Advance(context.Background())
	require.Error(t, err)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "timeSlot", res.Errors[0].Field)

	require.NoError(t, c.Set("timeSlot", "07:00 PM"))
	res, _ = c.Advance(context.Background())
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Please select one of the available time slots", res.Errors[0].Message)
}

func TestBookingCompletesThenRedirects(t *testing.T) {
	clock := timer.NewManual(time.Unix(0, 0))
	c, rec, nav := bookingController(t, clock)
	defer c.Close()
	fillBooking(t, c)

	assert.Equal(t, "card", c.State().Fields["paymentMethod"])
	res, err := c.Advance(context.Background())
	require.NoError(t, err)
	require.True(t, res.Completed)

	summary, ok := res.Payload.(models.BookingSummary)
	require.True(t, ok)
	assert.Equal(t, "ref-1", summary.Reference)
	assert.Equal(t, ServiceFee, summary.ServiceFee)
	assert.Equal(t, summary.ServiceRate+ServiceFee, summary.Total)
	assert.Contains(t, rec.Messages(), "success: "+BookingConfirmed)

	clock.Advance(1999 * time.Millisecond)
	assert.Empty(t, nav.paths)
	clock.Advance(time.Millisecond)
	assert.Equal(t, []string{"/user"}, nav.paths)
}

func TestBookingCloseCancelsRedirect(t *testing.T) {
	clock := timer.NewManual(time.Unix(0, 0))
	c, _, nav := bookingController(t, clock)
	fillBooking(t, c)
	_, err := c.Advance(context.Background())
	require.NoError(t, err)

	c.Close()
	clock.Advance(5 * time.Second)
	assert.Empty(t, nav.paths)
}

func TestCompletionErrorKeepsWizardOpen(t *testing.T) {
	boom := errors.New("boom")
	flow := Flow{
		Name:  "single",
		Steps: []Step{{Name: "only", Fields: []string{"x"}}},
		Complete: func(context.Context, map[string]string) (Completion, error) {
			return Completion{}, boom
		},
	}
	c := New(flow, timer.NewManual(time.Unix(0, 0)), nil, nil)
	defer c.Close()

	_, err := c.Advance(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, c.Done())

	_, err = c.Advance(context.Background())
	assert.ErrorIs(t, err, boom)
	require.NoError(t, c.Set("x", "again"))
}

type gatedRegistrar struct {
	mu      sync.Mutex
	calls   int
	entered chan struct{}
	release chan struct{}
}

func (g *gatedRegistrar) Register(_ context.Context, email, _, name string, userType models.UserType) (models.Session, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	g.entered <- struct{}{}
	<-g.release
	return models.Session{ID: "new", Name: name, Email: email, UserType: userType}, nil
}

func TestConcurrentAdvanceCompletesOnce(t *testing.T) {
	reg := &gatedRegistrar{entered: make(chan struct{}, 2), release: make(chan struct{})}
	rec := notification.NewRecorder(0, nil)
	c := New(RegistrationFlow(reg), timer.NewManual(time.Unix(0, 0)), rec, &fakeNav{})
	defer c.Close()

	require.NoError(t, c.SetAll(map[string]string{"name": "Ann", "email": "ann@example.com", "userType": "customer"}))
	_, err := c.Advance(context.Background())
	require.NoError(t, err)
	require.NoError(t, c.SetAll(map[string]string{"password": "secret1", "confirmPassword": "secret1"}))

	first := make(chan error, 1)
	go func() {
		_, err := c.Advance(context.Background())
		first <- err
	}()
	<-reg.entered

	second := make(chan error, 1)
	go func() {
		_, err := c.Advance(context.Background())
		second <- err
	}()
	assert.ErrorIs(t, <-second, ErrBusy)
	assert.ErrorIs(t, c.Set("password", "other12"), ErrBusy)
	_, err = c.Retreat()
	assert.ErrorIs(t, err, ErrBusy)

	close(reg.release)
	require.NoError(t, <-first)
	assert.True(t, c.Done())

	reg.mu.Lock()
	assert.Equal(t, 1, reg.calls)
	reg.mu.Unlock()

	_, err = c.Advance(context.Background())
	assert.ErrorIs(t, err, ErrFinished)
}

func TestEmergencyFlow(t *testing.T) {
	clock := timer.NewManual(time.Unix(0, 0))
	rec := notification.NewRecorder(0, nil)
	sim := emergency.New(emergency.Options{Clock: clock, SearchDelay: time.Second, DispatchDelay: time.Second})
	defer sim.Close()
	nav := &fakeNav{}

	c := New(EmergencyFlow(sim), clock, rec, nav)
	defer c.Close()
	require.NoError(t, c.Set("serviceType", "plumbing"))

	res, err := c.Advance(context.Background())
	require.Error(t, err)
	assert.Len(t, res.Errors, 2)
	assert.Equal(t, []string{
		"error: Please enter your location",
		"error: Please enter your contact number",
	}, rec.Messages())
	assert.Equal(t, models.EmergencyInitial, sim.Snapshot().Status)

	req := models.EmergencyRequest{ServiceType: "plumbing", ContactNumber: "0821234567", UseCurrentLocation: true}
	require.NoError(t, c.SetAll(EmergencyRequestFields(req)))
	res, err = c.Advance(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Completed)
	assert.Equal(t, []string{"/emergency"}, nav.paths)
	assert.Equal(t, models.EmergencySearching, sim.Snapshot().Status)
	assert.Equal(t, "Current Location", sim.Snapshot().Location)

	again := New(EmergencyFlow(sim), clock, rec, nav)
	defer again.Close()
	require.NoError(t, again.SetAll(EmergencyRequestFields(req)))
	_, err = again.Advance(context.Background())
	assert.ErrorIs(t, err, emergency.ErrRequestInProgress)
}
