// Package wizard drives multi-step forms: each step declares what it
// requires, Advance only moves forward once the current step validates,
// and the last step hands the collected fields to the flow's completion.
package wizard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"handyhub/models"
	"handyhub/services/notification"
	"handyhub/services/timer"
)

// Validator inspects the field bag and reports problems for one step.
type Validator func(fields map[string]string) []models.FieldError

// Step is one page of a flow.
type Step struct {
	Name     string
	Fields   []string
	Validate Validator
}

// Completion describes what happens once the last step is accepted.
type Completion struct {
	Message  string
	Redirect string
	// Delay postpones the redirect; zero redirects immediately.
	Delay   time.Duration
	Payload any
}

// Flow is a concrete wizard: registration, booking, ...
type Flow struct {
	Name     string
	Steps    []Step
	Defaults map[string]string
	Complete func(ctx context.Context, fields map[string]string) (Completion, error)
}

// Navigator moves the client between pages.
type Navigator interface {
	Navigate(path string)
	Back()
}

// Result reports what an Advance or Retreat did.
type Result struct {
	State         models.WizardState  `json:"state"`
	Completed     bool                `json:"completed,omitempty"`
	Exited        bool                `json:"exited,omitempty"`
	Errors        []models.FieldError `json:"errors,omitempty"`
	Redirect      string              `json:"redirect,omitempty"`
	RedirectAfter time.Duration       `json:"redirectAfterMs,omitempty"`
	Payload       any                 `json:"payload,omitempty"`
}

// Controller runs one instance of a Flow.
type Controller struct {
	flow   Flow
	notify notification.Notifier
	nav    Navigator
	timers *timer.Group
	known  map[string]bool

	mu     sync.Mutex
	step   int
	fields map[string]string
	errs   []models.FieldError
	done   bool

	// completing is held while flow.Complete runs without the lock.
	completing bool
}

func New(flow Flow, clock timer.Clock, notify notification.Notifier, nav Navigator) *Controller {
	if notify == nil {
		notify = notification.Discard{}
	}
	c := &Controller{
		flow:   flow,
		notify: notify,
		nav:    nav,
		timers: timer.NewGroup(clock),
		known:  make(map[string]bool),
		step:   1,
		fields: make(map[string]string),
	}
	for _, s := range flow.Steps {
		for _, f := range s.Fields {
			c.known[f] = true
		}
	}
	for k, v := range flow.Defaults {
		c.fields[k] = v
	}
	return c
}

// Set stores a field value. Only fields declared by some step are accepted.
func (c *Controller) Set(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done {
		return ErrFinished
	}
	if c.completing {
		return ErrBusy
	}
	if !c.known[field] {
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	c.fields[field] = value
	return nil
}

// SetAll stores several fields, stopping at the first rejected one.
func (c *Controller) SetAll(values map[string]string) error {
	for k, v := range values {
		if err := c.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStep runs the validator of step (1-based) against the current fields.
func (c *Controller) ValidateStep(step int) []models.FieldError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked(step)
}

func (c *Controller) validateLocked(step int) []models.FieldError {
	if step < 1 || step > len(c.flow.Steps) {
		return nil
	}
	v := c.flow.Steps[step-1].Validate
	if v == nil {
		return nil
	}
	return v(c.fields)
}

// Advance moves to the next step, or completes the flow on the last step.
// A step that fails validation leaves the wizard where it is.
func (c *Controller) Advance(ctx context.Context) (Result, error) {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return Result{}, ErrFinished
	}
	if c.completing {
		c.mu.Unlock()
		return Result{}, ErrBusy
	}

	if errs := c.validateLocked(c.step); len(errs) > 0 {
		c.errs = errs
		res := Result{State: c.stateLocked(), Errors: errs}
		step := c.step
		c.mu.Unlock()
		c.raise(errs)
		return res, &ValidationError{Step: step, Errors: errs}
	}
	c.errs = nil

	if c.step < len(c.flow.Steps) {
		c.step++
		res := Result{State: c.stateLocked()}
		c.mu.Unlock()
		return res, nil
	}

	fields := c.copyFields()
	c.completing = true
	c.mu.Unlock()

	// Completion may block on simulated latency; it runs without the lock.
	comp, err := c.flow.Complete(ctx, fields)
	if err != nil {
		c.mu.Lock()
		c.completing = false
		c.mu.Unlock()
		return Result{State: c.State()}, err
	}

	c.mu.Lock()
	c.completing = false
	c.done = true
	res := Result{
		State:         c.stateLocked(),
		Completed:     true,
		Redirect:      comp.Redirect,
		RedirectAfter: comp.Delay,
		Payload:       comp.Payload,
	}
	c.mu.Unlock()

	if comp.Message != "" {
		c.notify.Success(comp.Message)
	}
	if comp.Redirect != "" && c.nav != nil {
		if comp.Delay > 0 {
			c.timers.AfterFunc(comp.Delay, func() { c.nav.Navigate(comp.Redirect) })
		} else {
			c.nav.Navigate(comp.Redirect)
		}
	}
	return res, nil
}

// Retreat goes back one step; on the first step it leaves the flow.
func (c *Controller) Retreat() (Result, error) {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		return Result{}, ErrFinished
	}
	if c.completing {
		c.mu.Unlock()
		return Result{}, ErrBusy
	}
	c.errs = nil
	if c.step > 1 {
		c.step--
		res := Result{State: c.stateLocked()}
		c.mu.Unlock()
		return res, nil
	}
	c.done = true
	res := Result{State: c.stateLocked(), Exited: true}
	c.mu.Unlock()

	if c.nav != nil {
		c.nav.Back()
	}
	return res, nil
}

// State is a snapshot of the wizard.
func (c *Controller) State() models.WizardState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// Done reports whether the flow completed or was exited.
func (c *Controller) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}

// Close abandons the flow and cancels anything it scheduled.
func (c *Controller) Close() {
	c.mu.Lock()
	c.done = true
	c.mu.Unlock()
	c.timers.Close()
}

func (c *Controller) stateLocked() models.WizardState {
	name := ""
	if c.step >= 1 && c.step <= len(c.flow.Steps) {
		name = c.flow.Steps[c.step-1].Name
	}
	return models.WizardState{
		Flow:             c.flow.Name,
		CurrentStep:      c.step,
		TotalSteps:       len(c.flow.Steps),
		StepName:         name,
		Fields:           c.copyFields(),
		ValidationErrors: append([]models.FieldError(nil), c.errs...),
	}
}

func (c *Controller) copyFields() map[string]string {
	out := make(map[string]string, len(c.fields))
	for k, v := range c.fields {
		out[k] = v
	}
	return out
}

// raise surfaces each distinct message once.
func (c *Controller) raise(errs []models.FieldError) {
	seen := make(map[string]bool, len(errs))
	for _, e := range errs {
		if seen[e.Message] {
			continue
		}
		seen[e.Message] = true
		c.notify.Error(e.Message)
	}
}

// present treats whitespace-only input as missing.
func present(fields map[string]string, key string) bool {
	return strings.TrimSpace(fields[key]) != ""
}
