package enquiry

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/rockridgeglobal/enquiry-relay/internal/branch"
	"github.com/rockridgeglobal/enquiry-relay/internal/schedule"
)

// State is the submission lifecycle of a form.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return "unknown"
}

// ErrSubmissionInFlight rejects a Submit while another one is dispatching.
var ErrSubmissionInFlight = errors.New("submission already in progress")

// Receipt is the outcome of a successful dispatch.
type Receipt struct {
	MessageID     string `json:"messageId,omitempty"`   // email strategy
	WhatsAppURL   string `json:"whatsappUrl,omitempty"` // deep-link strategy
	StatusMessage string `json:"-"`
}

// Dispatcher is one form-dispatch strategy. Exactly one is active per
// deployment.
type Dispatcher interface {
	Dispatch(ctx context.Context, e *Enquiry) (Receipt, error)
}

// Status is the inline banner shown near the submit control.
type Status struct {
	Kind    string // "success" or "error"
	Message string
}

const statusDismissAfter = 5 * time.Second

// ErrorStatusMessage is the banner text for failed dispatches.
const ErrorStatusMessage = "Sorry, there was an error sending your enquiry. Please call us directly or try again later."

// Controller runs the submission state machine:
// Idle -> Validating -> Submitting -> (Success|Error) -> Idle.
// Clearing the form fields on success is the hosting page's job; the
// controller reports outcomes through the Receipt and the status listener.
type Controller struct {
	dispatcher Dispatcher
	sched      schedule.Scheduler
	logger     *log.Logger

	mu          sync.Mutex
	state       State
	dismissTask schedule.Task
	onStatus    func(*Status)
}

// NewController creates a controller for one dispatch strategy.
func NewController(d Dispatcher, sched schedule.Scheduler, logger *log.Logger) *Controller {
	return &Controller{
		dispatcher: d,
		sched:      sched,
		logger:     logger,
		state:      StateIdle,
	}
}

// SetStatusListener registers the banner callback. A nil Status means the
// banner was dismissed.
func (c *Controller) SetStatusListener(fn func(*Status)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStatus = fn
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Submit validates the enquiry and dispatches it via the configured strategy.
// A submission already in flight is rejected with ErrSubmissionInFlight.
// Whatever the outcome, the controller returns to Idle so the form is never
// left stuck.
func (c *Controller) Submit(ctx context.Context, e *Enquiry) (Receipt, error) {
	c.mu.Lock()
	if c.state == StateSubmitting || c.state == StateValidating {
		c.mu.Unlock()
		return Receipt{}, ErrSubmissionInFlight
	}
	c.state = StateValidating
	c.mu.Unlock()

	if err := e.Validate(); err != nil {
		// Rejected locally: inline message, back to Idle, no dispatch.
		c.settle(StateError, Status{Kind: "error", Message: err.Error()})
		return Receipt{}, err
	}

	c.mu.Lock()
	c.state = StateSubmitting
	c.mu.Unlock()

	if e.SourceBranch == "" {
		e.SourceBranch = branch.SourceUnknown
	}
	if e.Timestamp == "" {
		e.Timestamp = NowIST()
	}

	receipt, err := c.dispatcher.Dispatch(ctx, e)
	if err != nil {
		c.logger.Printf("Enquiry dispatch error: %v", err)
		c.settle(StateError, Status{Kind: "error", Message: ErrorStatusMessage})
		return Receipt{}, err
	}

	c.settle(StateSuccess, Status{Kind: "success", Message: receipt.StatusMessage})
	return receipt, nil
}

// settle records the outcome, shows the banner with a fresh auto-dismiss
// task, and returns the machine to Idle.
func (c *Controller) settle(outcome State, status Status) {
	c.mu.Lock()
	c.state = outcome
	listener := c.onStatus

	// Cancel the previous dismiss task before scheduling its replacement so
	// banner timers never stack.
	if c.dismissTask != nil {
		c.dismissTask.Cancel()
		c.dismissTask = nil
	}
	if listener != nil {
		c.dismissTask = c.sched.Schedule(statusDismissAfter, func() {
			c.mu.Lock()
			fn := c.onStatus
			c.dismissTask = nil
			c.mu.Unlock()
			if fn != nil {
				fn(nil)
			}
		})
	}
	c.state = StateIdle
	c.mu.Unlock()

	if listener != nil {
		listener(&status)
	}
}

// NowIST is the submission timestamp in the branches' timezone, formatted the
// way the pages report it.
func NowIST() string {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+1800)
	}
	return time.Now().In(loc).Format("2/1/2006, 3:04:05 pm")
}
