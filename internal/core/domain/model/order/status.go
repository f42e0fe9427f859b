package order

import (
	"errors"
	"fmt"

	"canteen/internal/pkg/errs"
)

// ErrInvalidTransition is the sentinel wrapped by every InvalidTransitionError.
// Use errors.Is(err, ErrInvalidTransition) to classify rejected transitions.
var ErrInvalidTransition = errors.New("order status transition is not allowed")

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the kitchen workflow.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> Delivered
//	   │            │           │
//	   └────────────┴───────────┴─────> Cancelled
//
// Delivered and Cancelled are terminal. Status is persisted and transported
// as the upper-case words returned by String.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every placed order. Pending orders
	// form the visible queue and feed the wait-time estimator.
	Pending

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is done and waiting for pickup.
	Ready

	// Delivered indicates the order was handed to the student.
	// Terminal: no further transitions are allowed.
	Delivered

	// Cancelled indicates the order was withdrawn before delivery.
	// Terminal: no further transitions are allowed.
	Cancelled
)

// getStatusStrings returns the wire representation of every Status value,
// including Unknown, to support String conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Preparing: "PREPARING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getValidStatusStrings returns only the recognized Status values.
// Unknown is intentionally excluded to support validation.
func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:   "PENDING",
		Preparing: "PREPARING",
		Ready:     "READY",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getTransitions returns the complete transition table. A status maps to the
// exact set of statuses reachable from it; terminal statuses map to nothing.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Delivered, Cancelled},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses the wire representation ("PENDING", "PREPARING",
// "READY", "DELIVERED", "CANCELLED") into a Status. Any other value is
// rejected with a ValueIsInvalidError.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", s),
	)
}

// String returns the wire representation of the status. It implements
// fmt.Stringer and is safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the Status is one of the five recognized values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// IsTerminal reports whether the status permits no further transitions.
// Delivered and Cancelled are the terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// SetsReadyTime reports whether arriving at this status stamps the order's
// actualReadyTime (when it is not already set).
func (s Status) SetsReadyTime() bool {
	return s == Ready || s == Delivered
}

// CanTransitionTo validates a transition against the table. It returns nil
// when the transition is legal and an InvalidTransitionError otherwise,
// including attempts to leave a terminal status or to skip workflow steps
// (e.g. Pending directly to Delivered).
func (s Status) CanTransitionTo(next Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	for _, allowed := range getTransitions()[s] {
		if next == allowed {
			return nil
		}
	}

	return &InvalidTransitionError{From: s, To: next}
}

// InvalidTransitionError reports a rejected status transition. It carries the
// current status so callers can resynchronize their view of the order.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	if e.From.IsTerminal() {
		return fmt.Sprintf("%s: %s is terminal", ErrInvalidTransition, e.From)
	}
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}
