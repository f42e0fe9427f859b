package order

import (
	"errors"
	"fmt"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order represents a food order placed by a student. It is the aggregate root
// that manages the order lifecycle from placement through preparation to
// delivery.
//
// Order maintains these invariants:
//   - valid order, student, and menu item identifiers
//   - quantity is at least 1
//   - orderTime is set at creation and never changes
//   - status transitions follow the table enforced by Status
//   - actualReadyTime is nil until the order first reaches Ready or
//     Delivered, after which it is frozen
//
// The struct uses private fields for encapsulation; instances are created
// through NewOrder (new orders) or RestoreOrder (persistence rehydration).
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// studentID identifies the owning student
	studentID kernel.UUID

	// itemID identifies the ordered menu item
	itemID kernel.UUID

	// quantity is the number of units ordered (at least 1)
	quantity int

	// status is the current state in the order lifecycle
	status Status

	// orderTime is the placement time, immutable after creation
	orderTime time.Time

	// actualReadyTime is stamped once, on the first arrival into Ready
	// or Delivered
	actualReadyTime *time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. This is the only way to
// create a fresh order, ensuring all business invariants hold from the start.
//
// Parameters:
//   - id: unique identifier for the order
//   - studentID: the owning student
//   - itemID: the ordered menu item
//   - quantity: units ordered, must be at least 1
//   - orderTime: placement time, must not be zero
//
// Returns the created order, or a validation error if any parameter is
// invalid.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), studentID, itemID, 2, time.Now())
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id, studentID, itemID kernel.UUID, quantity int, orderTime time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStudentID(studentID),
		o.setItemID(itemID),
		o.setQuantity(quantity),
		o.setOrderTime(orderTime),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike NewOrder it
// accepts any recognized status and an optional ready time, but still
// validates every invariant, so corrupt rows cannot produce an invalid
// aggregate.
func RestoreOrder(
	id, studentID, itemID kernel.UUID,
	quantity int,
	status Status,
	orderTime time.Time,
	actualReadyTime *time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setStudentID(studentID),
		o.setItemID(itemID),
		o.setQuantity(quantity),
		o.setStatus(status),
		o.setOrderTime(orderTime),
	); err != nil {
		return nil, err
	}

	o.actualReadyTime = actualReadyTime
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for directly instantiated structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// StudentID returns the identifier of the owning student.
func (o *Order) StudentID() kernel.UUID {
	return o.studentID
}

// ItemID returns the identifier of the ordered menu item.
func (o *Order) ItemID() kernel.UUID {
	return o.itemID
}

// Quantity returns the number of units ordered.
func (o *Order) Quantity() int {
	return o.quantity
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// OrderTime returns the placement time.
func (o *Order) OrderTime() time.Time {
	return o.orderTime
}

// ActualReadyTime returns when the order first reached Ready or Delivered,
// or nil if it has not yet.
func (o *Order) ActualReadyTime() *time.Time {
	return o.actualReadyTime
}

// TransitionTo moves the order to newStatus, enforcing the transition table.
//
// Business rules:
//   - the transition must be legal from the current status; attempts to
//     leave a terminal status or skip workflow steps fail with an
//     InvalidTransitionError carrying the current status
//   - on the first arrival into Ready or Delivered, actualReadyTime is
//     stamped with now; a later transition never overwrites it
//
// The caller is responsible for atomicity: load the order under a row lock,
// call TransitionTo, persist, commit — as one transaction.
//
// Example:
//
//	if err := o.TransitionTo(order.Ready, time.Now()); err != nil {
//	    var invalid *order.InvalidTransitionError
//	    if errors.As(err, &invalid) {
//	        // report invalid.From back to the kitchen view
//	    }
//	    return err
//	}
func (o *Order) TransitionTo(newStatus Status, now time.Time) error {
	if err := o.status.CanTransitionTo(newStatus); err != nil {
		return err
	}

	if newStatus.SetsReadyTime() && o.actualReadyTime == nil {
		readyTime := now
		o.actualReadyTime = &readyTime
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setStudentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("studentID", err)
	}
	o.studentID = id
	return nil
}

func (o *Order) setItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("itemID", err)
	}
	o.itemID = id
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setOrderTime(orderTime time.Time) error {
	if orderTime.IsZero() {
		return errs.NewValueIsRequiredError("orderTime")
	}
	o.orderTime = orderTime
	return nil
}
