package commands

import (
	"errors"
	"fmt"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a student's request to order a menu item.
// It carries the submitted identity (name + registration id) alongside the
// order details; the handler resolves the identity to a student record,
// creating one on the first order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, "Aisha Khan", "2023-CS-042", itemID, 2)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	studentName    string
	registrationID string
	itemID         kernel.UUID
	quantity       int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order. Validates that
// both identifiers are valid, the name and registration id are present, and
// the quantity is at least 1.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	studentName, registrationID string,
	itemID kernel.UUID,
	quantity int,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStudentName(studentName),
		cmd.setRegistrationID(registrationID),
		cmd.setItemID(itemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will be created under.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// StudentName returns the submitted display name.
func (c PlaceOrderCommand) StudentName() string {
	return c.studentName
}

// RegistrationID returns the submitted natural key.
func (c PlaceOrderCommand) RegistrationID() string {
	return c.registrationID
}

// ItemID returns the ordered menu item's identifier.
func (c PlaceOrderCommand) ItemID() kernel.UUID {
	return c.itemID
}

// Quantity returns the number of units ordered.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setStudentName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("studentName")
	}
	c.studentName = name
	return nil
}

func (c *PlaceOrderCommand) setRegistrationID(registrationID string) error {
	if registrationID == "" {
		return errs.NewValueIsRequiredError("registrationID")
	}
	c.registrationID = registrationID
	return nil
}

func (c *PlaceOrderCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("itemID", err)
	}
	c.itemID = itemID
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	c.quantity = quantity
	return nil
}
