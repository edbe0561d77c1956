package commands

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/shipping"
	"supplychain/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a carrier recording a shipment, optionally
// covering one or more orders.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	carrierID  kernel.UUID
	cost       kernel.Money
	date       time.Time
	priority   shipping.Priority
	orderIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to record a delivery.
// orderIDs may be empty; duplicates are collapsed when the delivery is built.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	carrierID kernel.UUID,
	cost kernel.Money,
	date time.Time,
	priority shipping.Priority,
	orderIDs []kernel.UUID,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCarrierID(carrierID),
		cmd.setCost(cost),
		cmd.setPriority(priority),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier the delivery will be created under.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CarrierID returns the executing carrier's identifier.
func (c CreateDeliveryCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Cost returns the delivery cost.
func (c CreateDeliveryCommand) Cost() kernel.Money {
	return c.cost
}

// Date returns the scheduled delivery date.
func (c CreateDeliveryCommand) Date() time.Time {
	return c.date
}

// Priority returns the delivery priority.
func (c CreateDeliveryCommand) Priority() shipping.Priority {
	return c.priority
}

// OrderIDs returns the orders the delivery covers.
func (c CreateDeliveryCommand) OrderIDs() []kernel.UUID {
	return c.orderIDs
}

func (c *CreateDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *CreateDeliveryCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *CreateDeliveryCommand) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}

	c.cost = cost
	return nil
}

func (c *CreateDeliveryCommand) setPriority(priority shipping.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateDeliveryCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	for i, orderID := range orderIDs {
		if err := orderID.Validate(); err != nil {
			return &BulkItemError{Index: i, Err: err}
		}
	}

	c.orderIDs = orderIDs
	return nil
}
