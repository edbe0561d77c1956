package shipping

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery factory method.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

// Delivery is a carrier-executed shipment, optionally linked to one or more
// orders. The link carries no mandatory cardinality: a delivery may cover
// many orders and an order may be updated without any delivery attached.
type Delivery struct {
	id        kernel.UUID
	carrierID kernel.UUID
	cost      kernel.Money
	date      time.Time
	priority  Priority
	orderIDs  []kernel.UUID

	isConstructed bool
}

// NewDelivery creates a Delivery executed by the given carrier.
func NewDelivery(
	id kernel.UUID,
	carrierID kernel.UUID,
	cost kernel.Money,
	date time.Time,
	priority Priority,
) (*Delivery, error) {
	d := &Delivery{isConstructed: true}

	if err := errors.Join(
		d.setID(id),
		d.setCarrierID(carrierID),
		d.setCost(cost),
		d.setPriority(priority),
	); err != nil {
		return nil, err
	}

	d.date = date
	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence with its order links.
func RestoreDelivery(
	id kernel.UUID,
	carrierID kernel.UUID,
	cost kernel.Money,
	date time.Time,
	priority Priority,
	orderIDs []kernel.UUID,
) (*Delivery, error) {
	d, err := NewDelivery(id, carrierID, cost, date, priority)
	if err != nil {
		return nil, err
	}

	for _, orderID := range orderIDs {
		if err = d.AttachOrder(orderID); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Validate ensures the Delivery was constructed through a factory method.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// CarrierID returns the executing carrier's identifier.
func (d *Delivery) CarrierID() kernel.UUID {
	return d.carrierID
}

// Cost returns the delivery cost.
func (d *Delivery) Cost() kernel.Money {
	return d.cost
}

// Date returns the scheduled delivery date.
func (d *Delivery) Date() time.Time {
	return d.date
}

// Priority returns the delivery priority.
func (d *Delivery) Priority() Priority {
	return d.priority
}

// Orders returns identifiers of the orders this delivery covers.
func (d *Delivery) Orders() []kernel.UUID {
	return d.orderIDs
}

// AttachOrder links an order to this delivery. Duplicates are a no-op.
func (d *Delivery) AttachOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	for _, existing := range d.orderIDs {
		if existing.IsEqual(orderID) {
			return nil
		}
	}

	d.orderIDs = append(d.orderIDs, orderID)
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setCarrierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.carrierID = id
	return nil
}

func (d *Delivery) setCost(cost kernel.Money) error {
	if err := cost.Validate(); err != nil {
		return err
	}
	d.cost = cost
	return nil
}

func (d *Delivery) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	d.priority = priority
	return nil
}
