package order

import (
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderLocked is returned when editing an order that has left the
	// InProcessing status. The wording matches the client-facing message.
	ErrOrderLocked = errors.New("order cannot be modified after processing has started")
)

// Order represents a sale point's request for a quantity of a product.
// It is the aggregate root for the order lifecycle.
//
// Order invariants:
//   - Valid identifiers for the order, its product and its sale point
//   - Quantity is a positive integer
//   - Exactly one originating sale point and one product
//   - Contents are editable only while the status is InProcessing
type Order struct {
	id          kernel.UUID
	productID   kernel.UUID
	salePointID kernel.UUID
	quantity    int
	placedAt    time.Time
	status      Status
	deliveryIDs []kernel.UUID

	isConstructed bool
}

// NewOrder creates a new Order in InProcessing status.
// Callers are expected to have debited the warehouse ledger in the same
// transaction that persists the returned order.
func NewOrder(
	id kernel.UUID,
	productID kernel.UUID,
	salePointID kernel.UUID,
	quantity int,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        InProcessing,
		placedAt:      placedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductID(productID),
		o.setSalePointID(salePointID),
		o.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status
// and attached deliveries. Status must be one of the recognized values.
func RestoreOrder(
	id kernel.UUID,
	productID kernel.UUID,
	salePointID kernel.UUID,
	quantity int,
	placedAt time.Time,
	status Status,
	deliveryIDs []kernel.UUID,
) (*Order, error) {
	o, err := NewOrder(id, productID, salePointID, quantity, placedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	for _, deliveryID := range deliveryIDs {
		if err = deliveryID.Validate(); err != nil {
			return nil, err
		}
	}
	o.deliveryIDs = deliveryIDs

	return o, nil
}

// Validate ensures the Order was constructed through a factory method.
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

// ProductID returns the ordered product's identifier.
func (o *Order) ProductID() kernel.UUID {
	return o.productID
}

// SalePointID returns the originating sale point's identifier.
func (o *Order) SalePointID() kernel.UUID {
	return o.salePointID
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// PlacedAt returns the order creation timestamp.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Deliveries returns identifiers of the deliveries attached to this order.
func (o *Order) Deliveries() []kernel.UUID {
	return o.deliveryIDs
}

// ChangeStatus overwrites the order's status with any recognized value.
// Adjacency is not enforced: a bulk update may move an order straight from
// InProcessing to Delivered. Unrecognized values are rejected.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// Edit replaces the order's product and quantity.
// Permitted only while the order is still InProcessing; afterwards the
// order is locked and ErrOrderLocked is returned.
func (o *Order) Edit(productID kernel.UUID, quantity int) error {
	if o.status != InProcessing {
		return ErrOrderLocked
	}

	if err := errors.Join(
		o.setProductID(productID),
		o.setQuantity(quantity),
	); err != nil {
		return err
	}

	return nil
}

// AttachDelivery links a delivery to this order. Attaching the same
// delivery twice is a no-op.
func (o *Order) AttachDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	for _, existing := range o.deliveryIDs {
		if existing.IsEqual(deliveryID) {
			return nil
		}
	}

	o.deliveryIDs = append(o.deliveryIDs, deliveryID)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.productID = id
	return nil
}

func (o *Order) setSalePointID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.salePointID = id
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}
