package shipping

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
// created through the NewCarrier factory method.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier constructor")

// Carrier is a shipping company that executes deliveries. Deleting a carrier
// with existing deliveries is rejected at the store level.
type Carrier struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewCarrier creates a Carrier with a validated id and name.
func NewCarrier(id kernel.UUID, name string) (*Carrier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Carrier{id: id, name: name, isConstructed: true}, nil
}

// Validate ensures the Carrier was constructed through NewCarrier.
func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID {
	return c.id
}

// Name returns the carrier name.
func (c *Carrier) Name() string {
	return c.name
}
