package services

import (
	"errors"

	"supplychain/internal/core/domain/model/account"
	"supplychain/internal/core/domain/model/kernel"
)

// ErrPermissionDenied is returned when the policy denies an action.
var ErrPermissionDenied = errors.New("permission denied")

// Action identifies an operation gated by the authorization policy.
type Action string

const (
	// ActionReadCatalog covers all safe (read) operations.
	ActionReadCatalog Action = "read_catalog"
	// ActionCreateProduct registers a new product in the creator's catalog.
	ActionCreateProduct Action = "create_product"
	// ActionDeleteProduct removes a product from the system.
	ActionDeleteProduct Action = "delete_product"
	// ActionMutateStock declares or adjusts warehouse stock counts.
	ActionMutateStock Action = "mutate_stock"
	// ActionPlaceOrder places an order against factory stock.
	ActionPlaceOrder Action = "place_order"
	// ActionEditOrder edits an order still in processing.
	ActionEditOrder Action = "edit_order"
	// ActionUpdateOrderStatus moves orders through the status lifecycle,
	// singly or in bulk.
	ActionUpdateOrderStatus Action = "update_order_status"
	// ActionCreateDelivery records a shipment and links it to orders.
	ActionCreateDelivery Action = "create_delivery"
)

// requiredRoles is the policy table: the roles that may perform each action.
// An empty set means any authenticated user. Admin bypasses the table entirely.
func requiredRoles() map[Action][]account.Role {
	return map[Action][]account.Role{
		ActionReadCatalog:       {},
		ActionCreateProduct:     {account.RoleFactory},
		ActionDeleteProduct:     {account.RoleFactory},
		ActionMutateStock:       {account.RoleFactory},
		ActionPlaceOrder:        {account.RoleSalePoint},
		ActionEditOrder:         {account.RoleSalePoint},
		ActionUpdateOrderStatus: {account.RoleSalePoint, account.RoleCarrier},
		ActionCreateDelivery:    {account.RoleCarrier},
	}
}

// AuthorizationPolicy decides whether a user snapshot may perform an action.
// It is a pure function of (user, action); the only configuration is which
// membership mechanism role resolution reads.
type AuthorizationPolicy struct {
	source account.RoleSource
}

// NewAuthorizationPolicy creates a policy resolving roles from the given source.
func NewAuthorizationPolicy(source account.RoleSource) AuthorizationPolicy {
	return AuthorizationPolicy{source: source}
}

// Authorize returns nil when the user may perform the action,
// ErrPermissionDenied otherwise. Unknown actions are always denied.
func (p AuthorizationPolicy) Authorize(user account.User, action Action) error {
	if err := user.Validate(); err != nil {
		return err
	}

	role := account.ResolveRole(user, p.source)
	if role == account.RoleAdmin {
		return nil
	}

	allowed, ok := requiredRoles()[action]
	if !ok {
		return ErrPermissionDenied
	}
	if len(allowed) == 0 {
		return nil
	}

	for _, r := range allowed {
		if role == r {
			return nil
		}
	}

	return ErrPermissionDenied
}

// AuthorizeUserDelete permits deleting a user account only to the account
// owner or an admin.
func (p AuthorizationPolicy) AuthorizeUserDelete(actor account.User, targetID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if err := targetID.Validate(); err != nil {
		return err
	}

	if account.ResolveRole(actor, p.source) == account.RoleAdmin {
		return nil
	}
	if actor.ID().IsEqual(targetID) {
		return nil
	}

	return ErrPermissionDenied
}
