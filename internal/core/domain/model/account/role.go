// Package account contains the User snapshot and role resolution.
//
// A user's role is not stored: it is derived from the affiliations the user
// holds at the moment of the request. Resolution is a pure function over an
// immutable snapshot, so authorization decisions never depend on hidden
// session state.
package account

// Role is the access category derived from a user's affiliations.
type Role int

const (
	// RoleNone is resolved for users without any affiliation.
	RoleNone Role = iota
	// RoleFactory users manage a factory's catalog and warehouse stock.
	RoleFactory
	// RoleSalePoint users place and edit orders.
	RoleSalePoint
	// RoleCarrier users execute deliveries.
	RoleCarrier
	// RoleAdmin bypasses all role checks.
	RoleAdmin
)

// String returns the wire representation of the role.
func (r Role) String() string {
	switch r {
	case RoleFactory:
		return "factory"
	case RoleSalePoint:
		return "sale_point"
	case RoleCarrier:
		return "carrier"
	case RoleAdmin:
		return "admin"
	default:
		return ""
	}
}

// RoleSource selects which membership mechanism role resolution reads.
// Deployments historically used either direct affiliation relationships or
// named group membership; both remain supported.
type RoleSource int

const (
	// ByAffiliation derives the role from the user's factory/sale-point/carrier
	// relationship sets.
	ByAffiliation RoleSource = iota
	// ByGroup derives the role from membership in the "factory", "sale_point"
	// or "carrier" groups.
	ByGroup
)

// Group names recognized by ByGroup resolution and the admin bypass.
const (
	AdminGroup     = "admin"
	FactoryGroup   = "factory"
	SalePointGroup = "sale_point"
	CarrierGroup   = "carrier"
)

// ResolveRole derives the user's role from the snapshot.
//
// The admin flag or membership in the admin group always wins. Otherwise the
// first nonempty membership in the fixed order factory, sale_point, carrier
// decides; a user affiliated with several kinds gets the first match. Users
// with no affiliation resolve to RoleNone.
func ResolveRole(u User, source RoleSource) Role {
	if u.IsAdmin() || u.InGroup(AdminGroup) {
		return RoleAdmin
	}

	if source == ByGroup {
		switch {
		case u.InGroup(FactoryGroup):
			return RoleFactory
		case u.InGroup(SalePointGroup):
			return RoleSalePoint
		case u.InGroup(CarrierGroup):
			return RoleCarrier
		default:
			return RoleNone
		}
	}

	switch {
	case len(u.FactoryIDs()) > 0:
		return RoleFactory
	case len(u.SalePointIDs()) > 0:
		return RoleSalePoint
	case len(u.CarrierIDs()) > 0:
		return RoleCarrier
	default:
		return RoleNone
	}
}
