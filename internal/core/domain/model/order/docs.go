// Package order contains the Order aggregate and its status lifecycle.
//
// An Order is a sale point's request to draw a quantity of one product from
// factory stock. Orders are created in InProcessing after the stock debit
// succeeds, move forward through Delivery to Delivered, and are never
// deleted: they are the historical record the ledger reconciles against.
//
// Status updates overwrite the current status with any recognized value
// (bulk updates may jump straight from InProcessing to Delivered), but an
// order's contents become immutable the moment it leaves InProcessing.
package order
