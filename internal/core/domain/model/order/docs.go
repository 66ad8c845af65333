// Package order contains the fulfillment-side order aggregate.
//
// Fulfillment does not own the commercial order; it owns the order's dispatch
// lifecycle. An order enters the package in Picking status when its pick list
// is created, becomes Ready when the pick list is completed, and moves to
// Dispatched when its delivery run leaves. Recalling a run returns its orders
// to Ready, and reopening a completed pick list returns the order to Picking.
package order
