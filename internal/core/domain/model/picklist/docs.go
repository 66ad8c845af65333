// Package picklist contains the pick list aggregate: the set of line items
// from one order that must be physically gathered.
//
// A PickList owns its PickItems, and each PickItem owns its BatchPick
// allocations. The package enforces two invariants at every observable state:
// an item's picked quantity always equals the sum of its allocations, and an
// allocation never pushes the picked quantity past the target. Status is
// derived, never set directly: an item becomes Picked when allocation reaches
// the target, and Short only through an explicit worker confirmation.
//
// The list lifecycle is Pending -> InProgress -> Completed. Completion is an
// explicit, idempotent finish action that also records trolley metadata for
// load planning; a completed list is immutable until explicitly reopened.
package picklist
