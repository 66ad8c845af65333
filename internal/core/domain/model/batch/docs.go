// Package batch contains the inventory ledger aggregate.
//
// An InventoryBatch is one physical batch of plants of a single variety and
// size standing at one stock location. Batches are created on stock receipt,
// decremented by pick allocations and incremented again when an allocation is
// reversed. The one hard invariant is conservation: the available quantity is
// never negative, no matter how many pickers draw from the batch at once.
//
// The aggregate enforces the invariant for single-threaded use; the postgres
// repository enforces the same rule under concurrency with a conditional
// UPDATE so that two pickers can never overdraw the same batch together.
package batch
