// Package services contains stateless domain services that coordinate
// multiple aggregates.
//
// BatchAllocator fills a requested quantity from inventory batches, oldest
// stock first, booking each draw on the ledger atomically and tolerating
// shortfall. CombinedPicking folds the open order lines for one article into
// a single gatherable quantity and splits a confirmed gather back over the
// orders, oldest first.
package services
