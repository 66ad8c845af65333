// Package load contains the delivery run aggregate: the planned vehicle
// round that carries completed orders out of the nursery.
//
// A DeliveryRun owns an ordered set of LoadItems, one per loaded order, with
// a contiguous unloading sequence starting at 1. An order sits on at most
// one run at a time; the aggregate rejects duplicates within a run and the
// repository enforces the rule across runs.
//
// The lifecycle is Planned -> Loading -> InTransit -> Completed. Dispatching
// is the only transition with business preconditions (the run must carry
// orders, and all of them must be ready unless the caller forces past a
// recorded override). Recall returns an in-transit run to Planned so the
// round can be restructured and dispatched again.
package load
