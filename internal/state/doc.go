// Package state provides the thread-safe product cache for the trolley
// application and the controller that keeps it synchronized with the server.
//
// # Overview
//
// The Store is the single authoritative copy of the shopping list inside the
// process. It is populated wholesale by a list() load and then mutated one
// record at a time as create/update/delete operations are confirmed by the
// server. The Controller is the only component that mutates it: every user
// intent (submit, toggle, delete, refresh) flows through one Controller
// method that performs the API round trip first and the cache mutation
// second.
//
// # Ack-Before-Apply
//
// The store deliberately has no notion of pending or optimistic records.
// Callers follow one discipline everywhere:
//
//	id, err := client.CreateProduct(ctx, draft)
//	if err != nil {
//		return err        // cache untouched
//	}
//	store.Append(...)         // only after the server said yes
//
// On any failure the cache is left exactly as it was before the attempt, so
// the UI keeps rendering the last state both sides agreed on.
//
// # Ordering Invariants
//
//   - The cache preserves the order delivered by the initial load.
//   - Append places newly created products at the end.
//   - Replace keeps the record's position (index preserved).
//   - Replace and Remove are silent no-ops when the id is absent; at most
//     one record per id ever exists because ids are server-assigned.
//
// # Concurrency Model
//
// All mutation paths run on the UI program's single logical flow, but reads
// and writes still cross goroutine boundaries (Bubble Tea commands execute
// concurrently), so access is guarded by a sync.RWMutex and Products()
// returns a defensive copy. Note that nothing serializes two user-triggered
// mutations whose network calls are in flight at the same time: whichever
// acknowledgement lands last wins. There is no per-record version check.
//
// # Testing Considerations
//
// The Store is safe to construct with zero value:
//
//	store := &state.Store{}  // Ready to use immediately
package state
