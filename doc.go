// Package proptree projects a tree of named items onto a flat,
// dictionary-backed settings document with bidirectional binding.
//
// An Item with a parent holds no storage of its own: its value is the slot
// named after it in the parent's backing dictionary. A write at any leaf
// lands in that dictionary and the owning Project synchronously re-broadcasts
// the whole dictionary to every subscriber, so every item can detect changes
// it did not itself initiate. Typed variants (string, int, float, dict, list,
// enum, timestamp, computed) layer per-property coercion over the raw stored
// value.
//
// The tree assumes single-actor, in-process use: notification fan-out is one
// synchronous call chain with no locking, queueing, or cancellation.
package proptree
