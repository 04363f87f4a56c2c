// Package inventory holds the device inventory the dashboard works against.
//
// The bridge is polled on its own cadence by a Refresher, which publishes each
// result as a new immutable Snapshot into a Store. The UI loop loads the
// current Snapshot once per tick (or per key press) and only ever reads it.
//
// Lights are indexed in canonical order, see SortLights.
package inventory
