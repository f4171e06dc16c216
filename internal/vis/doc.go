// Package vis holds the telemetry data model: scalar values, bounded graph
// series, rebuildable structure trees, tabs that group them, and the
// recursively nestable Visualizer windows that own the tabs.
//
// The model itself is not synchronized. All mutation after construction
// belongs to the single consumer goroutine of a render service; producers
// reach it exclusively through enqueued commands. Reads are likewise only
// safe on the consumer goroutine, typically inside a per-frame callback.
package vis
