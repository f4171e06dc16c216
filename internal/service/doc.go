// Package service is the concurrency core of dbgvis: a mutex-guarded
// command queue bridging any number of producer goroutines to the single
// consumer goroutine that owns, mutates and renders the visualizer tree.
//
// Producers call the typed update surface (SetValue, PushSample,
// UpdateStructure, ...) from anywhere; each call enqueues a closure with
// copied arguments and returns immediately. The consumer loop, driven by a
// Backend, swaps out the whole queue once per frame and applies the closures
// in FIFO order before rendering. Delivery is best-effort: once Stop has
// begun, late updates are silently dropped.
package service
