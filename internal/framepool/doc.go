// Package framepool runs one goroutine per panel and joins them once per frame.
//
// Every worker owns its state for its whole life. The coordinator hands each
// live worker the same frame message over an unbuffered channel and then waits
// for one completion per live worker before returning, so a frame is a
// fork/join barrier: workers render in parallel, and the slowest one bounds the
// frame. Completions arrive in any order.
//
// Closing a worker's frame channel is how it is told to stop. A worker that
// panics while rendering still completes the frame it was given, is dropped from
// later frames, and reports the panic from Shutdown.
package framepool
