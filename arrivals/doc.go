// Package arrivals implements the arrival-estimation pipeline.
//
// Raw feed records from any provider are reduced to a short, ranked list of
// "next train" minute counts per line and direction in three stages:
//
//   - Normalize: map heterogeneous raw records into canonical ArrivalRecords
//     (line, direction, trip ID, minutes from now, prediction flag).
//   - Dedupe: collapse partial updates for the same physical train into one
//     record per (line, direction, trip ID), preferring live predictions
//     over static schedule times.
//   - Select: per (line, direction), filter out imminent arrivals, merge
//     near-duplicate times, and cap the result to the soonest few.
//
// The pipeline is a pure, stateless transform: it performs no I/O, holds no
// state between invocations, and never returns an error. Malformed records
// are skipped individually so a single bad record cannot abort the rest of
// the set. The current instant is sampled once by the caller and threaded
// through the whole invocation, which keeps filtering internally consistent
// and makes the pipeline fully deterministic under test.
//
// Concurrent invocations are safe by construction: all inputs are read only
// and all outputs are freshly allocated.
package arrivals
