// Package prominence (module root) computes topographic prominence
// over a digital elevation model: for every summit, how far it stands
// above the highest col connecting it to any taller ground.
//
// The module is organized as:
//
//	prominence/        — the public core API: ComputeProminence
//	internal/gridio     — grid adapter over a flat elevation array
//	internal/peak       — strict-local-maximum peak detection
//	internal/sortidx    — descending-elevation sort index
//	internal/dsu        — union-find forest driving the sweep
//	internal/sweep      — the descending-elevation sweep-and-merge engine
//	internal/topk       — bounded top-K result collector
//	internal/decode     — binary/CSV DEM decoding
//	internal/report     — fixed-width text report rendering
//	internal/peaknet    — summit runoff-tree reconstruction
//	internal/tour       — nearest-neighbor + 2-opt summit touring
//	internal/topostats  — distance matrix and prominence statistics
//	internal/config     — layered CLI configuration
//	internal/logging    — leveled logger
//	cmd/prominence      — the CLI entry point
//
// See SPEC_FULL.md for the full functional specification and
// DESIGN.md for how each package is grounded.
package prominence
