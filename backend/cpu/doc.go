// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - One broadcast plan shared by arithmetic and comparisons
//   - NaN-aware comparisons for float32, float64, float16 and integer sentinels
//   - NumPy-compatible broadcasting
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorops/backend/cpu"
//	    "github.com/born-ml/tensorops/losses"
//	    "github.com/born-ml/tensorops/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	    mask, _ := tensor.LessEqual(x, y)
//
//	    loss, _ := losses.AbsoluteDifference(x, y, nil, losses.Mean)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// allocates its own output and does not share mutable state.
package cpu
