// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tensorops/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go
//
// Example:
//
//	import (
//	    "github.com/born-ml/tensorops/tensor"
//	    "github.com/born-ml/tensorops/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	mask, err := x.Less(y)  // Uses backend.Compare under the hood
type Backend = tensor.Backend
