// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/tensorops/internal/backend/cpu"
	"github.com/born-ml/tensorops/tensor"
)

// Backend is the CPU compute backend.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New()
//	x, _ := tensor.FromSlice([]int32{1, 2, 3}, tensor.Shape{3}, backend)
func New() *Backend {
	return internalcpu.New()
}
