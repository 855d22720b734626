// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor turns nested literal expressions into tensors for the
// Ember framework.
//
// # Overview
//
// The centerpiece is the Literal type: a tagged union over a single scalar,
// a nested list of literals, or a flat run of values. A literal knows its
// shape and element kind the moment it is constructed; allocating and
// filling a tensor is deferred until a target backend is chosen.
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/backend/cpu"
//	    "github.com/ember-ml/ember/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    lit := tensor.MustList(
//	        tensor.MustList(tensor.ScalarOf[int32](1), tensor.ScalarOf[int32](2)),
//	        tensor.MustList(tensor.ScalarOf[int32](3), tensor.ScalarOf[int32](4)),
//	    )
//
//	    raw, err := lit.Build(backend) // Shape: [2, 2], kind int32
//	    _ = err
//	    _ = raw
//	}
//
// # Validation
//
// A list literal requires all of its children to agree on shape and element
// kind; a violation fails at construction with ErrShapeMismatch or
// ErrKindMismatch, before any full-shape tensor is allocated. There is no
// implicit promotion between kinds.
//
// # Materialization
//
// Build stages nested literals in host memory, fills the buffer outermost
// dimension first, and moves the result to the backend's device in a single
// bulk transfer. This keeps the transfer count at one regardless of how many
// leaf elements the literal has.
//
// # Supported Element Kinds
//
//   - float32, float64 (floating-point)
//   - float16, bfloat16 (narrow floats, constructed from float32 values)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers)
//   - bool (boolean masks)
package tensor
