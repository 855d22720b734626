// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go host-memory backend.
//
// # Overview
//
// This package implements the host placement:
//   - Pure Go implementation (no CGO)
//   - Transfers within the host are free
//   - Casts are single-pass bulk conversions across all element kinds
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
//	        tensor.MustList(tensor.ScalarOf[float32](1), tensor.ScalarOf[float32](2)),
//	        tensor.MustList(tensor.ScalarOf[float32](3), tensor.ScalarOf[float32](4)),
//	    )
//	    raw, err := lit.Build(backend)
//	    _ = err
//	    _ = raw
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. It holds no mutable state;
// each bulk operation works on its own tensors.
package cpu
