// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/ember-ml/ember/internal/tensor"

// Backend defines the interface that placement backends must implement.
// A backend owns a device and performs the two bulk operations literal
// materialization needs.
//
// Implementations:
//   - backend/cpu: host memory
//
// Example:
//
//	import (
//	    "github.com/ember-ml/ember/backend/cpu"
//	    "github.com/ember-ml/ember/tensor"
//	)
//
//	backend := cpu.New()
//	raw, err := tensor.Flat([]float32{1, 2, 3}).Build(backend)
type Backend interface {
	// Transfer copies x to the given placement in one bulk operation.
	Transfer(x *RawTensor, device Device) *RawTensor

	// Cast converts x to a different data type in one bulk operation.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
