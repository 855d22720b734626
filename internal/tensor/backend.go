package tensor

// Backend is the device service the literal system builds against.
// A backend owns a placement (its Device) and performs the two bulk
// operations materialization needs: moving a tensor between placements
// and converting its element kind.
//
// Implementations:
//   - backend/cpu: host memory (Transfer within the host is a no-op)
//   - MockBackend: fake accelerator for tests, counts bulk operations
type Backend interface {
	// Transfer copies x to the given placement in one bulk operation.
	// Returns x unchanged if it is already there.
	Transfer(x *RawTensor, device Device) *RawTensor

	// Cast converts x to a different data type in one bulk operation.
	// Returns x unchanged if it already has that dtype.
	Cast(x *RawTensor, dtype DataType) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
