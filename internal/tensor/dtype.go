// Package tensor provides the core tensor and literal types for the Ember framework.
package tensor

// DType is a constraint for supported tensor data types.
// It uses Go generics to ensure compile-time type safety.
//
// The two narrow float kinds (Float16, BFloat16) have no native Go
// representation; they are handled through the float32-based constructors
// and stored as raw 16-bit patterns.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~bool
}

// DataType represents runtime type information for tensors and literals.
type DataType int

// Supported data types.
const (
	Float32 DataType = iota
	Float64
	Float16
	BFloat16
	Int32
	Int64
	Uint8
	Bool

	// Undefined is the element kind of the empty literal. It is never the
	// kind of an allocated tensor.
	Undefined
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Float16, BFloat16:
		return 2
	case Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Float16:
		return "float16"
	case BFloat16:
		return "bfloat16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	case Undefined:
		return "undefined"
	default:
		return "unknown"
	}
}

// NeedsWidening reports whether values of this kind must be widened to
// float32 before text formatting. The narrow float kinds have no native
// formatter.
func (dt DataType) NeedsWidening() bool {
	return dt == Float16 || dt == BFloat16
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
