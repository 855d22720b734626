package tensor

import (
	"fmt"
	"math"

	"github.com/x448/float16"
)

// Narrow float kinds are stored as raw 16-bit patterns and widened to
// float32 at every read. IEEE binary16 goes through the float16 package;
// bfloat16 is the top half of the float32 bit pattern.

func float16Bits(f float32) uint16 {
	return uint16(float16.Fromfloat32(f))
}

func float16Value(bits uint16) float32 {
	return float16.Frombits(bits).Float32()
}

func bfloat16Bits(f float32) uint16 {
	b := math.Float32bits(f)
	// Round to nearest even before truncating the low 16 bits.
	rounding := uint32(0x7fff) + ((b >> 16) & 1)
	return uint16((b + rounding) >> 16)
}

func bfloat16Value(bits uint16) float32 {
	return math.Float32frombits(uint32(bits) << 16)
}

// narrowBits encodes a float32 into the given narrow kind's bit pattern.
// Only valid for kinds with NeedsWidening() == true.
func narrowBits(dt DataType, f float32) uint16 {
	switch dt {
	case Float16:
		return float16Bits(f)
	case BFloat16:
		return bfloat16Bits(f)
	default:
		panic(fmt.Sprintf("%v is not a narrow float kind", dt))
	}
}

// widenBits decodes a stored narrow-float bit pattern to float32.
// Only valid for kinds with NeedsWidening() == true.
func widenBits(dt DataType, bits uint16) float32 {
	switch dt {
	case Float16:
		return float16Value(bits)
	case BFloat16:
		return bfloat16Value(bits)
	default:
		panic(fmt.Sprintf("%v is not a narrow float kind", dt))
	}
}
