package tensor

import "fmt"

// Scalar values travel through the literal system as Go values of one of
// the native kinds (float32 also carries the narrow float kinds). The
// helpers below normalize them for dtype-converting writes.

func scalarAsFloat64(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint8:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("unsupported scalar value of type %T", v))
	}
}

func scalarAsInt64(v any) int64 {
	switch x := v.(type) {
	case float32:
		return int64(x)
	case float64:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint8:
		return int64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		panic(fmt.Sprintf("unsupported scalar value of type %T", v))
	}
}

func scalarAsBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case float32:
		return x != 0
	case float64:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint8:
		return x != 0
	default:
		panic(fmt.Sprintf("unsupported scalar value of type %T", v))
	}
}

// CopyConvert copies src into dst element by element, converting between
// dtypes. Both tensors must have the same shape and be contiguous.
// When the dtypes already match this is a single bulk memory copy.
func CopyConvert(dst, src *RawTensor) {
	if !dst.Shape().Equal(src.Shape()) {
		panic(fmt.Sprintf("copy convert: shape mismatch %v vs %v", dst.Shape(), src.Shape()))
	}

	if dst.DType() == src.DType() {
		copy(dst.Data()[:dst.ByteSize()], src.Data()[:src.ByteSize()])
		return
	}

	n := src.NumElements()
	for i := 0; i < n; i++ {
		dst.setValueAt(i, src.ValueAt(i))
	}
}
