package tensor

import "testing"

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		want  int
	}{
		{Float32, 4},
		{Float64, 8},
		{Float16, 2},
		{BFloat16, 2},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.want {
			t.Errorf("Size(%v) = %d, want %d", tt.dtype, got, tt.want)
		}
	}
}

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dtype DataType
		want  string
	}{
		{Float32, "float32"},
		{Float16, "float16"},
		{BFloat16, "bfloat16"},
		{Bool, "bool"},
		{Undefined, "undefined"},
	}

	for _, tt := range tests {
		if got := tt.dtype.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.dtype), got, tt.want)
		}
	}
}

func TestDataTypeNeedsWidening(t *testing.T) {
	widened := []DataType{Float16, BFloat16}
	for _, dt := range widened {
		if !dt.NeedsWidening() {
			t.Errorf("%v should need widening before formatting", dt)
		}
	}

	native := []DataType{Float32, Float64, Int32, Int64, Uint8, Bool}
	for _, dt := range native {
		if dt.NeedsWidening() {
			t.Errorf("%v should not need widening", dt)
		}
	}
}

func TestInferDataType(t *testing.T) {
	if got := inferDataType(float32(0)); got != Float32 {
		t.Errorf("inferDataType(float32) = %v, want Float32", got)
	}
	if got := inferDataType(int64(0)); got != Int64 {
		t.Errorf("inferDataType(int64) = %v, want Int64", got)
	}
	if got := inferDataType(false); got != Bool {
		t.Errorf("inferDataType(bool) = %v, want Bool", got)
	}
}

func TestFloat16RoundTrip(t *testing.T) {
	// Values exactly representable in binary16.
	values := []float32{0, 1, -1, 0.5, 1.5, 0.25, -2, 1024}
	for _, v := range values {
		if got := float16Value(float16Bits(v)); got != v {
			t.Errorf("float16 round trip of %v = %v", v, got)
		}
	}
}

func TestBFloat16RoundTrip(t *testing.T) {
	// Values exactly representable in bfloat16.
	values := []float32{0, 1, -1, 0.5, 1.5, -2, 256}
	for _, v := range values {
		if got := bfloat16Value(bfloat16Bits(v)); got != v {
			t.Errorf("bfloat16 round trip of %v = %v", v, got)
		}
	}
}

func TestBFloat16Rounding(t *testing.T) {
	// 1 + 2^-9 is not representable in bfloat16 (8 mantissa bits);
	// it must round to the nearest representable value, not truncate far off.
	v := float32(1.0 + 1.0/512.0)
	got := bfloat16Value(bfloat16Bits(v))
	if got != 1.0 && got != float32(1.0+1.0/128.0) {
		t.Errorf("bfloat16 rounding of %v = %v, want a nearest neighbor", v, got)
	}
}
