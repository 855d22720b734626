package tensor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralScalar(t *testing.T) {
	lit := ScalarOf[float32](3.5)

	assert.Equal(t, LiteralScalar, lit.Kind())
	assert.True(t, lit.IsScalar())
	assert.Equal(t, Shape{}, lit.Sizes())
	assert.Equal(t, Float32, lit.DataType())
	assert.Equal(t, float32(3.5), lit.Scalar())
}

func TestLiteralSizesRecursion(t *testing.T) {
	row := func(a, b int32) Literal {
		return MustList(ScalarOf(a), ScalarOf(b))
	}
	lit := MustList(row(1, 2), row(3, 4), row(5, 6))

	// [outer_count] + sizes of first element, recursively.
	assert.Equal(t, Shape{3, 2}, lit.Sizes())
	assert.Equal(t, Shape{2}, lit.List()[0].Sizes())
	assert.Equal(t, Int32, lit.DataType())

	deep := MustList(lit.List()[0], lit.List()[1])
	assert.Equal(t, Shape{2, 2}, deep.Sizes())
}

func TestLiteralShapeMismatch(t *testing.T) {
	short := MustList(ScalarOf[int32](1))
	long := MustList(ScalarOf[int32](1), ScalarOf[int32](2))

	_, err := ListOf(short, long)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "[1]")
	assert.Contains(t, err.Error(), "[2]")
}

func TestLiteralKindMismatch(t *testing.T) {
	_, err := ListOf(ScalarOf[int32](1), ScalarOf[int64](2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKindMismatch)
	assert.Contains(t, err.Error(), "int32")
	assert.Contains(t, err.Error(), "int64")
}

func TestLiteralEmptyListRejected(t *testing.T) {
	_, err := ListOf()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMustListPanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() {
		MustList(ScalarOf[int32](1), ScalarOf[float32](2))
	})
}

func TestLiteralEmpty(t *testing.T) {
	lit := Empty()

	assert.True(t, lit.IsList())
	assert.Equal(t, Shape{0}, lit.Sizes())
	assert.Equal(t, Undefined, lit.DataType())
	assert.Empty(t, lit.List())

	raw, err := lit.Build(NewMockBackend())
	require.NoError(t, err)
	assert.Equal(t, 0, raw.NumElements())
	assert.Equal(t, Shape{0}, raw.Shape())
}

func TestLiteralWrongVariantAccessPanics(t *testing.T) {
	scalar := ScalarOf[float32](1)
	list := MustList(scalar)
	flat := Flat([]float32{1, 2})

	assert.Panics(t, func() { scalar.List() })
	assert.Panics(t, func() { scalar.Tensor() })
	assert.Panics(t, func() { list.Scalar() })
	assert.Panics(t, func() { flat.List() })
}

func TestLiteralFillOnTensorRefPanics(t *testing.T) {
	flat := Flat([]float32{1, 2})
	dst, err := NewRaw(Shape{2}, Float32, CPU)
	require.NoError(t, err)

	assert.Panics(t, func() { flat.fill(dst) })
}

func TestLiteralBuildListOfTensorRefsPanics(t *testing.T) {
	// Tensor-literal children pass the construction-time checks, but a list
	// can only be filled from scalar leaves; materializing it is fatal.
	lit, err := ListOf(Flat([]float32{1, 2}), Flat([]float32{3, 4}))
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, lit.Sizes())

	backend := NewMockBackend()
	assert.Panics(t, func() { _, _ = lit.Build(backend) })
}

func TestLiteralFillRankMismatchPanics(t *testing.T) {
	lit := MustList(ScalarOf[float32](1))
	dst, err := NewRaw(Shape{}, Float32, CPU)
	require.NoError(t, err)

	defer func() {
		r := recover()
		require.NotNil(t, r, "filling a list into a 0-dim tensor should panic")
		assert.Contains(t, fmt.Sprint(r), "0-dim")
	}()
	lit.fill(dst)
}

func TestLiteralFillShapeDriftPanics(t *testing.T) {
	lit := MustList(ScalarOf[float32](1), ScalarOf[float32](2))
	wrong, err := NewRaw(Shape{3}, Float32, CPU)
	require.NoError(t, err)

	assert.Panics(t, func() { lit.fill(wrong) })
}

func TestLiteralBuildScalar(t *testing.T) {
	backend := NewMockBackend()

	raw, err := ScalarOf[float64](2.25).Build(backend)
	require.NoError(t, err)

	assert.Equal(t, Shape{}, raw.Shape())
	assert.Equal(t, 1, raw.NumElements())
	assert.Equal(t, backend.Device(), raw.Device())
	assert.Equal(t, 2.25, raw.ScalarValue())

	// A single element needs no staging transfer.
	assert.Equal(t, 0, backend.Transfers())
}

func TestLiteralBuildNested(t *testing.T) {
	backend := NewMockBackend()

	lit := MustList(
		MustList(ScalarOf[int32](1), ScalarOf[int32](2)),
		MustList(ScalarOf[int32](3), ScalarOf[int32](4)),
	)

	raw, err := lit.Build(backend)
	require.NoError(t, err)

	assert.Equal(t, lit.Sizes(), raw.Shape())
	assert.Equal(t, Int32, raw.DType())
	assert.Equal(t, backend.Device(), raw.Device())
	assert.Equal(t, []int32{1, 2, 3, 4}, raw.AsInt32())
}

func TestLiteralBuildStagesOnce(t *testing.T) {
	backend := NewMockBackend()

	rows := make([]Literal, 8)
	for i := range rows {
		rows[i] = MustList(
			ScalarOf(float32(i)), ScalarOf(float32(i+1)),
			ScalarOf(float32(i+2)), ScalarOf(float32(i+3)),
		)
	}
	lit := MustList(rows...)

	raw, err := lit.Build(backend)
	require.NoError(t, err)
	assert.Equal(t, Shape{8, 4}, raw.Shape())

	// 32 leaf elements, exactly one bulk transfer to the device.
	assert.Equal(t, 1, backend.Transfers())
}

func TestLiteralRoundTripAllKinds(t *testing.T) {
	backend := NewMockBackend()

	tests := []struct {
		name string
		lit  Literal
		want []any
	}{
		{
			name: "float32",
			lit: MustList(
				MustList(ScalarOf[float32](1.5), ScalarOf[float32](-2)),
				MustList(ScalarOf[float32](0), ScalarOf[float32](4.25)),
			),
			want: []any{float32(1.5), float32(-2), float32(0), float32(4.25)},
		},
		{
			name: "float64",
			lit:  MustList(ScalarOf(1.5), ScalarOf(2.5)),
			want: []any{1.5, 2.5},
		},
		{
			name: "int64",
			lit:  MustList(ScalarOf[int64](-7), ScalarOf[int64](9)),
			want: []any{int64(-7), int64(9)},
		},
		{
			name: "uint8",
			lit:  MustList(ScalarOf[uint8](0), ScalarOf[uint8](255)),
			want: []any{uint8(0), uint8(255)},
		},
		{
			name: "bool",
			lit:  MustList(ScalarOf(true), ScalarOf(false)),
			want: []any{true, false},
		},
		{
			name: "float16",
			lit:  MustList(Float16Scalar(1.5), Float16Scalar(-0.25)),
			want: []any{float32(1.5), float32(-0.25)},
		},
		{
			name: "bfloat16",
			lit:  MustList(BFloat16Scalar(1.5), BFloat16Scalar(-2)),
			want: []any{float32(1.5), float32(-2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := tt.lit.Build(backend)
			require.NoError(t, err)
			require.Equal(t, tt.lit.Sizes(), raw.Shape())

			// Row-major read-back reproduces the literal's leaves in order.
			for i, want := range tt.want {
				assert.Equal(t, want, raw.ValueAt(i), "element %d", i)
			}
		})
	}
}

func TestLiteralFlat(t *testing.T) {
	lit := Flat([]int32{1, 2, 3})

	assert.True(t, lit.IsTensor())
	assert.Equal(t, Shape{3}, lit.Sizes())
	assert.Equal(t, Int32, lit.DataType())

	// The backing tensor exists eagerly, before any Build call.
	assert.Equal(t, CPU, lit.Tensor().Device())

	backend := NewMockBackend()
	raw, err := lit.Build(backend)
	require.NoError(t, err)
	assert.Equal(t, backend.Device(), raw.Device())
	assert.Equal(t, []int32{1, 2, 3}, raw.AsInt32())
}

func TestLiteralFlatNarrow(t *testing.T) {
	lit := FlatFloat16([]float32{1.5, 0.25})
	assert.Equal(t, Float16, lit.DataType())
	assert.Equal(t, Shape{2}, lit.Sizes())
	assert.Equal(t, float32(1.5), lit.Tensor().ValueAt(0))

	blit := FlatBFloat16([]float32{-2})
	assert.Equal(t, BFloat16, blit.DataType())
	assert.Equal(t, float32(-2), blit.Tensor().ValueAt(0))
}

func TestLiteralBuildAsOverridesKind(t *testing.T) {
	backend := NewMockBackend()

	lit := MustList(ScalarOf[int32](1), ScalarOf[int32](2))
	raw, err := lit.BuildAs(backend, Float64)
	require.NoError(t, err)

	assert.Equal(t, Float64, raw.DType())
	assert.Equal(t, []float64{1, 2}, raw.AsFloat64())
}

func TestLiteralBuildAsTensorRef(t *testing.T) {
	backend := NewMockBackend()

	lit := Flat([]float32{1, 2, 3})
	raw, err := lit.BuildAs(backend, Int64)
	require.NoError(t, err)

	assert.Equal(t, Int64, raw.DType())
	assert.Equal(t, backend.Device(), raw.Device())
	assert.Equal(t, []int64{1, 2, 3}, raw.AsInt64())
}

func TestLiteralString(t *testing.T) {
	tests := []struct {
		name string
		lit  Literal
		want string
	}{
		{
			name: "nested 2x2",
			lit: MustList(
				MustList(ScalarOf[int32](1), ScalarOf[int32](2)),
				MustList(ScalarOf[int32](3), ScalarOf[int32](4)),
			),
			want: "{{1, 2}, {3, 4}}",
		},
		{
			name: "scalar",
			lit:  ScalarOf[float32](3.5),
			want: "3.5",
		},
		{
			name: "bool list",
			lit:  MustList(ScalarOf(true), ScalarOf(false)),
			want: "{true, false}",
		},
		{
			name: "flat tensor",
			lit:  Flat([]int32{1, 2, 3}),
			want: "{1, 2, 3}",
		},
		{
			name: "empty",
			lit:  Empty(),
			want: "{}",
		},
		{
			name: "float16 scalar widens",
			lit:  Float16Scalar(1.5),
			want: "1.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lit.String())
		})
	}
}

func TestLiteralWriteTo(t *testing.T) {
	var sb strings.Builder
	lit := MustList(ScalarOf[int32](1), ScalarOf[int32](2))

	n, err := lit.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(len("{1, 2}")), n)
	assert.Equal(t, "{1, 2}", sb.String())
}

func TestLiteralConstructionDoesNotAllocateOnFailure(t *testing.T) {
	// A failed list keeps no children and no tensor.
	lit, err := ListOf(ScalarOf[int32](1), ScalarOf[int64](2))
	require.Error(t, err)
	assert.Equal(t, Literal{}, lit)
}
