package tensor

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Literal construction failures. Both are detected while the nested
// expression is being assembled, before any full-shape tensor is allocated.
var (
	// ErrShapeMismatch reports sibling sub-lists that disagree on shape.
	ErrShapeMismatch = errors.New("literal shape mismatch")
	// ErrKindMismatch reports sibling sub-lists that disagree on element kind.
	ErrKindMismatch = errors.New("literal element kind mismatch")
)

// LiteralKind tags the variant of a Literal.
type LiteralKind int

// Literal variants.
const (
	// LiteralScalar holds a single value. Shape is empty (rank 0).
	LiteralScalar LiteralKind = iota
	// LiteralList holds an ordered sequence of same-shaped, same-kind children.
	LiteralList
	// LiteralTensor refers to an already materialized 1-D tensor.
	LiteralTensor
)

// String returns a human-readable variant name.
func (k LiteralKind) String() string {
	switch k {
	case LiteralScalar:
		return "scalar"
	case LiteralList:
		return "list"
	case LiteralTensor:
		return "tensor"
	default:
		return "unknown"
	}
}

// Literal represents a nested literal expression before it becomes a tensor:
// a single scalar, a nested list of literals, or a flat run of values that
// was wrapped into a 1-D tensor up front.
//
// A Literal is immutable after construction. Its shape and element kind are
// computed once, bottom-up, and are valid for every variant. Materialization
// is deferred until Build/BuildAs is called with a target backend.
//
// Example:
//
//	lit := tensor.MustList(
//	    tensor.MustList(tensor.ScalarOf[int32](1), tensor.ScalarOf[int32](2)),
//	    tensor.MustList(tensor.ScalarOf[int32](3), tensor.ScalarOf[int32](4)),
//	)
//	lit.Sizes()     // [2, 2]
//	lit.String()    // {{1, 2}, {3, 4}}
//	raw, _ := lit.Build(cpu.New())
type Literal struct {
	kind   LiteralKind
	sizes  Shape
	dtype  DataType
	scalar any        // set for LiteralScalar
	list   []Literal  // set for LiteralList
	tensor *RawTensor // set for LiteralTensor
}

// ScalarOf wraps a single value as a rank-0 literal.
func ScalarOf[T DType](v T) Literal {
	return Literal{
		kind:   LiteralScalar,
		sizes:  Shape{},
		dtype:  inferDataType(v),
		scalar: v,
	}
}

// Float16Scalar wraps a value as a rank-0 literal of kind Float16.
// The value is rounded to IEEE binary16 when the literal is materialized.
func Float16Scalar(v float32) Literal {
	return Literal{
		kind:   LiteralScalar,
		sizes:  Shape{},
		dtype:  Float16,
		scalar: v,
	}
}

// BFloat16Scalar wraps a value as a rank-0 literal of kind BFloat16.
func BFloat16Scalar(v float32) Literal {
	return Literal{
		kind:   LiteralScalar,
		sizes:  Shape{},
		dtype:  BFloat16,
		scalar: v,
	}
}

// Flat wraps a flat run of values as a 1-D tensor literal, bypassing
// per-element scalar wrapping. The backing tensor is built eagerly in host
// memory so that it exists even if the literal is never materialized.
func Flat[T DType](values []T) Literal {
	raw, err := FromSlice(values)
	if err != nil {
		panic(err) // FromSlice cannot fail for a non-negative length
	}
	return Literal{
		kind:   LiteralTensor,
		sizes:  Shape{len(values)},
		dtype:  raw.DType(),
		tensor: raw,
	}
}

// FlatFloat16 wraps a flat run of values as a 1-D Float16 tensor literal.
func FlatFloat16(values []float32) Literal {
	return flatNarrow(values, Float16)
}

// FlatBFloat16 wraps a flat run of values as a 1-D BFloat16 tensor literal.
func FlatBFloat16(values []float32) Literal {
	return flatNarrow(values, BFloat16)
}

func flatNarrow(values []float32, dtype DataType) Literal {
	raw, err := NewRaw(Shape{len(values)}, dtype, CPU)
	if err != nil {
		panic(err)
	}
	bits := raw.AsUint16()
	for i, v := range values {
		bits[i] = narrowBits(dtype, v)
	}
	return Literal{
		kind:   LiteralTensor,
		sizes:  Shape{len(values)},
		dtype:  dtype,
		tensor: raw,
	}
}

// ListOf builds a list literal from child literals. Every child must agree
// with the first on both shape and element kind; violations fail here,
// before any full-shape tensor is allocated. The resulting shape is the
// child count prepended to the first child's shape.
//
// An empty child sequence is rejected: shape and kind inference need a first
// child. Use Empty for the explicit empty literal.
func ListOf(children ...Literal) (Literal, error) {
	if len(children) == 0 {
		return Literal{}, fmt.Errorf("%w: a list literal needs at least one element (use Empty for the empty literal)", ErrShapeMismatch)
	}

	first := children[0]
	for _, child := range children[1:] {
		if !child.sizes.Equal(first.sizes) {
			return Literal{}, fmt.Errorf("%w: expected all sub-lists to have sizes %v (e.g. %s), but got sub-list %s with sizes %v",
				ErrShapeMismatch, first.sizes, first.String(), child.String(), child.sizes)
		}
		if child.dtype != first.dtype {
			return Literal{}, fmt.Errorf("%w: expected all elements to have kind %v, but got element of kind %v",
				ErrKindMismatch, first.dtype, child.dtype)
		}
	}

	sizes := make(Shape, 0, len(first.sizes)+1)
	sizes = append(sizes, len(children))
	sizes = append(sizes, first.sizes...)

	return Literal{
		kind:  LiteralList,
		sizes: sizes,
		dtype: first.dtype,
		list:  children,
	}, nil
}

// MustList is like ListOf but panics on mismatch. Intended for literals
// whose validity is known at the call site.
func MustList(children ...Literal) Literal {
	l, err := ListOf(children...)
	if err != nil {
		panic(err)
	}
	return l
}

// Empty returns the empty literal: a list with shape [0] and no element
// kind. It materializes to a zero-length tensor.
func Empty() Literal {
	return Literal{
		kind:  LiteralList,
		sizes: Shape{0},
		dtype: Undefined,
	}
}

// Kind returns the literal's variant tag.
func (l Literal) Kind() LiteralKind {
	return l.kind
}

// Sizes returns the literal's inferred shape. Valid for every variant.
func (l Literal) Sizes() Shape {
	return l.sizes
}

// DataType returns the literal's inferred element kind. Valid for every variant.
func (l Literal) DataType() DataType {
	return l.dtype
}

// IsScalar reports whether the literal is a single value.
func (l Literal) IsScalar() bool {
	return l.kind == LiteralScalar
}

// IsList reports whether the literal is a nested list.
func (l Literal) IsList() bool {
	return l.kind == LiteralList
}

// IsTensor reports whether the literal refers to a materialized tensor.
func (l Literal) IsTensor() bool {
	return l.kind == LiteralTensor
}

// Scalar returns the wrapped value.
// Panics if the literal is not a scalar.
func (l Literal) Scalar() any {
	if !l.IsScalar() {
		panic(fmt.Sprintf("Scalar() called on a %s literal", l.kind))
	}
	return l.scalar
}

// List returns the child literals.
// Panics if the literal is not a list.
func (l Literal) List() []Literal {
	if !l.IsList() {
		panic(fmt.Sprintf("List() called on a %s literal", l.kind))
	}
	return l.list
}

// Tensor returns the referenced tensor.
// Panics if the literal is not a tensor reference.
func (l Literal) Tensor() *RawTensor {
	if !l.IsTensor() {
		panic(fmt.Sprintf("Tensor() called on a %s literal", l.kind))
	}
	return l.tensor
}

// Build materializes the literal on the backend's device using the
// literal's own element kind. The empty literal defaults to Float32.
func (l Literal) Build(b Backend) (*RawTensor, error) {
	return l.BuildAs(b, l.dtype)
}

// BuildAs materializes the literal on the backend's device with the given
// element kind. Values are converted as they are written into the staging
// buffer, not in a per-element pass afterwards.
func (l Literal) BuildAs(b Backend, dtype DataType) (*RawTensor, error) {
	if dtype == Undefined {
		dtype = Float32
	}

	switch l.kind {
	case LiteralScalar:
		// A single element: allocate at the destination directly.
		out, err := NewRaw(Shape{}, dtype, b.Device())
		if err != nil {
			return nil, err
		}
		out.SetScalar(l.scalar)
		return out, nil

	case LiteralList:
		// NOTE: The tensor is allocated and filled in host memory first and
		// moved to the destination in one bulk transfer. Filling device
		// memory element by element would cost one transfer per leaf;
		// staging keeps it at a single transfer regardless of nesting depth
		// or element count.
		staged, err := NewRaw(l.sizes, dtype, CPU)
		if err != nil {
			return nil, err
		}
		l.fill(staged)
		return b.Transfer(staged, b.Device()), nil

	case LiteralTensor:
		// Already materialized and contiguous; move and convert in bulk.
		return b.Cast(b.Transfer(l.tensor, b.Device()), dtype), nil

	default:
		panic(fmt.Sprintf("invalid literal kind %d", l.kind))
	}
}

// fill populates dst in place, outermost dimension first. dst must have
// exactly this literal's shape; a mismatch means the caller allocated the
// wrong tensor and is an internal bug, so it panics.
func (l Literal) fill(dst *RawTensor) {
	switch l.kind {
	case LiteralScalar:
		if len(dst.Shape()) != 0 {
			panic(fmt.Sprintf("expected a 0-dim tensor, but got tensor with %d dimensions", len(dst.Shape())))
		}
		dst.SetScalar(l.scalar)

	case LiteralList:
		if len(dst.Shape()) == 0 {
			panic(fmt.Sprintf("expected a tensor with %d dimensions, but got a 0-dim tensor", len(l.sizes)))
		}
		if dst.Shape()[0] != len(l.list) {
			panic(fmt.Sprintf("expected a tensor with size %d in its first dimension, but got size %d", len(l.list), dst.Shape()[0]))
		}
		for i, child := range l.list {
			child.fill(dst.OuterSlice(i))
		}

	case LiteralTensor:
		panic("a tensor literal is already materialized; fill must not be called on it")

	default:
		panic(fmt.Sprintf("invalid literal kind %d", l.kind))
	}
}

// String renders the literal in nested brace form, e.g. {{1, 2}, {3, 4}}.
// Narrow float kinds are widened to float32 before formatting.
func (l Literal) String() string {
	var sb strings.Builder
	l.render(&sb)
	return sb.String()
}

// WriteTo renders the literal to w. Implements io.WriterTo.
func (l Literal) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, l.String())
	return int64(n), err
}

// render appends the bracketed form. strings.Builder writes cannot fail.
func (l Literal) render(sb *strings.Builder) {
	switch l.kind {
	case LiteralScalar:
		fmt.Fprintf(sb, "%v", l.formatValue())

	case LiteralList:
		sb.WriteByte('{')
		for i, child := range l.list {
			if i > 0 {
				sb.WriteString(", ")
			}
			child.render(sb)
		}
		sb.WriteByte('}')

	case LiteralTensor:
		sb.WriteByte('{')
		for i := 0; i < l.tensor.Shape()[0]; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(sb, "%v", l.tensor.ValueAt(i))
		}
		sb.WriteByte('}')

	default:
		panic(fmt.Sprintf("invalid literal kind %d", l.kind))
	}
}

// formatValue widens the scalar through its narrow kind when the registry
// says so, so the printed value is the value that would actually be stored.
func (l Literal) formatValue() any {
	if l.dtype.NeedsWidening() {
		return widenBits(l.dtype, narrowBits(l.dtype, l.scalar.(float32)))
	}
	return l.scalar
}
