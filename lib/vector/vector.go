package vector

import (
	"fmt"
	"math"
	"strconv"
)

type Kind int

const (
	Invalid Kind = iota
	Float64
	Int32
)

func (k Kind) String() string {
	switch k {
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	default:
		return "invalid"
	}
}

func ParseKind(value string) (Kind, error) {
	switch value {
	case "", "double", "float64":
		return Float64, nil
	case "integer", "int32":
		return Int32, nil
	}

	return Invalid, fmt.Errorf("unsupported vector kind: %q", value)
}

// NullInt32 marks a null slot in an [Int32] vector.
const NullInt32 = math.MinInt32

// Vector is a contiguous, pre-allocated destination for materialized values.
// Only the backing slice that matches [Kind] is populated.
type Vector struct {
	kind     Kind
	float64s []float64
	int32s   []int32
}

func NewFloat64(length int) *Vector {
	return &Vector{kind: Float64, float64s: make([]float64, length)}
}

func NewInt32(length int) *Vector {
	return &Vector{kind: Int32, int32s: make([]int32, length)}
}

func New(kind Kind, length int) (*Vector, error) {
	switch kind {
	case Float64:
		return NewFloat64(length), nil
	case Int32:
		return NewInt32(length), nil
	}

	return nil, fmt.Errorf("unsupported vector kind: %s", kind)
}

func (v *Vector) Kind() Kind {
	return v.kind
}

func (v *Vector) Len() int {
	switch v.kind {
	case Float64:
		return len(v.float64s)
	case Int32:
		return len(v.int32s)
	default:
		return 0
	}
}

func (v *Vector) Float64s() []float64 {
	return v.float64s
}

func (v *Vector) Int32s() []int32 {
	return v.int32s
}

// Format returns the textual form of the element at [i] with up to 15 significant digits.
// Nulls are rendered as "NA".
func (v *Vector) Format(i int) string {
	switch v.kind {
	case Float64:
		value := v.float64s[i]
		if math.IsNaN(value) {
			return "NA"
		}
		return strconv.FormatFloat(value, 'g', 15, 64)
	case Int32:
		value := v.int32s[i]
		if value == NullInt32 {
			return "NA"
		}
		return strconv.FormatInt(int64(value), 10)
	default:
		return ""
	}
}
