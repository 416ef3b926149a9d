package materialize

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/artie-labs/materializer/lib/vector"
)

// DstView is the slice of [Vector] a single conversion is allowed to write: [Offset, Offset+Length).
type DstView struct {
	Vector *vector.Vector
	Offset int
	Length int
}

// Converter carries everything a materialization rule needs for one call.
// Rows [SrcOffset, SrcOffset+Dst.Length) of [Array] are written into [Dst].
type Converter struct {
	Schema    SchemaView
	PType     PTypeView
	Array     arrow.Array
	SrcOffset int
	Dst       DstView

	// LossyCount is incremented for every value that could not be represented in the destination and was written as null.
	LossyCount int
}

// NewConverter builds a converter that writes the whole of [array] into [dst] starting at [dstOffset].
func NewConverter(array arrow.Array, ptype PTypeView, dst *vector.Vector, dstOffset int) *Converter {
	return &Converter{
		Schema: NewSchemaView(array.DataType()),
		PType:  ptype,
		Array:  array,
		Dst: DstView{
			Vector: dst,
			Offset: dstOffset,
			Length: array.Len(),
		},
	}
}

func (c *Converter) checkWindow() error {
	if c.SrcOffset < 0 || c.Dst.Offset < 0 || c.Dst.Length < 0 {
		return NewOutOfRangeError("negative window, srcOffset: %d, dstOffset: %d, length: %d", c.SrcOffset, c.Dst.Offset, c.Dst.Length)
	}

	if c.Array == nil {
		return NewOutOfRangeError("source array is nil")
	}

	if c.SrcOffset+c.Dst.Length > c.Array.Len() {
		return NewOutOfRangeError("source window [%d, %d) exceeds array length %d", c.SrcOffset, c.SrcOffset+c.Dst.Length, c.Array.Len())
	}

	if c.Dst.Offset+c.Dst.Length > c.Dst.Vector.Len() {
		return NewOutOfRangeError("destination window [%d, %d) exceeds vector length %d", c.Dst.Offset, c.Dst.Offset+c.Dst.Length, c.Dst.Vector.Len())
	}

	return nil
}

func (c *Converter) destinationIs(kind vector.Kind) bool {
	return c.PType.Kind == kind && c.Dst.Vector != nil && c.Dst.Vector.Kind() == kind
}
