package materialize

import (
	"math"

	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/artie-labs/materializer/lib/vector"
)

type integral interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// copyIntegral writes values into [dst], returning how many could not be represented as int32.
// [vector.NullInt32] is reserved for nulls, so it counts as unrepresentable too.
func copyIntegral[T integral](src valuer[T], srcOffset int, dst []int32) int {
	var lossy int
	for i := range dst {
		if src.IsNull(srcOffset + i) {
			dst[i] = vector.NullInt32
			continue
		}

		value := src.Value(srcOffset + i)
		if value < 0 {
			if int64(value) <= math.MinInt32 {
				dst[i] = vector.NullInt32
				lossy++
				continue
			}
		} else if uint64(value) > math.MaxInt32 {
			dst[i] = vector.NullInt32
			lossy++
			continue
		}

		dst[i] = int32(value)
	}

	return lossy
}

// MaterializeInteger copies integral source values into an int32 destination.
// Values outside of the int32 range are written as null and counted in [Converter.LossyCount].
func MaterializeInteger(c *Converter) error {
	if !c.destinationIs(vector.Int32) {
		return NewUnsupportedTypeError("cannot materialize %s into %s", c.Schema, c.PType)
	}

	if err := c.checkWindow(); err != nil {
		return err
	}

	dst := c.Dst.Vector.Int32s()[c.Dst.Offset : c.Dst.Offset+c.Dst.Length]
	switch castedArray := c.Array.(type) {
	case *array.Null:
		for i := range dst {
			dst[i] = vector.NullInt32
		}
	case *array.Boolean:
		for i := range dst {
			switch {
			case castedArray.IsNull(c.SrcOffset + i):
				dst[i] = vector.NullInt32
			case castedArray.Value(c.SrcOffset + i):
				dst[i] = 1
			default:
				dst[i] = 0
			}
		}
	case *array.Int8:
		c.LossyCount += copyIntegral[int8](castedArray, c.SrcOffset, dst)
	case *array.Int16:
		c.LossyCount += copyIntegral[int16](castedArray, c.SrcOffset, dst)
	case *array.Int32:
		c.LossyCount += copyIntegral[int32](castedArray, c.SrcOffset, dst)
	case *array.Int64:
		c.LossyCount += copyIntegral[int64](castedArray, c.SrcOffset, dst)
	case *array.Uint8:
		c.LossyCount += copyIntegral[uint8](castedArray, c.SrcOffset, dst)
	case *array.Uint16:
		c.LossyCount += copyIntegral[uint16](castedArray, c.SrcOffset, dst)
	case *array.Uint32:
		c.LossyCount += copyIntegral[uint32](castedArray, c.SrcOffset, dst)
	case *array.Uint64:
		c.LossyCount += copyIntegral[uint64](castedArray, c.SrcOffset, dst)
	default:
		return NewUnsupportedTypeError("cannot materialize %s into %s", c.Schema, c.PType)
	}

	return nil
}
