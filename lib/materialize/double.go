package materialize

import (
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/float16"

	"github.com/artie-labs/materializer/lib/vector"
)

type numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64
}

type valuer[T any] interface {
	IsNull(i int) bool
	Value(i int) T
}

func copyNumeric[T numeric](src valuer[T], srcOffset int, dst []float64) {
	for i := range dst {
		if src.IsNull(srcOffset + i) {
			dst[i] = math.NaN()
		} else {
			dst[i] = float64(src.Value(srcOffset + i))
		}
	}
}

func copyConverted[T any](src valuer[T], srcOffset int, dst []float64, convert func(T) float64) {
	for i := range dst {
		if src.IsNull(srcOffset + i) {
			dst[i] = math.NaN()
		} else {
			dst[i] = convert(src.Value(srcOffset + i))
		}
	}
}

// MaterializeDouble copies the raw values of the source array into a float64 destination.
// Temporal types are copied as their integer tick counts, no unit conversion happens here. Nulls become NaN.
func MaterializeDouble(c *Converter) error {
	if !c.destinationIs(vector.Float64) {
		return NewUnsupportedTypeError("cannot materialize %s into %s", c.Schema, c.PType)
	}

	if err := c.checkWindow(); err != nil {
		return err
	}

	dst := c.Dst.Vector.Float64s()[c.Dst.Offset : c.Dst.Offset+c.Dst.Length]
	switch castedArray := c.Array.(type) {
	case *array.Null:
		for i := range dst {
			dst[i] = math.NaN()
		}
	case *array.Boolean:
		copyConverted[bool](castedArray, c.SrcOffset, dst, func(value bool) float64 {
			if value {
				return 1
			}
			return 0
		})
	case *array.Int8:
		copyNumeric[int8](castedArray, c.SrcOffset, dst)
	case *array.Int16:
		copyNumeric[int16](castedArray, c.SrcOffset, dst)
	case *array.Int32:
		copyNumeric[int32](castedArray, c.SrcOffset, dst)
	case *array.Int64:
		copyNumeric[int64](castedArray, c.SrcOffset, dst)
	case *array.Uint8:
		copyNumeric[uint8](castedArray, c.SrcOffset, dst)
	case *array.Uint16:
		copyNumeric[uint16](castedArray, c.SrcOffset, dst)
	case *array.Uint32:
		copyNumeric[uint32](castedArray, c.SrcOffset, dst)
	case *array.Uint64:
		copyNumeric[uint64](castedArray, c.SrcOffset, dst)
	case *array.Float16:
		copyConverted[float16.Num](castedArray, c.SrcOffset, dst, func(value float16.Num) float64 {
			return float64(value.Float32())
		})
	case *array.Float32:
		copyNumeric[float32](castedArray, c.SrcOffset, dst)
	case *array.Float64:
		copyNumeric[float64](castedArray, c.SrcOffset, dst)
	case *array.Date32:
		copyNumeric[arrow.Date32](castedArray, c.SrcOffset, dst)
	case *array.Date64:
		copyNumeric[arrow.Date64](castedArray, c.SrcOffset, dst)
	case *array.Time32:
		copyNumeric[arrow.Time32](castedArray, c.SrcOffset, dst)
	case *array.Time64:
		copyNumeric[arrow.Time64](castedArray, c.SrcOffset, dst)
	case *array.Duration:
		copyNumeric[arrow.Duration](castedArray, c.SrcOffset, dst)
	case *array.Timestamp:
		copyNumeric[arrow.Timestamp](castedArray, c.SrcOffset, dst)
	case *array.Decimal128:
		copyConverted[decimal128.Num](castedArray, c.SrcOffset, dst, func(value decimal128.Num) float64 {
			return value.ToFloat64(c.Schema.DecimalScale)
		})
	default:
		return NewUnsupportedTypeError("cannot materialize %s into %s", c.Schema, c.PType)
	}

	return nil
}
