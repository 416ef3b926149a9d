package materialize

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/artie-labs/materializer/lib/timeunit"
	"github.com/artie-labs/materializer/lib/vector"
)

// MaterializeDifftime writes TIME32, TIME64 and DURATION arrays into a float64 destination expressed in [PTypeView.Units].
// NULL arrays are copied as-is since there is no resolution to scale from.
// Errors from [MaterializeDouble] are returned unchanged.
func MaterializeDifftime(c *Converter) error {
	if c.PType.Kind != vector.Float64 {
		return NewUnsupportedTypeError("cannot materialize %s into %s", c.Schema, c.PType)
	}

	switch c.Schema.Type {
	case arrow.NULL:
		return MaterializeDouble(c)
	case arrow.TIME32, arrow.TIME64, arrow.DURATION:
	default:
		return NewUnsupportedTypeError("cannot materialize %s into %s", c.Schema, c.PType)
	}

	// Resolve the scale first so an unknown resolution never leaves a half-written destination.
	scale, err := timeunit.Scale(c.Schema.TimeUnit, c.PType.Units)
	if err != nil {
		return NewUnsupportedTypeError("cannot materialize %s into %s: %v", c.Schema, c.PType, err)
	}

	if err = MaterializeDouble(c); err != nil {
		return err
	}

	if scale != 1 {
		values := c.Dst.Vector.Float64s()
		for i := 0; i < c.Dst.Length; i++ {
			values[c.Dst.Offset+i] *= scale
		}
	}

	return nil
}
