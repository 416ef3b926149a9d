package materialize

import "github.com/artie-labs/materializer/lib/vector"

// Materialize picks the rule for the converter's destination and runs it.
func Materialize(c *Converter) error {
	switch c.PType.Kind {
	case vector.Float64:
		if c.PType.Difftime {
			return MaterializeDifftime(c)
		}
		return MaterializeDouble(c)
	case vector.Int32:
		if c.PType.Difftime {
			return NewUnsupportedTypeError("cannot materialize %s into %s", c.Schema, c.PType)
		}
		return MaterializeInteger(c)
	}

	return NewUnsupportedTypeError("cannot materialize %s into %s", c.Schema, c.PType)
}
