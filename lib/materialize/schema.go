package materialize

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"

	"github.com/artie-labs/materializer/lib/timeunit"
	"github.com/artie-labs/materializer/lib/vector"
)

// SchemaView is the part of an Arrow data type that the materializers care about.
type SchemaView struct {
	Type arrow.Type
	// TimeUnit is only meaningful for TIME32, TIME64, DURATION and TIMESTAMP.
	TimeUnit arrow.TimeUnit
	// DecimalScale is only meaningful for DECIMAL128.
	DecimalScale int32
}

func NewSchemaView(dataType arrow.DataType) SchemaView {
	view := SchemaView{Type: dataType.ID()}
	switch castedType := dataType.(type) {
	case *arrow.Time32Type:
		view.TimeUnit = castedType.Unit
	case *arrow.Time64Type:
		view.TimeUnit = castedType.Unit
	case *arrow.DurationType:
		view.TimeUnit = castedType.Unit
	case *arrow.TimestampType:
		view.TimeUnit = castedType.Unit
	case *arrow.Decimal128Type:
		view.DecimalScale = castedType.Scale
	}

	return view
}

func (s SchemaView) String() string {
	switch s.Type {
	case arrow.TIME32, arrow.TIME64, arrow.DURATION, arrow.TIMESTAMP:
		if s.TimeUnit < arrow.Second || s.TimeUnit > arrow.Nanosecond {
			return fmt.Sprintf("%s[unit(%d)]", s.Type, int(s.TimeUnit))
		}
		return fmt.Sprintf("%s[%s]", s.Type, s.TimeUnit)
	default:
		return s.Type.String()
	}
}

// PTypeView describes the destination a column is materialized into.
type PTypeView struct {
	Kind vector.Kind
	// Difftime marks a float64 destination that holds elapsed time expressed in [Units].
	Difftime bool
	Units    timeunit.Unit
}

func (p PTypeView) String() string {
	if p.Difftime {
		return fmt.Sprintf("difftime[%s]", p.Units)
	}

	return p.Kind.String()
}
