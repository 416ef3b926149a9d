package materialize

import (
	"github.com/apache/arrow-go/v18/arrow"

	"github.com/artie-labs/materializer/lib/timeunit"
	"github.com/artie-labs/materializer/lib/vector"
)

func (m *MaterializeTestSuite) TestMaterialize() {
	arr := m.durations(arrow.Second, []arrow.Duration{120}, nil)
	defer arr.Release()

	{
		// Difftime
		vec := vector.NewFloat64(1)
		m.NoError(Materialize(NewConverter(arr, difftimeOf(timeunit.Minutes), vec, 0)))
		m.InDelta(2.0, vec.Float64s()[0], 1e-12)
	}
	{
		// Plain double keeps the ticks
		vec := vector.NewFloat64(1)
		m.NoError(Materialize(NewConverter(arr, doublePType, vec, 0)))
		m.Equal(120.0, vec.Float64s()[0])
	}
	{
		// Durations are not integral
		vec := vector.NewInt32(1)
		m.True(IsUnsupportedTypeError(Materialize(NewConverter(arr, integerPType, vec, 0))))
	}
	{
		vec := vector.NewInt32(1)
		m.True(IsUnsupportedTypeError(Materialize(NewConverter(arr, PTypeView{Kind: vector.Int32, Difftime: true}, vec, 0))))
	}
	{
		vec := vector.NewFloat64(1)
		m.True(IsUnsupportedTypeError(Materialize(NewConverter(arr, PTypeView{}, vec, 0))))
	}
}
