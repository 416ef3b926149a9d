package materialize

import (
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/artie-labs/materializer/lib/timeunit"
	"github.com/artie-labs/materializer/lib/vector"
)

func difftimeOf(units timeunit.Unit) PTypeView {
	return PTypeView{Kind: vector.Float64, Difftime: true, Units: units}
}

func (m *MaterializeTestSuite) TestMaterializeDifftime_NanosecondDuration() {
	arr := m.durations(arrow.Nanosecond, []arrow.Duration{1_000_000_000, 2_500_000_000, 0}, nil)
	defer arr.Release()

	{
		// Raw copy keeps the ticks
		vec := vector.NewFloat64(3)
		m.NoError(MaterializeDouble(NewConverter(arr, PTypeView{Kind: vector.Float64}, vec, 0)))
		m.Equal([]float64{1_000_000_000, 2_500_000_000, 0}, vec.Float64s())
	}
	{
		vec := vector.NewFloat64(3)
		m.NoError(MaterializeDifftime(NewConverter(arr, difftimeOf(timeunit.Seconds), vec, 0)))
		m.InDeltaSlice([]float64{1.0, 2.5, 0.0}, vec.Float64s(), 1e-12)
	}
}

func (m *MaterializeTestSuite) TestMaterializeDifftime_MillisecondTimeOfDayToHours() {
	arr := m.time32s(arrow.Millisecond, []arrow.Time32{3_600_000}, nil)
	defer arr.Release()

	vec := vector.NewFloat64(1)
	m.NoError(MaterializeDifftime(NewConverter(arr, difftimeOf(timeunit.Hours), vec, 0)))
	m.InDelta(1.0, vec.Float64s()[0], 1e-12)
}

func (m *MaterializeTestSuite) TestMaterializeDifftime_AllCombinations() {
	resolutions := []arrow.TimeUnit{arrow.Second, arrow.Millisecond, arrow.Microsecond, arrow.Nanosecond}
	units := []timeunit.Unit{timeunit.Seconds, timeunit.Minutes, timeunit.Hours, timeunit.Days, timeunit.Weeks}
	for _, resolution := range resolutions {
		arr := m.durations(resolution, []arrow.Duration{7, -3, 0}, nil)
		for _, unit := range units {
			scale, err := timeunit.Scale(resolution, unit)
			m.NoError(err)

			vec := vector.NewFloat64(3)
			m.NoError(MaterializeDifftime(NewConverter(arr, difftimeOf(unit), vec, 0)), "%s -> %s", resolution, unit)
			m.Equal([]float64{7 * scale, -3 * scale, 0}, vec.Float64s(), "%s -> %s", resolution, unit)
		}
		arr.Release()
	}
}

func (m *MaterializeTestSuite) TestMaterializeDifftime_Time64() {
	arr := m.time64s(arrow.Microsecond, []arrow.Time64{90_000_000, 0}, []bool{true, false})
	defer arr.Release()

	vec := vector.NewFloat64(2)
	m.NoError(MaterializeDifftime(NewConverter(arr, difftimeOf(timeunit.Minutes), vec, 0)))
	m.InDelta(1.5, vec.Float64s()[0], 1e-12)
	m.True(math.IsNaN(vec.Float64s()[1]))
}

func (m *MaterializeTestSuite) TestMaterializeDifftime_IdentityIsBitExact() {
	values := []arrow.Duration{math.MaxInt64, math.MinInt64, 1, -1, 123456789}
	arr := m.durations(arrow.Second, values, nil)
	defer arr.Release()

	raw := vector.NewFloat64(len(values))
	m.NoError(MaterializeDouble(NewConverter(arr, PTypeView{Kind: vector.Float64}, raw, 0)))

	vec := vector.NewFloat64(len(values))
	m.NoError(MaterializeDifftime(NewConverter(arr, difftimeOf(timeunit.Seconds), vec, 0)))
	for i := range values {
		m.Equal(math.Float64bits(raw.Float64s()[i]), math.Float64bits(vec.Float64s()[i]))
	}
}

func (m *MaterializeTestSuite) TestMaterializeDifftime_UnknownUnitIsSeconds() {
	arr := m.durations(arrow.Millisecond, []arrow.Duration{1500}, nil)
	defer arr.Release()

	vec := vector.NewFloat64(1)
	m.NoError(MaterializeDifftime(NewConverter(arr, difftimeOf(timeunit.Unit(42)), vec, 0)))
	m.Equal(1500*1e-3, vec.Float64s()[0])
}

func (m *MaterializeTestSuite) TestMaterializeDifftime_UnknownResolution() {
	arr := m.int64s([]int64{10, 20}, nil)
	defer arr.Release()

	for _, unit := range []timeunit.Unit{timeunit.Seconds, timeunit.Minutes, timeunit.Hours, timeunit.Days, timeunit.Weeks, timeunit.Unit(42)} {
		vec := vector.NewFloat64(2)
		vec.Float64s()[0] = -1
		vec.Float64s()[1] = -2

		converter := NewConverter(arr, difftimeOf(unit), vec, 0)
		converter.Schema = SchemaView{Type: arrow.DURATION, TimeUnit: arrow.TimeUnit(9)}
		err := MaterializeDifftime(converter)
		m.True(IsUnsupportedTypeError(err), "%s", unit)
		m.Equal([]float64{-1, -2}, vec.Float64s())
	}
}

func (m *MaterializeTestSuite) TestMaterializeDifftime_Null() {
	arr := array.NewNull(3)
	defer arr.Release()

	for _, unit := range []timeunit.Unit{timeunit.Seconds, timeunit.Minutes, timeunit.Hours, timeunit.Days, timeunit.Weeks} {
		vec := vector.NewFloat64(3)
		m.NoError(MaterializeDifftime(NewConverter(arr, difftimeOf(unit), vec, 0)))
		for _, value := range vec.Float64s() {
			m.True(math.IsNaN(value))
		}
	}
}

func (m *MaterializeTestSuite) TestMaterializeDifftime_UnsupportedSource() {
	arr := m.int64s([]int64{1, 2}, nil)
	defer arr.Release()

	vec := vector.NewFloat64(2)
	err := MaterializeDifftime(NewConverter(arr, difftimeOf(timeunit.Seconds), vec, 0))
	m.True(IsUnsupportedTypeError(err))
	m.ErrorContains(err, "cannot materialize INT64 into difftime[secs]")
	m.Equal([]float64{0, 0}, vec.Float64s())
}

func (m *MaterializeTestSuite) TestMaterializeDifftime_IntegerDestination() {
	{
		arr := m.durations(arrow.Second, []arrow.Duration{5}, nil)
		defer arr.Release()

		vec := vector.NewInt32(1)
		vec.Int32s()[0] = 99
		err := MaterializeDifftime(NewConverter(arr, PTypeView{Kind: vector.Int32, Difftime: true, Units: timeunit.Minutes}, vec, 0))
		m.True(IsUnsupportedTypeError(err))
		m.Equal([]int32{99}, vec.Int32s())
	}
	{
		// Placeholder sources go through the same destination guard
		arr := array.NewNull(1)
		defer arr.Release()

		vec := vector.NewInt32(1)
		err := MaterializeDifftime(NewConverter(arr, PTypeView{Kind: vector.Int32, Difftime: true}, vec, 0))
		m.True(IsUnsupportedTypeError(err))
		m.Equal([]int32{0}, vec.Int32s())
	}
}

func (m *MaterializeTestSuite) TestMaterializeDifftime_CopyErrorIsPropagated() {
	arr := m.durations(arrow.Millisecond, []arrow.Duration{1000, 2000}, nil)
	defer arr.Release()

	vec := vector.NewFloat64(4)
	converter := NewConverter(arr, difftimeOf(timeunit.Seconds), vec, 0)
	converter.Dst.Length = 3

	err := MaterializeDifftime(converter)
	m.True(IsOutOfRangeError(err))
	m.False(IsUnsupportedTypeError(err))
	m.Equal(MaterializeDouble(converter), err)
	m.Equal([]float64{0, 0, 0, 0}, vec.Float64s())
}

func (m *MaterializeTestSuite) TestMaterializeDifftime_OffsetSlice() {
	arr := m.durations(arrow.Second, []arrow.Duration{60, 120, 180}, nil)
	defer arr.Release()

	vec := vector.NewFloat64(5)
	vec.Float64s()[0] = 42
	vec.Float64s()[4] = 43

	converter := NewConverter(arr, difftimeOf(timeunit.Minutes), vec, 2)
	converter.SrcOffset = 1
	converter.Dst.Length = 2
	m.NoError(MaterializeDifftime(converter))
	m.Equal(42.0, vec.Float64s()[0])
	m.Equal(0.0, vec.Float64s()[1])
	m.InDelta(2.0, vec.Float64s()[2], 1e-12)
	m.InDelta(3.0, vec.Float64s()[3], 1e-12)
	m.Equal(43.0, vec.Float64s()[4])
}
