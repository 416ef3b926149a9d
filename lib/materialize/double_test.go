package materialize

import (
	"math"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/float16"

	"github.com/artie-labs/materializer/lib/vector"
)

var doublePType = PTypeView{Kind: vector.Float64}

func (m *MaterializeTestSuite) TestMaterializeDouble_Integers() {
	arr := m.int64s([]int64{1, -2, 3}, []bool{true, true, false})
	defer arr.Release()

	vec := vector.NewFloat64(3)
	m.NoError(MaterializeDouble(NewConverter(arr, doublePType, vec, 0)))
	m.Equal(1.0, vec.Float64s()[0])
	m.Equal(-2.0, vec.Float64s()[1])
	m.True(math.IsNaN(vec.Float64s()[2]))
}

func (m *MaterializeTestSuite) TestMaterializeDouble_Boolean() {
	builder := array.NewBooleanBuilder(m.mem)
	defer builder.Release()
	builder.AppendValues([]bool{true, false, true}, []bool{true, true, false})
	arr := builder.NewArray()
	defer arr.Release()

	vec := vector.NewFloat64(3)
	m.NoError(MaterializeDouble(NewConverter(arr, doublePType, vec, 0)))
	m.Equal(1.0, vec.Float64s()[0])
	m.Equal(0.0, vec.Float64s()[1])
	m.True(math.IsNaN(vec.Float64s()[2]))
}

func (m *MaterializeTestSuite) TestMaterializeDouble_Unsigned() {
	builder := array.NewUint64Builder(m.mem)
	defer builder.Release()
	builder.AppendValues([]uint64{0, math.MaxUint32 + 1}, nil)
	arr := builder.NewArray()
	defer arr.Release()

	vec := vector.NewFloat64(2)
	m.NoError(MaterializeDouble(NewConverter(arr, doublePType, vec, 0)))
	m.Equal([]float64{0, math.MaxUint32 + 1}, vec.Float64s())
}

func (m *MaterializeTestSuite) TestMaterializeDouble_Floats() {
	{
		builder := array.NewFloat16Builder(m.mem)
		defer builder.Release()
		builder.AppendValues([]float16.Num{float16.New(1.5), float16.New(-0.25)}, nil)
		arr := builder.NewArray()
		defer arr.Release()

		vec := vector.NewFloat64(2)
		m.NoError(MaterializeDouble(NewConverter(arr, doublePType, vec, 0)))
		m.Equal([]float64{1.5, -0.25}, vec.Float64s())
	}
	{
		builder := array.NewFloat64Builder(m.mem)
		defer builder.Release()
		builder.AppendValues([]float64{math.Pi, math.Inf(-1)}, nil)
		arr := builder.NewArray()
		defer arr.Release()

		vec := vector.NewFloat64(2)
		m.NoError(MaterializeDouble(NewConverter(arr, doublePType, vec, 0)))
		m.Equal([]float64{math.Pi, math.Inf(-1)}, vec.Float64s())
	}
}

func (m *MaterializeTestSuite) TestMaterializeDouble_Temporal() {
	{
		builder := array.NewDate32Builder(m.mem)
		defer builder.Release()
		builder.AppendValues([]arrow.Date32{19000, -1}, nil)
		arr := builder.NewArray()
		defer arr.Release()

		vec := vector.NewFloat64(2)
		m.NoError(MaterializeDouble(NewConverter(arr, doublePType, vec, 0)))
		m.Equal([]float64{19000, -1}, vec.Float64s())
	}
	{
		builder := array.NewTimestampBuilder(m.mem, &arrow.TimestampType{Unit: arrow.Microsecond, TimeZone: "UTC"})
		defer builder.Release()
		builder.AppendValues([]arrow.Timestamp{1_700_000_000_000_000}, nil)
		arr := builder.NewArray()
		defer arr.Release()

		vec := vector.NewFloat64(1)
		m.NoError(MaterializeDouble(NewConverter(arr, doublePType, vec, 0)))
		m.Equal([]float64{1_700_000_000_000_000}, vec.Float64s())
	}
	{
		// Time of day is copied as ticks, no scaling.
		arr := m.time32s(arrow.Millisecond, []arrow.Time32{3_600_000}, nil)
		defer arr.Release()

		vec := vector.NewFloat64(1)
		m.NoError(MaterializeDouble(NewConverter(arr, doublePType, vec, 0)))
		m.Equal([]float64{3_600_000}, vec.Float64s())
	}
}

func (m *MaterializeTestSuite) TestMaterializeDouble_Decimal() {
	dataType := &arrow.Decimal128Type{Precision: 10, Scale: 2}
	builder := array.NewDecimal128Builder(m.mem, dataType)
	defer builder.Release()
	builder.Append(decimal128.FromI64(12345))
	builder.AppendNull()
	arr := builder.NewArray()
	defer arr.Release()

	vec := vector.NewFloat64(2)
	m.NoError(MaterializeDouble(NewConverter(arr, doublePType, vec, 0)))
	m.InDelta(123.45, vec.Float64s()[0], 1e-9)
	m.True(math.IsNaN(vec.Float64s()[1]))
}

func (m *MaterializeTestSuite) TestMaterializeDouble_Unsupported() {
	{
		// Strings
		builder := array.NewStringBuilder(m.mem)
		defer builder.Release()
		builder.Append("hello")
		arr := builder.NewArray()
		defer arr.Release()

		vec := vector.NewFloat64(1)
		err := MaterializeDouble(NewConverter(arr, doublePType, vec, 0))
		m.True(IsUnsupportedTypeError(err))
		m.ErrorContains(err, "cannot materialize STRING into float64")
	}
	{
		// Integer destination
		arr := m.int64s([]int64{1}, nil)
		defer arr.Release()

		vec := vector.NewInt32(1)
		err := MaterializeDouble(NewConverter(arr, PTypeView{Kind: vector.Int32}, vec, 0))
		m.True(IsUnsupportedTypeError(err))
	}
	{
		// PType and vector disagree
		arr := m.int64s([]int64{1}, nil)
		defer arr.Release()

		vec := vector.NewInt32(1)
		err := MaterializeDouble(NewConverter(arr, doublePType, vec, 0))
		m.True(IsUnsupportedTypeError(err))
	}
}

func (m *MaterializeTestSuite) TestMaterializeDouble_Window() {
	arr := m.int64s([]int64{10, 20, 30}, nil)
	defer arr.Release()

	{
		// Destination too small
		vec := vector.NewFloat64(2)
		err := MaterializeDouble(NewConverter(arr, doublePType, vec, 0))
		m.True(IsOutOfRangeError(err))
		m.ErrorContains(err, "destination window [0, 3) exceeds vector length 2")
	}
	{
		// Source window past the end
		vec := vector.NewFloat64(3)
		converter := NewConverter(arr, doublePType, vec, 0)
		converter.SrcOffset = 2
		converter.Dst.Length = 2
		err := MaterializeDouble(converter)
		m.True(IsOutOfRangeError(err))
		m.ErrorContains(err, "source window [2, 4) exceeds array length 3")
	}
	{
		// Negative offset
		vec := vector.NewFloat64(3)
		converter := NewConverter(arr, doublePType, vec, -1)
		m.True(IsOutOfRangeError(MaterializeDouble(converter)))
	}
	{
		// Sub window
		vec := vector.NewFloat64(3)
		converter := NewConverter(arr, doublePType, vec, 1)
		converter.SrcOffset = 1
		converter.Dst.Length = 2
		m.NoError(MaterializeDouble(converter))
		m.Equal([]float64{0, 20, 30}, vec.Float64s())
	}
	{
		// Sliced arrays honour their own offset
		sliced := array.NewSlice(arr, 1, 3)
		defer sliced.Release()

		vec := vector.NewFloat64(2)
		m.NoError(MaterializeDouble(NewConverter(sliced, doublePType, vec, 0)))
		m.Equal([]float64{20, 30}, vec.Float64s())
	}
}
