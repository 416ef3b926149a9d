package materialize

import (
	"math"

	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/artie-labs/materializer/lib/vector"
)

var integerPType = PTypeView{Kind: vector.Int32}

func (m *MaterializeTestSuite) TestMaterializeInteger() {
	{
		arr := m.int64s([]int64{1, -5, 0, math.MaxInt32 + 1, math.MinInt32, math.MinInt32 + 1}, []bool{true, true, false, true, true, true})
		defer arr.Release()

		vec := vector.NewInt32(6)
		converter := NewConverter(arr, integerPType, vec, 0)
		m.NoError(MaterializeInteger(converter))
		m.Equal([]int32{1, -5, vector.NullInt32, vector.NullInt32, vector.NullInt32, math.MinInt32 + 1}, vec.Int32s())
		m.Equal(2, converter.LossyCount)
	}
	{
		builder := array.NewUint32Builder(m.mem)
		defer builder.Release()
		builder.AppendValues([]uint32{7, math.MaxUint32}, nil)
		arr := builder.NewArray()
		defer arr.Release()

		vec := vector.NewInt32(2)
		converter := NewConverter(arr, integerPType, vec, 0)
		m.NoError(MaterializeInteger(converter))
		m.Equal([]int32{7, vector.NullInt32}, vec.Int32s())
		m.Equal(1, converter.LossyCount)
	}
	{
		builder := array.NewBooleanBuilder(m.mem)
		defer builder.Release()
		builder.AppendValues([]bool{true, false, false}, []bool{true, true, false})
		arr := builder.NewArray()
		defer arr.Release()

		vec := vector.NewInt32(3)
		m.NoError(MaterializeInteger(NewConverter(arr, integerPType, vec, 0)))
		m.Equal([]int32{1, 0, vector.NullInt32}, vec.Int32s())
	}
	{
		arr := array.NewNull(2)
		defer arr.Release()

		vec := vector.NewInt32(2)
		m.NoError(MaterializeInteger(NewConverter(arr, integerPType, vec, 0)))
		m.Equal([]int32{vector.NullInt32, vector.NullInt32}, vec.Int32s())
	}
}

func (m *MaterializeTestSuite) TestMaterializeInteger_Unsupported() {
	{
		builder := array.NewFloat64Builder(m.mem)
		defer builder.Release()
		builder.Append(1.5)
		arr := builder.NewArray()
		defer arr.Release()

		vec := vector.NewInt32(1)
		m.True(IsUnsupportedTypeError(MaterializeInteger(NewConverter(arr, integerPType, vec, 0))))
	}
	{
		arr := m.int64s([]int64{1}, nil)
		defer arr.Release()

		vec := vector.NewFloat64(1)
		m.True(IsUnsupportedTypeError(MaterializeInteger(NewConverter(arr, doublePType, vec, 0))))
	}
}
