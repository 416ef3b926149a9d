package constants

// ExporterKind is used for the Telemetry package
type ExporterKind string

const (
	Datadog ExporterKind = "datadog"
)

// ColumnType is the destination representation a column is materialized into.
type ColumnType string

const (
	Double   ColumnType = "double"
	Integer  ColumnType = "integer"
	Difftime ColumnType = "difftime"
)

var validColumnTypes = []ColumnType{
	Double,
	Integer,
	Difftime,
}

func IsValidColumnType(columnType ColumnType) bool {
	for _, validColumnType := range validColumnTypes {
		if validColumnType == columnType {
			return true
		}
	}

	return false
}

const (
	S3Prefix = "s3://"

	DefaultParallelism = 4
	MaxParallelism     = 64
)
