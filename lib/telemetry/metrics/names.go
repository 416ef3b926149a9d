package metrics

const (
	ColumnDuration = "column.materialize.duration"
	ColumnRows     = "column.materialize.rows"
	ColumnLossy    = "column.materialize.lossy"
	ColumnError    = "column.materialize.error"

	JobDuration = "job.duration"
	JobError    = "job.error"
)
