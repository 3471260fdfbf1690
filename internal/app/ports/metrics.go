package ports

type ActionMetrics interface {
	RecordSuccess(intentType string)
	RecordRejected(intentType string)
	RecordConflict()
	RecordFailure()
}
