package ports

// TradeMetrics counts outcomes of the mutating operations for the KPI
// endpoint.
type TradeMetrics interface {
	RecordSuccess(operation string)
	RecordConflict()
	RecordFailure()
}
