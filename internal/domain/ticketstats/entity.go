package ticketstats

// Statistics aggregates a user's ticket workload. Computed on demand from the
// tickets table, never stored.
type Statistics struct {
	UserID               string
	TotalAssigned        int64
	Open                 int64
	InProgress           int64
	Resolved             int64
	AvgResolutionMinutes *float64 // nil when nothing has been resolved yet
}
