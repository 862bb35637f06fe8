package ticketstats

type StatisticsResponse struct {
	UserID               string   `json:"user_id"`
	TotalAssigned        int64    `json:"total_assigned"`
	Open                 int64    `json:"open"`
	InProgress           int64    `json:"in_progress"`
	Resolved             int64    `json:"resolved"`
	AvgResolutionMinutes *float64 `json:"avg_resolution_minutes,omitempty"`
}

func ToResponse(s Statistics) StatisticsResponse {
	return StatisticsResponse{
		UserID:               s.UserID,
		TotalAssigned:        s.TotalAssigned,
		Open:                 s.Open,
		InProgress:           s.InProgress,
		Resolved:             s.Resolved,
		AvgResolutionMinutes: s.AvgResolutionMinutes,
	}
}
