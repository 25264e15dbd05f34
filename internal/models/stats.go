package models

// EmergencyStats - агрегаты по экстренным запросам
type EmergencyStats struct {
	TotalRequests            int64   `json:"total_requests"`
	PendingRequests          int64   `json:"pending_requests"`
	AcceptedRequests         int64   `json:"accepted_requests"`
	CompletedRequests        int64   `json:"completed_requests"`
	AverageResolutionMinutes float64 `json:"average_resolution_minutes"`
	RecentRequests           int64   `json:"recent_requests"`
	WindowMinutes            int     `json:"window_minutes"`
}
