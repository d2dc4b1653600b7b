package models

// DashboardStats aggregates counts shown on the admin dashboard. Recomputed
// on every request, never cached.
type DashboardStats struct {
	TotalOpportunities  int64 `json:"totalOpportunities"`
	PendingApplications int64 `json:"pendingApplications"`
	TotalUsers          int64 `json:"totalUsers"`
	NewApplications     int64 `json:"newApplications"`
}
