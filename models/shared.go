package models

// Pagination describes one page of a listing response.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination fills the derived Pages field.
func NewPagination(page, limit int, total int64) Pagination {
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// DashboardStats backs the admin dashboard.
type DashboardStats struct {
	TotalUsers      int64           `json:"totalUsers"`
	TotalBookings   int64           `json:"totalBookings"`
	TotalRevenue    float64         `json:"totalRevenue"`
	TodayBookings   int64           `json:"todayBookings"`
	PendingBookings int64           `json:"pendingBookings"`
	RecentBookings  []BookingDetail `json:"recentBookings"`
}
