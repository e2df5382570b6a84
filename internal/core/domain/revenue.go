package domain

// Revenue is a monthly revenue figure. Rows are created only by seeding and
// are read-only afterwards.
type Revenue struct {
	ID      string  `json:"id"`
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// Stats is the aggregate view shown on the dashboard header.
type Stats struct {
	TotalUsers   int64   `json:"totalUsers"`
	ActiveUsers  int64   `json:"activeUsers"`
	TotalOrders  int64   `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}
