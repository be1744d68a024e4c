package domain

// DashboardCounts aggregates headline numbers for the admin dashboard.
// For the affiliate variant, Users is scoped to that affiliate's accounts.
type DashboardCounts struct {
	Users      int `json:"user_count"`
	Affiliates int `json:"affiliate_count"`
	Jobs       int `json:"job_count"`
	Promos     int `json:"promo_count"`
	Packages   int `json:"package_count"`
	Orders     int `json:"order_count"`
}
