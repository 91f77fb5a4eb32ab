package models

// SalesPoint is one time bucket of the analytics sales series.
type SalesPoint struct {
	Name    string  `json:"name"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
	Sales   int     `json:"sales"`
}

// AnalyticsStats compares the current period against the previous one of the
// same length.
type AnalyticsStats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalOrders   int     `json:"totalOrders"`
	AvgOrderValue float64 `json:"avgOrderValue"`
	RevenueGrowth float64 `json:"revenueGrowth"`
	OrdersGrowth  float64 `json:"ordersGrowth"`
}

type TopProduct struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue"`
	Color   string  `json:"color"`
}

type CategorySlice struct {
	Name  string  `json:"name"`
	Value int     `json:"value"`
	Sales float64 `json:"sales"`
}

type AnalyticsReport struct {
	SalesData    []SalesPoint    `json:"salesData"`
	Stats        AnalyticsStats  `json:"stats"`
	TopProducts  []TopProduct    `json:"topProducts"`
	CategoryData []CategorySlice `json:"categoryData"`
}
