package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"crmbackend/internal/models"
)

// Range selects the report window and its bucketing.
type Range string

const (
	RangeDaily   Range = "daily"   // last 24 hours, hourly buckets
	RangeWeekly  Range = "weekly"  // last 7 days, daily buckets
	RangeMonthly Range = "monthly" // last 30 days, daily buckets
)

// ParseRange maps the query parameter to a Range, defaulting to weekly like
// the dashboard does.
func ParseRange(raw string) (Range, error) {
	switch raw {
	case "", string(RangeWeekly):
		return RangeWeekly, nil
	case string(RangeDaily):
		return RangeDaily, nil
	case string(RangeMonthly):
		return RangeMonthly, nil
	default:
		return "", fmt.Errorf("invalid range: %s", raw)
	}
}

func (r Range) window(now time.Time) (time.Time, int) {
	switch r {
	case RangeDaily:
		return now.Add(-24 * time.Hour), 24
	case RangeMonthly:
		return now.AddDate(0, 0, -30), 30
	default:
		return now.AddDate(0, 0, -7), 7
	}
}

var topProductColors = []string{"#8B5CF6", "#EC4899", "#F59E0B", "#10B981", "#3B82F6"}

// Report builds the full analytics payload for one user.
func (s *Store) Report(ctx context.Context, userID int, rng Range) (models.AnalyticsReport, error) {
	now := time.Now()
	start, buckets := rng.window(now)

	series, err := s.salesSeries(ctx, userID, rng, start, now, buckets)
	if err != nil {
		return models.AnalyticsReport{}, err
	}

	stats, err := s.periodStats(ctx, userID, start, now)
	if err != nil {
		return models.AnalyticsReport{}, err
	}

	top, err := s.topProducts(ctx, userID, start, now)
	if err != nil {
		return models.AnalyticsReport{}, err
	}

	categories, err := s.categoryBreakdown(ctx, userID, start, now)
	if err != nil {
		return models.AnalyticsReport{}, err
	}

	return models.AnalyticsReport{
		SalesData:    series,
		Stats:        stats,
		TopProducts:  top,
		CategoryData: categories,
	}, nil
}

// salesSeries scans the window's rows and buckets them by hour or day. The
// bucketing happens here rather than in SQL so both range shapes share one
// query.
func (s *Store) salesSeries(ctx context.Context, userID int, rng Range, start, end time.Time, buckets int) ([]models.SalesPoint, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT quantity, total_amount, created_unix
		FROM orders
		WHERE user_id = ? AND created_unix >= ? AND created_unix <= ?`,
		userID, start.Unix(), end.Unix(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]models.SalesPoint, buckets)
	for i := range points {
		if rng == RangeDaily {
			points[i].Name = fmt.Sprintf("%d:00", i)
		} else {
			day := start.AddDate(0, 0, i)
			if rng == RangeWeekly {
				points[i].Name = day.Weekday().String()[:3]
			} else {
				points[i].Name = fmt.Sprintf("%d/%d", day.Day(), int(day.Month()))
			}
		}
	}

	for rows.Next() {
		var quantity int
		var amount float64
		var createdUnix int64
		if err := rows.Scan(&quantity, &amount, &createdUnix); err != nil {
			return nil, err
		}

		createdAt := time.Unix(createdUnix, 0)
		var idx int
		if rng == RangeDaily {
			idx = createdAt.Hour()
		} else {
			idx = int(createdAt.Sub(start).Hours() / 24)
		}
		if idx < 0 || idx >= buckets {
			continue
		}

		points[idx].Orders++
		points[idx].Revenue += amount
		points[idx].Sales += quantity
	}
	return points, rows.Err()
}

// periodStats scans the current and previous windows in one pass and totals
// them in Go. An order on the start boundary second belongs to the current
// window only; the previous window ends just before it.
func (s *Store) periodStats(ctx context.Context, userID int, start, end time.Time) (models.AnalyticsStats, error) {
	prevStart := start.Add(-end.Sub(start))

	rows, err := s.db.QueryContext(ctx, `
		SELECT total_amount, created_unix
		FROM orders
		WHERE user_id = ? AND created_unix >= ? AND created_unix <= ?`,
		userID, prevStart.Unix(), end.Unix(),
	)
	if err != nil {
		return models.AnalyticsStats{}, err
	}
	defer rows.Close()

	var orders, prevOrders int
	var revenue, prevRevenue float64
	startUnix := start.Unix()
	for rows.Next() {
		var amount float64
		var createdUnix int64
		if err := rows.Scan(&amount, &createdUnix); err != nil {
			return models.AnalyticsStats{}, err
		}
		if createdUnix >= startUnix {
			orders++
			revenue += amount
		} else {
			prevOrders++
			prevRevenue += amount
		}
	}
	if err := rows.Err(); err != nil {
		return models.AnalyticsStats{}, err
	}

	stats := models.AnalyticsStats{
		TotalRevenue: revenue,
		TotalOrders:  orders,
	}
	if orders > 0 {
		stats.AvgOrderValue = revenue / float64(orders)
	}
	stats.RevenueGrowth = growth(revenue, prevRevenue)
	stats.OrdersGrowth = growth(float64(orders), float64(prevOrders))
	return stats, nil
}

func growth(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return math.Round((current-previous)/previous*1000) / 10
}

func (s *Store) topProducts(ctx context.Context, userID int, start, end time.Time) ([]models.TopProduct, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product_name, COUNT(*) AS sales, SUM(total_amount) AS revenue
		FROM orders
		WHERE user_id = ? AND created_unix >= ? AND created_unix <= ?
		GROUP BY product_name
		ORDER BY sales DESC
		LIMIT 5`,
		userID, start.Unix(), end.Unix(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TopProduct{}
	for rows.Next() {
		var p models.TopProduct
		if err := rows.Scan(&p.Name, &p.Sales, &p.Revenue); err != nil {
			return nil, err
		}
		p.Color = topProductColors[len(out)%len(topProductColors)]
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) categoryBreakdown(ctx context.Context, userID int, start, end time.Time) ([]models.CategorySlice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT category, COUNT(*) AS value, SUM(total_amount) AS sales
		FROM orders
		WHERE user_id = ? AND created_unix >= ? AND created_unix <= ?
		GROUP BY category
		ORDER BY value DESC`,
		userID, start.Unix(), end.Unix(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CategorySlice{}
	for rows.Next() {
		var c models.CategorySlice
		if err := rows.Scan(&c.Name, &c.Value, &c.Sales); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
