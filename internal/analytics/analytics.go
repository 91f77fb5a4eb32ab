// Package analytics answers the dashboard's sales report queries from an
// embedded SQL database. Orders are written to a denormalized reporting
// table so every query stays a single-table aggregate.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	// database/sql driver for the embedded engine
	_ "github.com/stoolap/stoolap/pkg/driver"
)

type Store struct {
	db *sql.DB
}

// Open connects to the analytics database and ensures the schema exists.
// The default DSN "memory://" keeps everything in memory.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("stoolap", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS orders (
			id TEXT,
			user_id INTEGER,
			product_name TEXT,
			category TEXT,
			quantity INTEGER,
			total_amount FLOAT,
			created_unix INTEGER
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create orders table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// RecordOrder appends one order to the reporting table.
func (s *Store) RecordOrder(ctx context.Context, userID int, productName, category string, quantity int, totalAmount float64, createdAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, product_name, category, quantity, total_amount, created_unix)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(), userID, productName, category, quantity, totalAmount, createdAt.Unix(),
	)
	return err
}

var demoProducts = []struct {
	name     string
	category string
	price    float64
}{
	{"Wireless Mouse", "Electronics", 24.99},
	{"Mechanical Keyboard", "Electronics", 89.00},
	{"Office Chair", "Furniture", 189.50},
	{"Desk Lamp", "Furniture", 34.90},
	{"Notebook Pack", "Stationery", 12.40},
	{"Gel Pen Set", "Stationery", 8.75},
	{"Water Bottle", "Accessories", 18.00},
	{"Backpack", "Accessories", 54.30},
}

// Seed fills the orders table with randomized recent orders for the given
// users. Only called in demo mode; reports over an unseeded table return
// zeros instead of fabricated data.
func (s *Store) Seed(ctx context.Context, userIDs []int) error {
	now := time.Now()
	for _, userID := range userIDs {
		count := 120 + rand.Intn(80)
		for i := 0; i < count; i++ {
			product := demoProducts[rand.Intn(len(demoProducts))]
			quantity := 1 + rand.Intn(5)
			// Spread orders over the last ~62 days so the previous
			// period of the monthly range has data too.
			age := time.Duration(rand.Int63n(int64(62 * 24 * time.Hour)))
			createdAt := now.Add(-age)

			total := product.price * float64(quantity)
			if err := s.RecordOrder(ctx, userID, product.name, product.category, quantity, total, createdAt); err != nil {
				return err
			}
		}
	}
	return nil
}
