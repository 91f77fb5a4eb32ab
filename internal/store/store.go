package store

import (
	"context"
	"errors"

	"crmbackend/internal/models"
)

var ErrNotFound = errors.New("product not found")

// Store is the per-user product repository. Every method is scoped to one
// user id; records for different users never mix. List returns products in
// insertion order.
type Store interface {
	List(ctx context.Context, userID int) ([]models.Product, error)
	Get(ctx context.Context, userID int, id string) (models.Product, error)
	Create(ctx context.Context, userID int, p models.Product) (models.Product, error)
	// Update replaces all mutable fields of the record with the given id.
	// ID and CreatedAt are preserved from the existing record.
	Update(ctx context.Context, userID int, id string, p models.Product) (models.Product, error)
	Delete(ctx context.Context, userID int, id string) error
	// BulkDelete removes every matching id in one pass and reports how many
	// records were actually removed.
	BulkDelete(ctx context.Context, userID int, ids []string) (int, error)
	Statistics(ctx context.Context, userID int) (models.Statistics, error)
}
