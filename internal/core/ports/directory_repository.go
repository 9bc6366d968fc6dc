package ports

import (
	"context"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
)

// DirectoryRepository stores clients, freelancers and categories. Lookups
// return a domain NotFound error when the record is absent.
type DirectoryRepository interface {
	FindClientByID(ctx context.Context, id int64) (*domain.Client, error)
	FindClientByOwner(ctx context.Context, userID int64) (*domain.Client, error)
	FindFreelancerByID(ctx context.Context, id int64) (*domain.Freelancer, error)
	FindFreelancerByOwner(ctx context.Context, userID int64) (*domain.Freelancer, error)
	// ListFreelancers returns every freelancer in insertion (ascending id) order.
	ListFreelancers(ctx context.Context) ([]*domain.Freelancer, error)

	// SaveClient and SaveFreelancer upsert; a zero ID gets a new one assigned.
	SaveClient(ctx context.Context, c *domain.Client) error
	SaveFreelancer(ctx context.Context, f *domain.Freelancer) error

	// FindOrCreateCategory is idempotent: concurrent calls with the same name
	// resolve to the same category.
	FindOrCreateCategory(ctx context.Context, name string) (*domain.Category, error)
	FindCategoriesByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}
