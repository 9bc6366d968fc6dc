package ports

import (
	"context"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
)

// EngagementRepository persists requests, projects and reviews.
//
// Transition* methods are compare-and-swap on status: they apply the new
// status only when the stored status is one of from, and return a domain
// Conflict error carrying the stored status otherwise.
type EngagementRepository interface {
	FindRequestByID(ctx context.Context, id int64) (*domain.Request, error)
	FindRequestByIdempotencyKey(ctx context.Context, clientID int64, key string) (*domain.Request, error)
	CreateRequest(ctx context.Context, r *domain.Request) error
	TransitionRequest(ctx context.Context, id int64, from, to domain.RequestStatus) error
	FindRequestsByFreelancer(ctx context.Context, freelancerID int64) ([]*domain.Request, error)
	FindRequestsByClient(ctx context.Context, clientID int64) ([]*domain.Request, error)

	FindProjectByID(ctx context.Context, id int64) (*domain.Project, error)
	FindProjectByIdempotencyKey(ctx context.Context, clientID int64, key string) (*domain.Project, error)
	CreateProject(ctx context.Context, p *domain.Project) error
	TransitionProject(ctx context.Context, id int64, from []domain.ProjectStatus, to domain.ProjectStatus) error
	FindProjectsByClient(ctx context.Context, clientID int64) ([]*domain.Project, error)
	FindProjectsByFreelancer(ctx context.Context, freelancerID int64) ([]*domain.Project, error)

	FindReviewByProject(ctx context.Context, projectID int64) (*domain.Review, error)
	// CreateReview returns a domain Conflict error when the project already
	// has a review.
	CreateReview(ctx context.Context, r *domain.Review) error
	FindReviewsByFreelancer(ctx context.Context, freelancerID int64) ([]*domain.Review, error)
}
