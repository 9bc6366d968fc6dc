package ports

import (
	"context"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
)

// CreateRequestInput carries a client's proposal to a freelancer.
type CreateRequestInput struct {
	FreelancerID int64
	Type         string
	Description  string
	Duration     string
	Salary       string // free text, parsed only when the request is accepted
	// IdempotencyKey makes client retries return the first request created with it.
	IdempotencyKey string
}

// HireInput carries a direct hire that bypasses the request stage.
type HireInput struct {
	FreelancerID   int64
	Title          string
	Description    string
	ServiceName    string
	Duration       string
	Deadline       string
	Salary         *float64
	IdempotencyKey string
}

// CompleteProjectInput optionally carries review data. Rating is required
// whenever Comment is non-blank.
type CompleteProjectInput struct {
	ProjectID int64
	Rating    *int
	Comment   string
}

// AddReviewInput reviews an already completed project.
type AddReviewInput struct {
	ProjectID int64
	Rating    *int
	Comment   string
}

// AcceptResult is returned by AcceptRequest.
type AcceptResult struct {
	Request *domain.Request
	Project *domain.Project
}

// CompletionResult is returned by CompleteProject. Review is nil when no
// review data was supplied. Transitioned is false when the project was
// already COMPLETED before this call.
type CompletionResult struct {
	Project      *domain.Project
	Review       *domain.Review
	Transitioned bool
}

// RequestView is a request joined with the display names of both parties.
type RequestView struct {
	*domain.Request
	ClientName     string
	FreelancerName string
	// AlreadyExisted is true when an idempotency key matched an earlier request.
	AlreadyExisted bool
}

// EngagementService is the engagement lifecycle engine.
type EngagementService interface {
	CreateRequest(ctx context.Context, actor domain.Actor, in CreateRequestInput) (*RequestView, error)
	AcceptRequest(ctx context.Context, actor domain.Actor, requestID int64) (*AcceptResult, error)
	DeclineRequest(ctx context.Context, actor domain.Actor, requestID int64) (*domain.Request, error)
	HireDirect(ctx context.Context, actor domain.Actor, in HireInput) (*domain.Project, error)
	CompleteProject(ctx context.Context, actor domain.Actor, in CompleteProjectInput) (*CompletionResult, error)
	AddReview(ctx context.Context, actor domain.Actor, in AddReviewInput) (*domain.Review, error)

	ListIncomingRequests(ctx context.Context, actor domain.Actor) ([]RequestView, error)
	ListSentRequests(ctx context.Context, actor domain.Actor) ([]RequestView, error)
	ListProjects(ctx context.Context, actor domain.Actor) ([]*domain.Project, error)
}
