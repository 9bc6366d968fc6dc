package ports

import (
	"context"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
)

// BrowseFilter holds the optional discovery filters exactly as received.
// Blank values mean "not supplied".
type BrowseFilter struct {
	Category  string
	MinRating string
	Skill     string
	Search    string
}

// FreelancerSummary is the listing view of a freelancer.
type FreelancerSummary struct {
	ID              int64
	FullName        string
	Categories      []string
	Skills          string
	ProfilePhotoURL string
	AverageRating   float64
}

// ReviewView is a review joined with the reviewing client's name.
type ReviewView struct {
	ID         int64
	ProjectID  int64
	Rating     int
	Comment    string
	ClientName string
}

// FreelancerDetails is the full public profile of a freelancer.
type FreelancerDetails struct {
	FreelancerSummary
	Bio          string
	Whatsapp     string
	ContactEmail string
	Reviews      []ReviewView
}

type DiscoveryService interface {
	BrowseFreelancers(ctx context.Context, filter BrowseFilter) ([]FreelancerSummary, error)
	GetFreelancer(ctx context.Context, id int64) (*FreelancerDetails, error)
	ListReceivedReviews(ctx context.Context, actor domain.Actor) ([]ReviewView, error)
}

// RatingService computes a freelancer's mean rating.
type RatingService interface {
	AverageRating(ctx context.Context, freelancerID int64) (float64, error)
}
