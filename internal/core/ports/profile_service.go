package ports

import (
	"context"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
)

// ClientProfilePatch updates only the non-nil fields.
type ClientProfilePatch struct {
	FullName        *string
	Company         *string
	ProfilePhotoURL *string
}

// FreelancerProfilePatch updates only the non-nil fields. A non-nil
// CategoryNames replaces the whole category set.
type FreelancerProfilePatch struct {
	FullName        *string
	Bio             *string
	Skills          *string
	CategoryNames   []string
	Whatsapp        *string
	ContactEmail    *string
	ProfilePhotoURL *string
}

type ProfileService interface {
	GetClientProfile(ctx context.Context, actor domain.Actor) (*domain.Client, error)
	UpdateClientProfile(ctx context.Context, actor domain.Actor, patch ClientProfilePatch) (*domain.Client, error)
	GetFreelancerProfile(ctx context.Context, actor domain.Actor) (*FreelancerDetails, error)
	UpdateFreelancerProfile(ctx context.Context, actor domain.Actor, patch FreelancerProfilePatch) (*FreelancerDetails, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)
}
