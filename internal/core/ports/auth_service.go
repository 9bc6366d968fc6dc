package ports

import (
	"context"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
)

// RegisterClientInput carries the account and profile fields for a new client.
type RegisterClientInput struct {
	Email           string
	Password        string
	FullName        string
	Company         string
	ProfilePhotoURL string
}

// RegisterFreelancerInput carries the account and profile fields for a new freelancer.
type RegisterFreelancerInput struct {
	Email           string
	Password        string
	FullName        string
	Bio             string
	Skills          string
	CategoryNames   []string
	Whatsapp        string
	ContactEmail    string
	ProfilePhotoURL string
}

// AuthResult is returned after registration or login.
type AuthResult struct {
	Token  string
	Role   domain.Role
	UserID int64
}

// Authenticator resolves a bearer credential into the acting identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Actor, error)
}

type AuthService interface {
	Authenticator
	RegisterClient(ctx context.Context, in RegisterClientInput) (*AuthResult, error)
	RegisterFreelancer(ctx context.Context, in RegisterFreelancerInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
