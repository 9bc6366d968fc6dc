package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

type ProfileService struct {
	directory ports.DirectoryRepository
	discovery *DiscoveryService
	logger    zerolog.Logger
}

func NewProfileService(directory ports.DirectoryRepository, discovery *DiscoveryService, logger zerolog.Logger) *ProfileService {
	return &ProfileService{directory: directory, discovery: discovery, logger: logger}
}

func (s *ProfileService) GetClientProfile(ctx context.Context, actor domain.Actor) (*domain.Client, error) {
	return clientFor(ctx, s.directory, actor)
}

// UpdateClientProfile applies the non-nil fields of patch.
func (s *ProfileService) UpdateClientProfile(ctx context.Context, actor domain.Actor, patch ports.ClientProfilePatch) (*domain.Client, error) {
	c, err := clientFor(ctx, s.directory, actor)
	if err != nil {
		return nil, err
	}
	if patch.FullName != nil {
		if normalize(*patch.FullName) == "" {
			return nil, domain.InvalidInput("full name cannot be blank")
		}
		c.FullName = normalize(*patch.FullName)
	}
	if patch.Company != nil {
		c.Company = *patch.Company
	}
	if patch.ProfilePhotoURL != nil {
		c.ProfilePhotoURL = *patch.ProfilePhotoURL
	}

	if err := s.directory.SaveClient(ctx, c); err != nil {
		return nil, fmt.Errorf("update client profile: %w", err)
	}
	s.logger.Info().Int64("client_id", c.ID).Msg("client profile updated")
	return c, nil
}

func (s *ProfileService) GetFreelancerProfile(ctx context.Context, actor domain.Actor) (*ports.FreelancerDetails, error) {
	f, err := freelancerFor(ctx, s.directory, actor)
	if err != nil {
		return nil, err
	}
	return s.discovery.details(ctx, f)
}

// UpdateFreelancerProfile applies the non-nil fields of patch. Category names
// replace the current set and are created on first use.
func (s *ProfileService) UpdateFreelancerProfile(ctx context.Context, actor domain.Actor, patch ports.FreelancerProfilePatch) (*ports.FreelancerDetails, error) {
	f, err := freelancerFor(ctx, s.directory, actor)
	if err != nil {
		return nil, err
	}
	if patch.FullName != nil {
		if normalize(*patch.FullName) == "" {
			return nil, domain.InvalidInput("full name cannot be blank")
		}
		f.FullName = normalize(*patch.FullName)
	}
	if patch.Bio != nil {
		f.Bio = *patch.Bio
	}
	if patch.Skills != nil {
		f.Skills = *patch.Skills
	}
	if patch.Whatsapp != nil {
		f.Whatsapp = *patch.Whatsapp
	}
	if patch.ContactEmail != nil {
		f.ContactEmail = *patch.ContactEmail
	}
	if patch.ProfilePhotoURL != nil {
		f.ProfilePhotoURL = *patch.ProfilePhotoURL
	}
	if patch.CategoryNames != nil {
		ids, err := resolveCategories(ctx, s.directory, patch.CategoryNames)
		if err != nil {
			return nil, err
		}
		f.CategoryIDs = ids
	}

	if err := s.directory.SaveFreelancer(ctx, f); err != nil {
		return nil, fmt.Errorf("update freelancer profile: %w", err)
	}
	s.logger.Info().Int64("freelancer_id", f.ID).Msg("freelancer profile updated")
	return s.discovery.details(ctx, f)
}

func (s *ProfileService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	cats, err := s.directory.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return cats, nil
}
