package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

// clientFor resolves the acting client's profile. Wrong role is Forbidden;
// a client account without a profile is NotFound.
func clientFor(ctx context.Context, dir ports.DirectoryRepository, actor domain.Actor) (*domain.Client, error) {
	if actor.Role != domain.RoleClient {
		return nil, domain.Forbidden("client", 0, "client role required")
	}
	c, err := dir.FindClientByOwner(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.Error{Kind: domain.KindNotFound, Entity: "client", Message: "client profile not found"}
		}
		return nil, fmt.Errorf("resolve client: %w", err)
	}
	return c, nil
}

// freelancerFor is clientFor for the freelancer role.
func freelancerFor(ctx context.Context, dir ports.DirectoryRepository, actor domain.Actor) (*domain.Freelancer, error) {
	if actor.Role != domain.RoleFreelancer {
		return nil, domain.Forbidden("freelancer", 0, "freelancer role required")
	}
	f, err := dir.FindFreelancerByOwner(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.Error{Kind: domain.KindNotFound, Entity: "freelancer", Message: "freelancer profile not found"}
		}
		return nil, fmt.Errorf("resolve freelancer: %w", err)
	}
	return f, nil
}

// resolveCategories trims, drops blanks and deduplicates names, then maps
// each to a category id, creating unknown ones.
func resolveCategories(ctx context.Context, dir ports.DirectoryRepository, names []string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		cat, err := dir.FindOrCreateCategory(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve category %q: %w", name, err)
		}
		ids = append(ids, cat.ID)
	}
	return ids, nil
}

// normalize treats blank input as absent.
func normalize(s string) string {
	return strings.TrimSpace(s)
}
