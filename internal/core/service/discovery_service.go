package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

// DiscoveryService answers the public freelancer catalogue queries.
type DiscoveryService struct {
	directory ports.DirectoryRepository
	reviews   reviewFinder
	ratings   ports.RatingService
	logger    zerolog.Logger
}

func NewDiscoveryService(directory ports.DirectoryRepository, reviews reviewFinder, ratings ports.RatingService, logger zerolog.Logger) *DiscoveryService {
	return &DiscoveryService{
		directory: directory,
		reviews:   reviews,
		ratings:   ratings,
		logger:    logger,
	}
}

// BrowseFreelancers lists freelancers in ascending id order, keeping those
// that pass every supplied filter.
func (s *DiscoveryService) BrowseFreelancers(ctx context.Context, filter ports.BrowseFilter) ([]ports.FreelancerSummary, error) {
	category := strings.ToLower(normalize(filter.Category))
	skill := strings.ToLower(normalize(filter.Skill))
	search := strings.ToLower(normalize(filter.Search))

	var minRating *float64
	if raw := normalize(filter.MinRating); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) {
			return nil, domain.InvalidInput(fmt.Sprintf("rating filter %q is not a number", raw))
		}
		minRating = &v
	}

	freelancers, err := s.directory.ListFreelancers(ctx)
	if err != nil {
		return nil, fmt.Errorf("browse freelancers: %w", err)
	}
	names, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ports.FreelancerSummary, 0, len(freelancers))
	for _, f := range freelancers {
		cats := namesFor(f.CategoryIDs, names)
		skills := strings.ToLower(f.Skills)

		if category != "" && !containsFold(cats, category) {
			continue
		}
		if skill != "" && !strings.Contains(skills, skill) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(f.FullName), search) && !strings.Contains(skills, search) {
			continue
		}

		avg, err := s.ratings.AverageRating(ctx, f.ID)
		if err != nil {
			return nil, err
		}
		if minRating != nil && avg < *minRating {
			continue
		}
		out = append(out, summarize(f, cats, avg))
	}

	s.logger.Debug().
		Str("category", category).
		Str("rating", filter.MinRating).
		Str("skill", skill).
		Str("search", search).
		Int("results", len(out)).
		Msg("freelancers browsed")

	return out, nil
}

// GetFreelancer returns a freelancer's full public profile.
func (s *DiscoveryService) GetFreelancer(ctx context.Context, id int64) (*ports.FreelancerDetails, error) {
	f, err := s.directory.FindFreelancerByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, f)
}

// ListReceivedReviews returns the reviews written about the acting freelancer.
func (s *DiscoveryService) ListReceivedReviews(ctx context.Context, actor domain.Actor) ([]ports.ReviewView, error) {
	f, err := freelancerFor(ctx, s.directory, actor)
	if err != nil {
		return nil, err
	}
	return s.reviewViews(ctx, f.ID)
}

func (s *DiscoveryService) details(ctx context.Context, f *domain.Freelancer) (*ports.FreelancerDetails, error) {
	cats, err := s.directory.FindCategoriesByIDs(ctx, f.CategoryIDs)
	if err != nil {
		return nil, fmt.Errorf("freelancer details: %w", err)
	}
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.Name)
	}

	avg, err := s.ratings.AverageRating(ctx, f.ID)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewViews(ctx, f.ID)
	if err != nil {
		return nil, err
	}

	return &ports.FreelancerDetails{
		FreelancerSummary: summarize(f, names, avg),
		Bio:               f.Bio,
		Whatsapp:          f.Whatsapp,
		ContactEmail:      f.ContactEmail,
		Reviews:           reviews,
	}, nil
}

func (s *DiscoveryService) reviewViews(ctx context.Context, freelancerID int64) ([]ports.ReviewView, error) {
	reviews, err := s.reviews.FindReviewsByFreelancer(ctx, freelancerID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	clientNames := map[int64]string{}
	out := make([]ports.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		name, ok := clientNames[r.ClientID]
		if !ok {
			c, err := s.directory.FindClientByID(ctx, r.ClientID)
			if err != nil {
				return nil, fmt.Errorf("list reviews: %w", err)
			}
			name = c.FullName
			clientNames[r.ClientID] = name
		}
		out = append(out, ports.ReviewView{
			ID:         r.ID,
			ProjectID:  r.ProjectID,
			Rating:     r.Rating,
			Comment:    r.Comment,
			ClientName: name,
		})
	}
	return out, nil
}

func (s *DiscoveryService) categoryNames(ctx context.Context) (map[int64]string, error) {
	cats, err := s.directory.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	names := make(map[int64]string, len(cats))
	for _, c := range cats {
		names[c.ID] = c.Name
	}
	return names, nil
}

func summarize(f *domain.Freelancer, categories []string, avg float64) ports.FreelancerSummary {
	return ports.FreelancerSummary{
		ID:              f.ID,
		FullName:        f.FullName,
		Categories:      categories,
		Skills:          f.Skills,
		ProfilePhotoURL: f.ProfilePhotoURL,
		AverageRating:   avg,
	}
}

func namesFor(ids []int64, names map[int64]string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if n, ok := names[id]; ok {
			out = append(out, n)
		}
	}
	return out
}

// containsFold reports whether any name equals target ignoring case.
// target must already be lower-cased.
func containsFold(names []string, target string) bool {
	for _, n := range names {
		if strings.ToLower(n) == target {
			return true
		}
	}
	return false
}
