package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

type reviewFinder interface {
	FindReviewsByFreelancer(ctx context.Context, freelancerID int64) ([]*domain.Review, error)
}

// RatingAggregator computes a freelancer's mean rating, consulting the cache first.
type RatingAggregator struct {
	reviews reviewFinder
	cache   ports.RatingCache
	log     zerolog.Logger
}

// NewRatingAggregator returns a RatingAggregator. A nil cache disables caching.
func NewRatingAggregator(reviews reviewFinder, cache ports.RatingCache, log zerolog.Logger) *RatingAggregator {
	if cache == nil {
		cache = nopRatingCache{}
	}
	return &RatingAggregator{reviews: reviews, cache: cache, log: log}
}

// AverageRating returns the mean rating, or 0 when the freelancer has no reviews.
// Cache failures are logged and never surface to the caller.
func (a *RatingAggregator) AverageRating(ctx context.Context, freelancerID int64) (float64, error) {
	avg, ok, err := a.cache.Get(ctx, freelancerID)
	if err != nil {
		a.log.Warn().Err(err).Int64("freelancer_id", freelancerID).Msg("rating cache read failed")
	} else if ok {
		return avg, nil
	}

	reviews, err := a.reviews.FindReviewsByFreelancer(ctx, freelancerID)
	if err != nil {
		return 0, fmt.Errorf("average rating: %w", err)
	}
	avg = MeanRating(reviews)

	if err := a.cache.Set(ctx, freelancerID, avg); err != nil {
		a.log.Warn().Err(err).Int64("freelancer_id", freelancerID).Msg("rating cache write failed")
	}
	return avg, nil
}

// MeanRating is the arithmetic mean of the ratings; 0 for an empty set.
func MeanRating(reviews []*domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

type nopRatingCache struct{}

func (nopRatingCache) Get(context.Context, int64) (float64, bool, error) { return 0, false, nil }
func (nopRatingCache) Set(context.Context, int64, float64) error         { return nil }
func (nopRatingCache) Invalidate(context.Context, int64) error           { return nil }
