package ports

import "context"

// RatingCache abstracts the average-rating cache (Redis).
type RatingCache interface {
	Get(ctx context.Context, freelancerID int64) (avg float64, ok bool, err error)
	Set(ctx context.Context, freelancerID int64, avg float64) error
	Invalidate(ctx context.Context, freelancerID int64) error
}
