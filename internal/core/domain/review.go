package domain

import "time"

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a client's one-time rating of a completed project.
type Review struct {
	ID           int64     `json:"id" bson:"_id"`
	ProjectID    int64     `json:"project_id" bson:"project_id"`
	ClientID     int64     `json:"client_id" bson:"client_id"`
	FreelancerID int64     `json:"freelancer_id" bson:"freelancer_id"`
	Rating       int       `json:"rating" bson:"rating"`
	Comment      string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// ValidateRating rejects ratings outside [MinRating, MaxRating].
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return InvalidInput("rating must be between 1 and 5")
	}
	return nil
}
