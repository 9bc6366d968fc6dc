package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

const (
	collectionRequests = "requests"
	collectionProjects = "projects"
	collectionReviews  = "reviews"
)

// EngagementRepository stores requests, projects and reviews. Status changes
// are conditional updates so concurrent transitions cannot both apply.
type EngagementRepository struct {
	requests *mongo.Collection
	projects *mongo.Collection
	reviews  *mongo.Collection
	seq      sequence
}

var _ ports.EngagementRepository = (*EngagementRepository)(nil)

func NewEngagementRepository(db *mongo.Database) *EngagementRepository {
	return &EngagementRepository{
		requests: db.Collection(collectionRequests),
		projects: db.Collection(collectionProjects),
		reviews:  db.Collection(collectionReviews),
		seq:      newSequence(db),
	}
}

var byIDAsc = bson.D{{Key: "_id", Value: 1}}

// ---- requests --------------------------------------------------------------

func (r *EngagementRepository) FindRequestByID(ctx context.Context, id int64) (*domain.Request, error) {
	return findOne[domain.Request](ctx, r.requests, bson.M{"_id": id}, "request", id)
}

func (r *EngagementRepository) FindRequestByIdempotencyKey(ctx context.Context, clientID int64, key string) (*domain.Request, error) {
	return findOne[domain.Request](ctx, r.requests, bson.M{"client_id": clientID, "idempotency_key": key}, "request", 0)
}

func (r *EngagementRepository) CreateRequest(ctx context.Context, req *domain.Request) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, collectionRequests)
	if err != nil {
		return err
	}
	req.ID = id
	if _, err := r.requests.InsertOne(ctx, req); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Conflict("request", 0, "idempotency key already used")
		}
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}

// TransitionRequest sets the status only while it still equals from.
func (r *EngagementRepository) TransitionRequest(ctx context.Context, id int64, from, to domain.RequestStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.requests.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	current, err := r.FindRequestByID(ctx, id)
	if err != nil {
		return err
	}
	return domain.StatusConflict("request", id, string(from), string(current.Status))
}

func (r *EngagementRepository) FindRequestsByFreelancer(ctx context.Context, freelancerID int64) ([]*domain.Request, error) {
	return findMany[domain.Request](ctx, r.requests, bson.M{"freelancer_id": freelancerID}, byIDAsc)
}

func (r *EngagementRepository) FindRequestsByClient(ctx context.Context, clientID int64) ([]*domain.Request, error) {
	return findMany[domain.Request](ctx, r.requests, bson.M{"client_id": clientID}, byIDAsc)
}

// ---- projects --------------------------------------------------------------

func (r *EngagementRepository) FindProjectByID(ctx context.Context, id int64) (*domain.Project, error) {
	return findOne[domain.Project](ctx, r.projects, bson.M{"_id": id}, "project", id)
}

func (r *EngagementRepository) FindProjectByIdempotencyKey(ctx context.Context, clientID int64, key string) (*domain.Project, error) {
	return findOne[domain.Project](ctx, r.projects, bson.M{"client_id": clientID, "idempotency_key": key}, "project", 0)
}

func (r *EngagementRepository) CreateProject(ctx context.Context, p *domain.Project) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, collectionProjects)
	if err != nil {
		return err
	}
	p.ID = id
	if _, err := r.projects.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Conflict("project", 0, "project already exists")
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// TransitionProject sets the status only while it is one of from.
func (r *EngagementRepository) TransitionProject(ctx context.Context, id int64, from []domain.ProjectStatus, to domain.ProjectStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.projects.UpdateOne(ctx,
		bson.M{"_id": id, "status": bson.M{"$in": from}},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("update project status: %w", err)
	}
	if res.MatchedCount == 1 {
		return nil
	}

	current, err := r.FindProjectByID(ctx, id)
	if err != nil {
		return err
	}
	return domain.StatusConflict("project", id, string(to), string(current.Status))
}

func (r *EngagementRepository) FindProjectsByClient(ctx context.Context, clientID int64) ([]*domain.Project, error) {
	return findMany[domain.Project](ctx, r.projects, bson.M{"client_id": clientID}, byIDAsc)
}

func (r *EngagementRepository) FindProjectsByFreelancer(ctx context.Context, freelancerID int64) ([]*domain.Project, error) {
	return findMany[domain.Project](ctx, r.projects, bson.M{"freelancer_id": freelancerID}, byIDAsc)
}

// ---- reviews ---------------------------------------------------------------

func (r *EngagementRepository) FindReviewByProject(ctx context.Context, projectID int64) (*domain.Review, error) {
	return findOne[domain.Review](ctx, r.reviews, bson.M{"project_id": projectID}, "review", 0)
}

// CreateReview relies on the unique project_id index to reject a second review.
func (r *EngagementRepository) CreateReview(ctx context.Context, review *domain.Review) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, collectionReviews)
	if err != nil {
		return err
	}
	review.ID = id
	if _, err := r.reviews.InsertOne(ctx, review); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Conflict("review", review.ProjectID, "project already has a review")
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *EngagementRepository) FindReviewsByFreelancer(ctx context.Context, freelancerID int64) ([]*domain.Review, error) {
	return findMany[domain.Review](ctx, r.reviews, bson.M{"freelancer_id": freelancerID}, byIDAsc)
}

// EnsureIndexes creates lookup indexes plus the uniqueness guarantees the
// lifecycle relies on: one review per project and one idempotency key per client.
func (r *EngagementRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	idempotency := mongo.IndexModel{
		Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "idempotency_key", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"idempotency_key": bson.M{"$exists": true}}),
	}
	byParty := []mongo.IndexModel{
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
		{Keys: bson.D{{Key: "freelancer_id", Value: 1}}},
		idempotency,
	}

	if _, err := r.requests.Indexes().CreateMany(ctx, byParty); err != nil {
		return fmt.Errorf("requests indexes: %w", err)
	}
	if _, err := r.projects.Indexes().CreateMany(ctx, byParty); err != nil {
		return fmt.Errorf("projects indexes: %w", err)
	}

	reviewIdx := []mongo.IndexModel{
		{Keys: bson.D{{Key: "project_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "freelancer_id", Value: 1}}},
	}
	if _, err := r.reviews.Indexes().CreateMany(ctx, reviewIdx); err != nil {
		return fmt.Errorf("reviews indexes: %w", err)
	}
	return nil
}
