package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

const (
	collectionClients     = "clients"
	collectionFreelancers = "freelancers"
	collectionCategories  = "categories"
)

// DirectoryRepository stores client and freelancer profiles and the shared
// category list.
type DirectoryRepository struct {
	clients     *mongo.Collection
	freelancers *mongo.Collection
	categories  *mongo.Collection
	seq         sequence
}

var _ ports.DirectoryRepository = (*DirectoryRepository)(nil)

func NewDirectoryRepository(db *mongo.Database) *DirectoryRepository {
	return &DirectoryRepository{
		clients:     db.Collection(collectionClients),
		freelancers: db.Collection(collectionFreelancers),
		categories:  db.Collection(collectionCategories),
		seq:         newSequence(db),
	}
}

func (r *DirectoryRepository) FindClientByID(ctx context.Context, id int64) (*domain.Client, error) {
	return findOne[domain.Client](ctx, r.clients, bson.M{"_id": id}, "client", id)
}

func (r *DirectoryRepository) FindClientByOwner(ctx context.Context, userID int64) (*domain.Client, error) {
	return findOne[domain.Client](ctx, r.clients, bson.M{"owner_user_id": userID}, "client", 0)
}

func (r *DirectoryRepository) FindFreelancerByID(ctx context.Context, id int64) (*domain.Freelancer, error) {
	return findOne[domain.Freelancer](ctx, r.freelancers, bson.M{"_id": id}, "freelancer", id)
}

func (r *DirectoryRepository) FindFreelancerByOwner(ctx context.Context, userID int64) (*domain.Freelancer, error) {
	return findOne[domain.Freelancer](ctx, r.freelancers, bson.M{"owner_user_id": userID}, "freelancer", 0)
}

func (r *DirectoryRepository) ListFreelancers(ctx context.Context) ([]*domain.Freelancer, error) {
	return findMany[domain.Freelancer](ctx, r.freelancers, bson.M{}, bson.D{{Key: "_id", Value: 1}})
}

// SaveClient inserts a new client (assigning its id) or replaces an existing one.
func (r *DirectoryRepository) SaveClient(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if c.ID == 0 {
		id, err := r.seq.next(ctx, collectionClients)
		if err != nil {
			return err
		}
		c.ID = id
	}
	return replaceByID(ctx, r.clients, c.ID, c)
}

// SaveFreelancer inserts a new freelancer (assigning its id) or replaces an existing one.
func (r *DirectoryRepository) SaveFreelancer(ctx context.Context, f *domain.Freelancer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if f.ID == 0 {
		id, err := r.seq.next(ctx, collectionFreelancers)
		if err != nil {
			return err
		}
		f.ID = id
	}
	if f.CategoryIDs == nil {
		f.CategoryIDs = []int64{}
	}
	return replaceByID(ctx, r.freelancers, f.ID, f)
}

// FindOrCreateCategory returns the category with the given name, creating it
// if needed. The unique name index makes concurrent creation converge.
func (r *DirectoryRepository) FindOrCreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cat domain.Category
	err := r.categories.FindOne(ctx, bson.M{"name": name}).Decode(&cat)
	if err == nil {
		return &cat, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("find category: %w", err)
	}

	id, err := r.seq.next(ctx, collectionCategories)
	if err != nil {
		return nil, err
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)
	err = r.categories.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": bson.M{"_id": id}},
		opts,
	).Decode(&cat)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &cat, nil
}

func (r *DirectoryRepository) FindCategoriesByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error) {
	if len(ids) == 0 {
		return []*domain.Category{}, nil
	}
	found, err := findMany[domain.Category](ctx, r.categories, bson.M{"_id": bson.M{"$in": ids}}, nil)
	if err != nil {
		return nil, err
	}

	// keep the caller's order
	byID := make(map[int64]*domain.Category, len(found))
	for _, c := range found {
		byID[c.ID] = c
	}
	out := make([]*domain.Category, 0, len(ids))
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *DirectoryRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return findMany[domain.Category](ctx, r.categories, bson.M{}, bson.D{{Key: "name", Value: 1}})
}

// EnsureIndexes creates the owner and category-name indexes.
func (r *DirectoryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	ownerIdx := mongo.IndexModel{
		Keys:    bson.D{{Key: "owner_user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.clients.Indexes().CreateOne(ctx, ownerIdx); err != nil {
		return fmt.Errorf("clients indexes: %w", err)
	}
	if _, err := r.freelancers.Indexes().CreateOne(ctx, ownerIdx); err != nil {
		return fmt.Errorf("freelancers indexes: %w", err)
	}
	_, err := r.categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("categories indexes: %w", err)
	}
	return nil
}

// ----------------------------------------------------------------------------
// helpers shared by the repositories in this package
// ----------------------------------------------------------------------------

func findOne[T any](ctx context.Context, col *mongo.Collection, filter bson.M, entity string, id int64) (*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var out T
	if err := col.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound(entity, id)
		}
		return nil, fmt.Errorf("find %s: %w", entity, err)
	}
	return &out, nil
}

func findMany[T any](ctx context.Context, col *mongo.Collection, filter bson.M, sort bson.D) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)

	out := []*T{}
	for cur.Next(ctx) {
		var item T
		if err := cur.Decode(&item); err != nil {
			return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
		}
		out = append(out, &item)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", col.Name(), err)
	}
	return out, nil
}

func replaceByID(ctx context.Context, col *mongo.Collection, id int64, doc any) error {
	_, err := col.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.Conflict(col.Name(), id, "duplicate profile")
		}
		return fmt.Errorf("save %s: %w", col.Name(), err)
	}
	return nil
}
