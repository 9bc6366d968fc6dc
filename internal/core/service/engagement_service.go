package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

const defaultProjectTitle = "Client request"

// EngagementService drives requests, projects and reviews through their
// lifecycles. Every transition is checked against the acting user's role,
// ownership of the entity and its current status.
type EngagementService struct {
	directory ports.DirectoryRepository
	store     ports.EngagementRepository
	tx        ports.TxManager
	ratings   ports.RatingCache
	logger    zerolog.Logger
	now       func() time.Time
}

// NewEngagementService creates a new EngagementService. A nil ratings cache
// disables invalidation.
func NewEngagementService(
	directory ports.DirectoryRepository,
	store ports.EngagementRepository,
	tx ports.TxManager,
	ratings ports.RatingCache,
	logger zerolog.Logger,
) *EngagementService {
	if ratings == nil {
		ratings = nopRatingCache{}
	}
	return &EngagementService{
		directory: directory,
		store:     store,
		tx:        tx,
		ratings:   ratings,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateRequest opens a PENDING request from the acting client to a freelancer.
// Retries carrying the same idempotency key return the first request.
func (s *EngagementService) CreateRequest(ctx context.Context, actor domain.Actor, in ports.CreateRequestInput) (*ports.RequestView, error) {
	client, err := clientFor(ctx, s.directory, actor)
	if err != nil {
		return nil, err
	}
	if normalize(in.Type) == "" {
		return nil, domain.InvalidInput("type is required")
	}

	if key := normalize(in.IdempotencyKey); key != "" {
		existing, err := s.store.FindRequestByIdempotencyKey(ctx, client.ID, key)
		switch {
		case err == nil:
			freelancer, err := s.directory.FindFreelancerByID(ctx, existing.FreelancerID)
			if err != nil {
				return nil, err
			}
			s.logger.Info().
				Int64("request_id", existing.ID).
				Str("idempotency_key", key).
				Msg("idempotent replay, returning existing request")
			return &ports.RequestView{
				Request:        existing,
				ClientName:     client.FullName,
				FreelancerName: freelancer.FullName,
				AlreadyExisted: true,
			}, nil
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("create request: %w", err)
		}
	}

	freelancer, err := s.directory.FindFreelancerByID(ctx, in.FreelancerID)
	if err != nil {
		return nil, err
	}

	req := &domain.Request{
		ClientID:       client.ID,
		FreelancerID:   freelancer.ID,
		Type:           normalize(in.Type),
		Description:    in.Description,
		Duration:       in.Duration,
		Salary:         in.Salary,
		Status:         domain.RequestPending,
		CreatedAt:      s.now(),
		IdempotencyKey: normalize(in.IdempotencyKey),
	}
	if err := s.store.CreateRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info().
		Int64("request_id", req.ID).
		Int64("client_id", client.ID).
		Int64("freelancer_id", freelancer.ID).
		Msg("request created")

	return &ports.RequestView{
		Request:        req,
		ClientName:     client.FullName,
		FreelancerName: freelancer.FullName,
	}, nil
}

// AcceptRequest moves a PENDING request to ACCEPTED and opens an IN_PROGRESS
// project for it. Both writes commit together or not at all.
func (s *EngagementService) AcceptRequest(ctx context.Context, actor domain.Actor, requestID int64) (*ports.AcceptResult, error) {
	req, err := s.targetedRequest(ctx, actor, requestID, domain.RequestAccepted)
	if err != nil {
		return nil, err
	}

	title := req.Type
	if strings.TrimSpace(title) == "" {
		title = defaultProjectTitle
	}
	now := s.now()

	var project *domain.Project
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.store.TransitionRequest(ctx, req.ID, domain.RequestPending, domain.RequestAccepted); err != nil {
			return err
		}
		// rebuilt per attempt so a retried transaction never reuses an id
		project = &domain.Project{
			ClientID:     req.ClientID,
			FreelancerID: req.FreelancerID,
			RequestID:    req.ID,
			Title:        title,
			Description:  req.Description,
			ServiceName:  req.Type,
			Duration:     req.Duration,
			Salary:       domain.ParseSalary(req.Salary),
			Status:       domain.ProjectInProgress,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		return s.store.CreateProject(ctx, project)
	})
	if err != nil {
		return nil, fmt.Errorf("accept request: %w", err)
	}
	req.Status = domain.RequestAccepted

	s.logger.Info().
		Int64("request_id", req.ID).
		Int64("project_id", project.ID).
		Str("status", string(req.Status)).
		Msg("request accepted")

	return &ports.AcceptResult{Request: req, Project: project}, nil
}

// DeclineRequest moves a PENDING request to DECLINED. No project is created.
func (s *EngagementService) DeclineRequest(ctx context.Context, actor domain.Actor, requestID int64) (*domain.Request, error) {
	req, err := s.targetedRequest(ctx, actor, requestID, domain.RequestDeclined)
	if err != nil {
		return nil, err
	}

	if err := s.store.TransitionRequest(ctx, req.ID, domain.RequestPending, domain.RequestDeclined); err != nil {
		return nil, fmt.Errorf("decline request: %w", err)
	}
	req.Status = domain.RequestDeclined

	s.logger.Info().
		Int64("request_id", req.ID).
		Str("status", string(req.Status)).
		Msg("request declined")

	return req, nil
}

// targetedRequest loads a request addressed to the acting freelancer and
// checks it may move to next.
func (s *EngagementService) targetedRequest(ctx context.Context, actor domain.Actor, requestID int64, next domain.RequestStatus) (*domain.Request, error) {
	freelancer, err := freelancerFor(ctx, s.directory, actor)
	if err != nil {
		return nil, err
	}
	req, err := s.store.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.FreelancerID != freelancer.ID {
		return nil, domain.Forbidden("request", req.ID, "request is addressed to another freelancer")
	}
	if !req.Status.CanTransitionTo(next) {
		return nil, domain.StatusConflict("request", req.ID, string(domain.RequestPending), string(req.Status))
	}
	return req, nil
}

// HireDirect opens a PENDING project without a prior request.
func (s *EngagementService) HireDirect(ctx context.Context, actor domain.Actor, in ports.HireInput) (*domain.Project, error) {
	client, err := clientFor(ctx, s.directory, actor)
	if err != nil {
		return nil, err
	}
	if normalize(in.Title) == "" {
		return nil, domain.InvalidInput("title is required")
	}

	key := normalize(in.IdempotencyKey)
	if key != "" {
		existing, err := s.store.FindProjectByIdempotencyKey(ctx, client.ID, key)
		switch {
		case err == nil:
			s.logger.Info().
				Int64("project_id", existing.ID).
				Str("idempotency_key", key).
				Msg("idempotent replay, returning existing project")
			return existing, nil
		case !errors.Is(err, domain.ErrNotFound):
			return nil, fmt.Errorf("hire: %w", err)
		}
	}

	freelancer, err := s.directory.FindFreelancerByID(ctx, in.FreelancerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	project := &domain.Project{
		ClientID:       client.ID,
		FreelancerID:   freelancer.ID,
		Title:          normalize(in.Title),
		Description:    in.Description,
		ServiceName:    in.ServiceName,
		Duration:       in.Duration,
		Deadline:       in.Deadline,
		Salary:         in.Salary,
		Status:         domain.ProjectPending,
		CreatedAt:      now,
		UpdatedAt:      now,
		IdempotencyKey: key,
	}
	if err := s.store.CreateProject(ctx, project); err != nil {
		return nil, fmt.Errorf("hire: %w", err)
	}

	s.logger.Info().
		Int64("project_id", project.ID).
		Int64("client_id", client.ID).
		Int64("freelancer_id", freelancer.ID).
		Msg("freelancer hired")

	return project, nil
}

// CompleteProject marks the acting client's project COMPLETED and, when a
// rating is supplied, records the review in the same transaction. Completing
// an already completed project is a no-op on status.
func (s *EngagementService) CompleteProject(ctx context.Context, actor domain.Actor, in ports.CompleteProjectInput) (*ports.CompletionResult, error) {
	project, err := s.ownedProject(ctx, actor, in.ProjectID)
	if err != nil {
		return nil, err
	}

	comment := normalize(in.Comment)
	if comment != "" && in.Rating == nil {
		return nil, domain.InvalidInput("rating is required when a comment is given")
	}
	if in.Rating != nil {
		if err := domain.ValidateRating(*in.Rating); err != nil {
			return nil, err
		}
	}

	now := s.now()
	wasCompleted := project.Status == domain.ProjectCompleted

	var (
		review       *domain.Review
		transitioned bool
	)
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		review, transitioned = nil, false
		if !wasCompleted {
			err := s.store.TransitionProject(ctx, project.ID, domain.Completable(), domain.ProjectCompleted)
			// COMPLETED is the only status outside Completable, so a conflict
			// means a concurrent call already finished it.
			switch {
			case err == nil:
				transitioned = true
			case !errors.Is(err, domain.ErrConflict):
				return err
			}
		}
		if in.Rating == nil {
			return nil
		}
		review = &domain.Review{
			ProjectID:    project.ID,
			ClientID:     project.ClientID,
			FreelancerID: project.FreelancerID,
			Rating:       *in.Rating,
			Comment:      comment,
			CreatedAt:    now,
		}
		return s.insertReview(ctx, review)
	})
	if err != nil {
		return nil, fmt.Errorf("complete project: %w", err)
	}

	if !wasCompleted {
		project.Status = domain.ProjectCompleted
		project.UpdatedAt = now
	}
	if review != nil {
		s.invalidateRating(ctx, project.FreelancerID)
	}

	evt := s.logger.Info().
		Int64("project_id", project.ID).
		Str("status", string(project.Status)).
		Bool("transitioned", transitioned)
	if review != nil {
		evt = evt.Int64("review_id", review.ID).Int("rating", review.Rating)
	}
	evt.Msg("project completed")

	return &ports.CompletionResult{Project: project, Review: review, Transitioned: transitioned}, nil
}

// AddReview reviews a COMPLETED project owned by the acting client.
func (s *EngagementService) AddReview(ctx context.Context, actor domain.Actor, in ports.AddReviewInput) (*domain.Review, error) {
	if in.Rating == nil {
		return nil, domain.InvalidInput("rating is required")
	}
	if err := domain.ValidateRating(*in.Rating); err != nil {
		return nil, err
	}

	project, err := s.ownedProject(ctx, actor, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Status != domain.ProjectCompleted {
		return nil, domain.StatusConflict("project", project.ID, string(domain.ProjectCompleted), string(project.Status))
	}

	review := &domain.Review{
		ProjectID:    project.ID,
		ClientID:     project.ClientID,
		FreelancerID: project.FreelancerID,
		Rating:       *in.Rating,
		Comment:      normalize(in.Comment),
		CreatedAt:    s.now(),
	}
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		review.ID = 0
		return s.insertReview(ctx, review)
	})
	if err != nil {
		return nil, fmt.Errorf("add review: %w", err)
	}
	s.invalidateRating(ctx, project.FreelancerID)

	s.logger.Info().
		Int64("review_id", review.ID).
		Int64("project_id", project.ID).
		Int("rating", review.Rating).
		Msg("review added")

	return review, nil
}

// insertReview enforces one review per project. The store's unique index
// catches what the read misses.
func (s *EngagementService) insertReview(ctx context.Context, review *domain.Review) error {
	_, err := s.store.FindReviewByProject(ctx, review.ProjectID)
	switch {
	case err == nil:
		return domain.Conflict("review", review.ProjectID, "project already has a review")
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}
	return s.store.CreateReview(ctx, review)
}

func (s *EngagementService) ownedProject(ctx context.Context, actor domain.Actor, projectID int64) (*domain.Project, error) {
	client, err := clientFor(ctx, s.directory, actor)
	if err != nil {
		return nil, err
	}
	project, err := s.store.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.ClientID != client.ID {
		return nil, domain.Forbidden("project", project.ID, "project belongs to another client")
	}
	return project, nil
}

func (s *EngagementService) invalidateRating(ctx context.Context, freelancerID int64) {
	if err := s.ratings.Invalidate(ctx, freelancerID); err != nil {
		s.logger.Warn().Err(err).Int64("freelancer_id", freelancerID).Msg("rating cache invalidation failed")
	}
}

// ListIncomingRequests returns the PENDING requests addressed to the acting freelancer.
func (s *EngagementService) ListIncomingRequests(ctx context.Context, actor domain.Actor) ([]ports.RequestView, error) {
	freelancer, err := freelancerFor(ctx, s.directory, actor)
	if err != nil {
		return nil, err
	}
	reqs, err := s.store.FindRequestsByFreelancer(ctx, freelancer.ID)
	if err != nil {
		return nil, fmt.Errorf("list incoming requests: %w", err)
	}

	clientNames := map[int64]string{}
	views := make([]ports.RequestView, 0, len(reqs))
	for _, r := range reqs {
		if r.Status != domain.RequestPending {
			continue
		}
		name, ok := clientNames[r.ClientID]
		if !ok {
			c, err := s.directory.FindClientByID(ctx, r.ClientID)
			if err != nil {
				return nil, fmt.Errorf("list incoming requests: %w", err)
			}
			name = c.FullName
			clientNames[r.ClientID] = name
		}
		views = append(views, ports.RequestView{Request: r, ClientName: name, FreelancerName: freelancer.FullName})
	}
	return views, nil
}

// ListSentRequests returns every request the acting client created.
func (s *EngagementService) ListSentRequests(ctx context.Context, actor domain.Actor) ([]ports.RequestView, error) {
	client, err := clientFor(ctx, s.directory, actor)
	if err != nil {
		return nil, err
	}
	reqs, err := s.store.FindRequestsByClient(ctx, client.ID)
	if err != nil {
		return nil, fmt.Errorf("list sent requests: %w", err)
	}

	freelancerNames := map[int64]string{}
	views := make([]ports.RequestView, 0, len(reqs))
	for _, r := range reqs {
		name, ok := freelancerNames[r.FreelancerID]
		if !ok {
			f, err := s.directory.FindFreelancerByID(ctx, r.FreelancerID)
			if err != nil {
				return nil, fmt.Errorf("list sent requests: %w", err)
			}
			name = f.FullName
			freelancerNames[r.FreelancerID] = name
		}
		views = append(views, ports.RequestView{Request: r, ClientName: client.FullName, FreelancerName: name})
	}
	return views, nil
}

// ListProjects returns the actor's projects as client or as freelancer.
func (s *EngagementService) ListProjects(ctx context.Context, actor domain.Actor) ([]*domain.Project, error) {
	switch actor.Role {
	case domain.RoleClient:
		client, err := clientFor(ctx, s.directory, actor)
		if err != nil {
			return nil, err
		}
		return s.store.FindProjectsByClient(ctx, client.ID)
	case domain.RoleFreelancer:
		freelancer, err := freelancerFor(ctx, s.directory, actor)
		if err != nil {
			return nil, err
		}
		return s.store.FindProjectsByFreelancer(ctx, freelancer.ID)
	default:
		return nil, domain.Forbidden("project", 0, "unknown role")
	}
}
