package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/freelaconnect/marketplace-api/internal/api/middleware"
	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

var (
	clientActor     = domain.Actor{UserID: 1, Role: domain.RoleClient}
	freelancerActor = domain.Actor{UserID: 2, Role: domain.RoleFreelancer}
)

// newContext builds an echo context with the validator installed and, when
// actor is non-nil, the actor the Auth middleware would have set.
func newContext(method, target, body string, actor *domain.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		c.Set(middleware.ActorKey, *actor)
	}
	return c, rec
}

type stubAuthService struct {
	registerClientFn     func(ctx context.Context, in ports.RegisterClientInput) (*ports.AuthResult, error)
	registerFreelancerFn func(ctx context.Context, in ports.RegisterFreelancerInput) (*ports.AuthResult, error)
	loginFn              func(ctx context.Context, email, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Authenticate(context.Context, string) (domain.Actor, error) {
	return domain.Actor{}, domain.ErrAuth
}

func (s *stubAuthService) RegisterClient(ctx context.Context, in ports.RegisterClientInput) (*ports.AuthResult, error) {
	return s.registerClientFn(ctx, in)
}

func (s *stubAuthService) RegisterFreelancer(ctx context.Context, in ports.RegisterFreelancerInput) (*ports.AuthResult, error) {
	return s.registerFreelancerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

type stubEngagementService struct {
	createRequestFn   func(ctx context.Context, actor domain.Actor, in ports.CreateRequestInput) (*ports.RequestView, error)
	acceptRequestFn   func(ctx context.Context, actor domain.Actor, id int64) (*ports.AcceptResult, error)
	declineRequestFn  func(ctx context.Context, actor domain.Actor, id int64) (*domain.Request, error)
	hireDirectFn      func(ctx context.Context, actor domain.Actor, in ports.HireInput) (*domain.Project, error)
	completeProjectFn func(ctx context.Context, actor domain.Actor, in ports.CompleteProjectInput) (*ports.CompletionResult, error)
	addReviewFn       func(ctx context.Context, actor domain.Actor, in ports.AddReviewInput) (*domain.Review, error)
	incoming          []ports.RequestView
	sent              []ports.RequestView
	projects          []*domain.Project
}

func (s *stubEngagementService) CreateRequest(ctx context.Context, actor domain.Actor, in ports.CreateRequestInput) (*ports.RequestView, error) {
	return s.createRequestFn(ctx, actor, in)
}

func (s *stubEngagementService) AcceptRequest(ctx context.Context, actor domain.Actor, id int64) (*ports.AcceptResult, error) {
	return s.acceptRequestFn(ctx, actor, id)
}

func (s *stubEngagementService) DeclineRequest(ctx context.Context, actor domain.Actor, id int64) (*domain.Request, error) {
	return s.declineRequestFn(ctx, actor, id)
}

func (s *stubEngagementService) HireDirect(ctx context.Context, actor domain.Actor, in ports.HireInput) (*domain.Project, error) {
	return s.hireDirectFn(ctx, actor, in)
}

func (s *stubEngagementService) CompleteProject(ctx context.Context, actor domain.Actor, in ports.CompleteProjectInput) (*ports.CompletionResult, error) {
	return s.completeProjectFn(ctx, actor, in)
}

func (s *stubEngagementService) AddReview(ctx context.Context, actor domain.Actor, in ports.AddReviewInput) (*domain.Review, error) {
	return s.addReviewFn(ctx, actor, in)
}

func (s *stubEngagementService) ListIncomingRequests(context.Context, domain.Actor) ([]ports.RequestView, error) {
	return s.incoming, nil
}

func (s *stubEngagementService) ListSentRequests(context.Context, domain.Actor) ([]ports.RequestView, error) {
	return s.sent, nil
}

func (s *stubEngagementService) ListProjects(context.Context, domain.Actor) ([]*domain.Project, error) {
	return s.projects, nil
}

type stubProfileService struct {
	client     *domain.Client
	details    *ports.FreelancerDetails
	categories []*domain.Category
	err        error

	clientPatch     ports.ClientProfilePatch
	freelancerPatch ports.FreelancerProfilePatch
}

func (s *stubProfileService) GetClientProfile(context.Context, domain.Actor) (*domain.Client, error) {
	return s.client, s.err
}

func (s *stubProfileService) UpdateClientProfile(_ context.Context, _ domain.Actor, patch ports.ClientProfilePatch) (*domain.Client, error) {
	s.clientPatch = patch
	return s.client, s.err
}

func (s *stubProfileService) GetFreelancerProfile(context.Context, domain.Actor) (*ports.FreelancerDetails, error) {
	return s.details, s.err
}

func (s *stubProfileService) UpdateFreelancerProfile(_ context.Context, _ domain.Actor, patch ports.FreelancerProfilePatch) (*ports.FreelancerDetails, error) {
	s.freelancerPatch = patch
	return s.details, s.err
}

func (s *stubProfileService) ListCategories(context.Context) ([]*domain.Category, error) {
	return s.categories, s.err
}

type stubDiscoveryService struct {
	summaries []ports.FreelancerSummary
	details   *ports.FreelancerDetails
	reviews   []ports.ReviewView
	err       error
	filter    ports.BrowseFilter
}

func (s *stubDiscoveryService) BrowseFreelancers(_ context.Context, filter ports.BrowseFilter) ([]ports.FreelancerSummary, error) {
	s.filter = filter
	return s.summaries, s.err
}

func (s *stubDiscoveryService) GetFreelancer(_ context.Context, id int64) (*ports.FreelancerDetails, error) {
	if s.details == nil || s.details.ID != id {
		return nil, domain.NotFound("freelancer", id)
	}
	return s.details, s.err
}

func (s *stubDiscoveryService) ListReceivedReviews(context.Context, domain.Actor) ([]ports.ReviewView, error) {
	return s.reviews, s.err
}
