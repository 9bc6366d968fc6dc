package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelaconnect/marketplace-api/internal/api/metrics"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

// ClientHandler serves the /api/clients routes. Every route requires the
// CLIENT role; the router enforces it.
type ClientHandler struct {
	engagements ports.EngagementService
	profiles    ports.ProfileService
}

func NewClientHandler(engagements ports.EngagementService, profiles ports.ProfileService) *ClientHandler {
	return &ClientHandler{engagements: engagements, profiles: profiles}
}

// GetProfile returns the authenticated client's profile.
//
// @Summary      Get own client profile
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  clientResponse
// @Failure      401  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /api/clients/me [get]
func (h *ClientHandler) GetProfile(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	client, err := h.profiles.GetClientProfile(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// UpdateProfile patches the authenticated client's profile.
//
// @Summary      Update own client profile
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateClientRequest  true  "Fields to change"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/clients/me [put]
func (h *ClientHandler) UpdateProfile(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req updateClientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	client, err := h.profiles.UpdateClientProfile(c.Request().Context(), actor, ports.ClientProfilePatch{
		FullName:        req.FullName,
		Company:         req.Company,
		ProfilePhotoURL: req.ProfilePhotoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Hire creates a project directly, skipping the request stage.
//
// @Summary      Hire a freelancer directly
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string       false  "Retry key"
// @Param        body             body      hireRequest  true   "Project details"
// @Success      201              {object}  projectResponse
// @Failure      400              {object}  map[string]any
// @Failure      404              {object}  map[string]any
// @Router       /api/clients/hire [post]
func (h *ClientHandler) Hire(c echo.Context) (err error) {
	defer func(start time.Time) { metrics.ObserveOperation("hire_direct", start, err) }(time.Now())

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req hireRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.engagements.HireDirect(c.Request().Context(), actor, ports.HireInput{
		FreelancerID:   req.FreelancerID,
		Title:          req.Title,
		Description:    req.Description,
		ServiceName:    req.ServiceName,
		Duration:       req.Duration,
		Deadline:       req.Deadline,
		Salary:         req.Salary,
		IdempotencyKey: strings.TrimSpace(c.Request().Header.Get(headerIdempotencyKey)),
	})
	if err != nil {
		return err
	}
	metrics.ProjectsCreatedTotal.WithLabelValues("direct").Inc()
	return c.JSON(http.StatusCreated, toProjectResponse(project))
}

// CreateRequest sends an engagement request to a freelancer. A retry with
// the same Idempotency-Key returns the first request with 200.
//
// @Summary      Send a request to a freelancer
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Retry key"
// @Param        body             body      createRequestRequest  true   "Request details"
// @Success      201              {object}  requestResponse
// @Success      200              {object}  requestResponse
// @Failure      400              {object}  map[string]any
// @Failure      404              {object}  map[string]any
// @Router       /api/clients/me/requests [post]
func (h *ClientHandler) CreateRequest(c echo.Context) (err error) {
	defer func(start time.Time) { metrics.ObserveOperation("create_request", start, err) }(time.Now())

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req createRequestRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	view, err := h.engagements.CreateRequest(c.Request().Context(), actor, ports.CreateRequestInput{
		FreelancerID:   req.FreelancerID,
		Type:           req.Type,
		Description:    req.Description,
		Duration:       req.Duration,
		Salary:         req.Salary,
		IdempotencyKey: strings.TrimSpace(c.Request().Header.Get(headerIdempotencyKey)),
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	replay := "false"
	if view.AlreadyExisted {
		status = http.StatusOK
		replay = "true"
	}
	metrics.RequestsCreatedTotal.WithLabelValues(replay).Inc()
	return c.JSON(status, toRequestResponse(*view))
}

// ListRequests returns every request the client has sent.
//
// @Summary      List sent requests
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   requestResponse
// @Router       /api/clients/me/requests [get]
func (h *ClientHandler) ListRequests(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	views, err := h.engagements.ListSentRequests(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestResponses(views))
}

// ListProjects returns the client's projects.
//
// @Summary      List own projects
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   projectResponse
// @Router       /api/clients/me/projects [get]
func (h *ClientHandler) ListProjects(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	projects, err := h.engagements.ListProjects(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponses(projects))
}

// CompleteProject marks a project completed, optionally with a review.
//
// @Summary      Complete a project
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        projectId  path      int                     true   "Project ID"
// @Param        body       body      completeProjectRequest  false  "Optional review"
// @Success      200        {object}  completionResponse
// @Failure      400        {object}  map[string]any
// @Failure      403        {object}  map[string]any
// @Failure      409        {object}  map[string]any
// @Router       /api/clients/me/projects/{projectId}/complete [post]
func (h *ClientHandler) CompleteProject(c echo.Context) (err error) {
	defer func(start time.Time) { metrics.ObserveOperation("complete_project", start, err) }(time.Now())

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	projectID, err := pathID(c, "projectId")
	if err != nil {
		return err
	}
	var req completeProjectRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.engagements.CompleteProject(c.Request().Context(), actor, ports.CompleteProjectInput{
		ProjectID: projectID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}

	if res.Transitioned {
		metrics.ProjectsCompletedTotal.Inc()
	}
	resp := completionResponse{Project: toProjectResponse(res.Project)}
	if res.Review != nil {
		metrics.ReviewSubmitted(res.Review.Rating)
		review := toReviewResponse(res.Review)
		resp.Review = &review
	}
	return c.JSON(http.StatusOK, resp)
}

// AddReview reviews a project that is already completed.
//
// @Summary      Review a completed project
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addReviewRequest  true  "Review"
// @Success      201   {object}  reviewResponse
// @Failure      400   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      409   {object}  map[string]any
// @Router       /api/clients/reviews [post]
func (h *ClientHandler) AddReview(c echo.Context) (err error) {
	defer func(start time.Time) { metrics.ObserveOperation("add_review", start, err) }(time.Now())

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req addReviewRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	review, err := h.engagements.AddReview(c.Request().Context(), actor, ports.AddReviewInput{
		ProjectID: req.ProjectID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		return err
	}
	metrics.ReviewSubmitted(review.Rating)
	return c.JSON(http.StatusCreated, toReviewResponse(review))
}
