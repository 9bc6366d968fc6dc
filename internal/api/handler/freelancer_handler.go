package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/freelaconnect/marketplace-api/internal/api/metrics"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

// FreelancerHandler serves the public discovery routes and the /me routes of
// the FREELANCER role.
type FreelancerHandler struct {
	discovery   ports.DiscoveryService
	engagements ports.EngagementService
	profiles    ports.ProfileService
}

func NewFreelancerHandler(discovery ports.DiscoveryService, engagements ports.EngagementService, profiles ports.ProfileService) *FreelancerHandler {
	return &FreelancerHandler{discovery: discovery, engagements: engagements, profiles: profiles}
}

// Browse lists freelancers matching the optional filters.
//
// @Summary      Browse freelancers
// @Tags         freelancers
// @Produce      json
// @Param        category  query     string  false  "Category name (case-insensitive)"
// @Param        rating    query     string  false  "Minimum average rating"
// @Param        skill     query     string  false  "Skill substring"
// @Param        search    query     string  false  "Matches name or skills"
// @Success      200       {array}   freelancerSummaryResponse
// @Failure      400       {object}  map[string]any
// @Router       /api/freelancers [get]
// @Router       /api/clients/freelancers [get]
func (h *FreelancerHandler) Browse(c echo.Context) error {
	summaries, err := h.discovery.BrowseFreelancers(c.Request().Context(), ports.BrowseFilter{
		Category:  c.QueryParam("category"),
		MinRating: c.QueryParam("rating"),
		Skill:     c.QueryParam("skill"),
		Search:    c.QueryParam("search"),
	})
	if err != nil {
		return err
	}
	out := make([]freelancerSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, toFreelancerSummaryResponse(s))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns a freelancer's public profile with reviews.
//
// @Summary      Get a freelancer
// @Tags         freelancers
// @Produce      json
// @Param        id   path      int  true  "Freelancer ID"
// @Success      200  {object}  freelancerDetailsResponse
// @Failure      404  {object}  map[string]any
// @Router       /api/freelancers/{id} [get]
func (h *FreelancerHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	details, err := h.discovery.GetFreelancer(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFreelancerDetailsResponse(details))
}

// GetProfile returns the authenticated freelancer's own profile.
//
// @Summary      Get own freelancer profile
// @Tags         freelancers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  freelancerDetailsResponse
// @Router       /api/freelancers/me [get]
func (h *FreelancerHandler) GetProfile(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	details, err := h.profiles.GetFreelancerProfile(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFreelancerDetailsResponse(details))
}

// UpdateProfile patches the authenticated freelancer's profile. Sending
// categories replaces the whole set.
//
// @Summary      Update own freelancer profile
// @Tags         freelancers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateFreelancerRequest  true  "Fields to change"
// @Success      200   {object}  freelancerDetailsResponse
// @Failure      400   {object}  map[string]any
// @Router       /api/freelancers/me [put]
func (h *FreelancerHandler) UpdateProfile(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	var req updateFreelancerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	details, err := h.profiles.UpdateFreelancerProfile(c.Request().Context(), actor, ports.FreelancerProfilePatch{
		FullName:        req.FullName,
		Bio:             req.Bio,
		Skills:          req.Skills,
		CategoryNames:   req.Categories,
		Whatsapp:        req.Whatsapp,
		ContactEmail:    req.ContactEmail,
		ProfilePhotoURL: req.ProfilePhotoURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFreelancerDetailsResponse(details))
}

// @Summary      List own projects
// @Tags         freelancers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  projectResponse
// @Router       /api/freelancers/me/projects [get]
func (h *FreelancerHandler) ListProjects(c echo.Context) error {
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

// @Summary      List received reviews
// @Tags         freelancers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  receivedReviewResponse
// @Router       /api/freelancers/me/reviews [get]
func (h *FreelancerHandler) ListReviews(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	views, err := h.discovery.ListReceivedReviews(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toReceivedReviewResponses(views))
}

// ListRequests returns the pending requests addressed to the freelancer.
//
// @Summary      List incoming requests
// @Tags         freelancers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  requestResponse
// @Router       /api/freelancers/me/requests [get]
func (h *FreelancerHandler) ListRequests(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	views, err := h.engagements.ListIncomingRequests(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRequestResponses(views))
}

// Accept accepts a pending request and opens an IN_PROGRESS project.
//
// @Summary      Accept a request
// @Tags         freelancers
// @Produce      json
// @Security     BearerAuth
// @Param        requestId  path      int  true  "Request ID"
// @Success      200        {object}  acceptResponse
// @Failure      403        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Failure      409        {object}  map[string]any
// @Router       /api/freelancers/me/requests/{requestId}/accept [post]
func (h *FreelancerHandler) Accept(c echo.Context) (err error) {
	defer func(start time.Time) { metrics.ObserveOperation("accept_request", start, err) }(time.Now())

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}

	res, err := h.engagements.AcceptRequest(c.Request().Context(), actor, requestID)
	if err != nil {
		return err
	}
	metrics.RequestDecisionsTotal.WithLabelValues("accepted").Inc()
	metrics.ProjectsCreatedTotal.WithLabelValues("request").Inc()
	return c.JSON(http.StatusOK, acceptResponse{
		Request: toRequestResponse(ports.RequestView{Request: res.Request}),
		Project: toProjectResponse(res.Project),
	})
}

// Decline declines a pending request.
//
// @Summary      Decline a request
// @Tags         freelancers
// @Produce      json
// @Security     BearerAuth
// @Param        requestId  path      int  true  "Request ID"
// @Success      200        {object}  requestResponse
// @Failure      403        {object}  map[string]any
// @Failure      404        {object}  map[string]any
// @Failure      409        {object}  map[string]any
// @Router       /api/freelancers/me/requests/{requestId}/decline [post]
func (h *FreelancerHandler) Decline(c echo.Context) (err error) {
	defer func(start time.Time) { metrics.ObserveOperation("decline_request", start, err) }(time.Now())

	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "requestId")
	if err != nil {
		return err
	}

	req, err := h.engagements.DeclineRequest(c.Request().Context(), actor, requestID)
	if err != nil {
		return err
	}
	metrics.RequestDecisionsTotal.WithLabelValues("declined").Inc()
	return c.JSON(http.StatusOK, toRequestResponse(ports.RequestView{Request: req}))
}
