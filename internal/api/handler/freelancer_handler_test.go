package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

func TestFreelancerHandler_Browse_PassesFilters(t *testing.T) {
	discovery := &stubDiscoveryService{
		summaries: []ports.FreelancerSummary{{ID: 5, FullName: "Bia", AverageRating: 4.5}},
	}
	c, rec := newContext(http.MethodGet, "/api/freelancers?category=Design&rating=4.5&skill=figma&search=bia", "", nil)

	if err := NewFreelancerHandler(discovery, &stubEngagementService{}, &stubProfileService{}).Browse(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	want := ports.BrowseFilter{Category: "Design", MinRating: "4.5", Skill: "figma", Search: "bia"}
	if discovery.filter != want {
		t.Fatalf("filter = %+v, want %+v", discovery.filter, want)
	}

	var resp []freelancerSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0].Links.Self != "/api/freelancers/5" {
		t.Fatalf("unexpected response %+v", resp)
	}
	if resp[0].Categories == nil {
		t.Fatal("categories must render as an array")
	}
}

func TestFreelancerHandler_Browse_InvalidRating(t *testing.T) {
	discovery := &stubDiscoveryService{err: domain.InvalidInput("rating must be a number")}
	c, _ := newContext(http.MethodGet, "/api/freelancers?rating=abc", "", nil)

	err := NewFreelancerHandler(discovery, &stubEngagementService{}, &stubProfileService{}).Browse(c)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestFreelancerHandler_Get(t *testing.T) {
	discovery := &stubDiscoveryService{details: &ports.FreelancerDetails{
		FreelancerSummary: ports.FreelancerSummary{ID: 5, FullName: "Bia", AverageRating: 4},
		Bio:               "Designer",
		Reviews:           []ports.ReviewView{{ID: 1, Rating: 4, ClientName: "Ana"}},
	}}
	h := NewFreelancerHandler(discovery, &stubEngagementService{}, &stubProfileService{})

	c, rec := newContext(http.MethodGet, "/", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("5")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["full_name"] != "Bia" || resp["bio"] != "Designer" {
		t.Fatalf("embedded summary not flattened: %v", resp)
	}
	if reviews, _ := resp["reviews"].([]any); len(reviews) != 1 {
		t.Fatalf("expected one review, got %v", resp["reviews"])
	}

	c, _ = newContext(http.MethodGet, "/", "", nil)
	c.SetParamNames("id")
	c.SetParamValues("99")
	if err := h.Get(c); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFreelancerHandler_Accept(t *testing.T) {
	engagements := &stubEngagementService{
		acceptRequestFn: func(_ context.Context, actor domain.Actor, id int64) (*ports.AcceptResult, error) {
			if actor != freelancerActor || id != 9 {
				t.Fatalf("unexpected call %+v %d", actor, id)
			}
			salary := 1200.0
			return &ports.AcceptResult{
				Request: &domain.Request{ID: 9, Status: domain.RequestAccepted},
				Project: &domain.Project{ID: 3, RequestID: 9, Title: "Logo design", Salary: &salary, Status: domain.ProjectInProgress},
			}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/", "", &freelancerActor)
	c.SetParamNames("requestId")
	c.SetParamValues("9")

	if err := NewFreelancerHandler(&stubDiscoveryService{}, engagements, &stubProfileService{}).Accept(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp acceptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Request.Status != "ACCEPTED" || resp.Project.Status != "IN_PROGRESS" || *resp.Project.Salary != 1200 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestFreelancerHandler_Accept_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not target", domain.Forbidden("request", 9, "request is addressed to another freelancer"), domain.ErrForbidden},
		{"already decided", domain.StatusConflict("request", 9, "PENDING", "DECLINED"), domain.ErrConflict},
		{"unknown", domain.NotFound("request", 9), domain.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engagements := &stubEngagementService{
				acceptRequestFn: func(context.Context, domain.Actor, int64) (*ports.AcceptResult, error) {
					return nil, tt.err
				},
			}
			c, _ := newContext(http.MethodPost, "/", "", &freelancerActor)
			c.SetParamNames("requestId")
			c.SetParamValues("9")

			err := NewFreelancerHandler(&stubDiscoveryService{}, engagements, &stubProfileService{}).Accept(c)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestFreelancerHandler_Decline(t *testing.T) {
	engagements := &stubEngagementService{
		declineRequestFn: func(_ context.Context, _ domain.Actor, id int64) (*domain.Request, error) {
			return &domain.Request{ID: id, Status: domain.RequestDeclined}, nil
		},
	}
	c, rec := newContext(http.MethodPost, "/", "", &freelancerActor)
	c.SetParamNames("requestId")
	c.SetParamValues("4")

	if err := NewFreelancerHandler(&stubDiscoveryService{}, engagements, &stubProfileService{}).Decline(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var resp requestResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.ID != 4 || resp.Status != "DECLINED" || resp.Links.Decline != "" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestFreelancerHandler_ListRequestsAndReviews(t *testing.T) {
	engagements := &stubEngagementService{
		incoming: []ports.RequestView{{Request: &domain.Request{ID: 1, Status: domain.RequestPending}, ClientName: "Ana"}},
	}
	discovery := &stubDiscoveryService{
		reviews: []ports.ReviewView{{ID: 1, ProjectID: 3, Rating: 5, ClientName: "Ana"}},
	}
	h := NewFreelancerHandler(discovery, engagements, &stubProfileService{})

	c, rec := newContext(http.MethodGet, "/", "", &freelancerActor)
	if err := h.ListRequests(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var requests []requestResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &requests)
	if len(requests) != 1 || requests[0].ClientName != "Ana" {
		t.Fatalf("unexpected requests %+v", requests)
	}

	c, rec = newContext(http.MethodGet, "/", "", &freelancerActor)
	if err := h.ListReviews(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var reviews []receivedReviewResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &reviews)
	if len(reviews) != 1 || reviews[0].ClientName != "Ana" {
		t.Fatalf("unexpected reviews %+v", reviews)
	}
}

func TestFreelancerHandler_UpdateProfile_ReplacesCategories(t *testing.T) {
	profiles := &stubProfileService{details: &ports.FreelancerDetails{
		FreelancerSummary: ports.FreelancerSummary{ID: 5, FullName: "Bia", Categories: []string{"Web"}},
	}}
	c, rec := newContext(http.MethodPut, "/api/freelancers/me", `{"categories":["Web"],"bio":"hi"}`, &freelancerActor)

	if err := NewFreelancerHandler(&stubDiscoveryService{}, &stubEngagementService{}, profiles).UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	patch := profiles.freelancerPatch
	if len(patch.CategoryNames) != 1 || patch.Bio == nil || *patch.Bio != "hi" || patch.Skills != nil {
		t.Fatalf("unexpected patch %+v", patch)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestFreelancerHandler_UpdateProfile_RejectsBadEmail(t *testing.T) {
	c, _ := newContext(http.MethodPut, "/api/freelancers/me", `{"contact_email":"nope"}`, &freelancerActor)

	err := NewFreelancerHandler(&stubDiscoveryService{}, &stubEngagementService{}, &stubProfileService{}).UpdateProfile(c)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}
