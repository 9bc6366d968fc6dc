package handler

import (
	"fmt"

	"github.com/freelaconnect/marketplace-api/internal/core/domain"
	"github.com/freelaconnect/marketplace-api/internal/core/ports"
)

// toRequestResponse renders a request view; accept/decline links are only
// present while the request is still pending.
func toRequestResponse(v ports.RequestView) requestResponse {
	r := v.Request
	resp := requestResponse{
		ID:             r.ID,
		ClientID:       r.ClientID,
		ClientName:     v.ClientName,
		FreelancerID:   r.FreelancerID,
		FreelancerName: v.FreelancerName,
		Type:           r.Type,
		Description:    r.Description,
		Duration:       r.Duration,
		Salary:         r.Salary,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
	}
	if r.Status == domain.RequestPending {
		resp.Links = requestLinks{
			Accept:  fmt.Sprintf("/api/freelancers/me/requests/%d/accept", r.ID),
			Decline: fmt.Sprintf("/api/freelancers/me/requests/%d/decline", r.ID),
		}
	}
	return resp
}

func toRequestResponses(views []ports.RequestView) []requestResponse {
	out := make([]requestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toRequestResponse(v))
	}
	return out
}

func toProjectResponse(p *domain.Project) projectResponse {
	resp := projectResponse{
		ID:           p.ID,
		ClientID:     p.ClientID,
		FreelancerID: p.FreelancerID,
		Title:        p.Title,
		Description:  p.Description,
		ServiceName:  p.ServiceName,
		Duration:     p.Duration,
		Deadline:     p.Deadline,
		Salary:       p.Salary,
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.RequestID != 0 {
		id := p.RequestID
		resp.RequestID = &id
	}
	if p.Status != domain.ProjectCompleted {
		resp.Links.Complete = fmt.Sprintf("/api/clients/me/projects/%d/complete", p.ID)
	}
	return resp
}

func toProjectResponses(projects []*domain.Project) []projectResponse {
	out := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out
}

func toReviewResponse(r *domain.Review) reviewResponse {
	return reviewResponse{
		ID:           r.ID,
		ProjectID:    r.ProjectID,
		ClientID:     r.ClientID,
		FreelancerID: r.FreelancerID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:              c.ID,
		FullName:        c.FullName,
		Company:         c.Company,
		ProfilePhotoURL: c.ProfilePhotoURL,
	}
}

func toFreelancerSummaryResponse(s ports.FreelancerSummary) freelancerSummaryResponse {
	categories := s.Categories
	if categories == nil {
		categories = []string{}
	}
	return freelancerSummaryResponse{
		ID:              s.ID,
		FullName:        s.FullName,
		Categories:      categories,
		Skills:          s.Skills,
		ProfilePhotoURL: s.ProfilePhotoURL,
		AverageRating:   s.AverageRating,
		Links:           freelancerLinks{Self: fmt.Sprintf("/api/freelancers/%d", s.ID)},
	}
}

func toReceivedReviewResponses(views []ports.ReviewView) []receivedReviewResponse {
	out := make([]receivedReviewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, receivedReviewResponse{
			ID:         v.ID,
			ProjectID:  v.ProjectID,
			Rating:     v.Rating,
			Comment:    v.Comment,
			ClientName: v.ClientName,
		})
	}
	return out
}

func toFreelancerDetailsResponse(d *ports.FreelancerDetails) freelancerDetailsResponse {
	return freelancerDetailsResponse{
		freelancerSummaryResponse: toFreelancerSummaryResponse(d.FreelancerSummary),
		Bio:                       d.Bio,
		Whatsapp:                  d.Whatsapp,
		ContactEmail:              d.ContactEmail,
		Reviews:                   toReceivedReviewResponses(d.Reviews),
	}
}
