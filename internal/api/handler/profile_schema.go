package handler

// --- Requests ---

type updateClientRequest struct {
	FullName        *string `json:"full_name" validate:"omitempty,min=1,max=200"`
	Company         *string `json:"company" validate:"omitempty,max=200"`
	ProfilePhotoURL *string `json:"profile_photo_url" validate:"omitempty,url"`
}

type updateFreelancerRequest struct {
	FullName        *string  `json:"full_name" validate:"omitempty,min=1,max=200"`
	Bio             *string  `json:"bio" validate:"omitempty,max=5000"`
	Skills          *string  `json:"skills" validate:"omitempty,max=1000"`
	Categories      []string `json:"categories" validate:"omitempty,max=20,dive,max=100"`
	Whatsapp        *string  `json:"whatsapp" validate:"omitempty,max=50"`
	ContactEmail    *string  `json:"contact_email" validate:"omitempty,email"`
	ProfilePhotoURL *string  `json:"profile_photo_url" validate:"omitempty,url"`
}

// --- Responses ---

type clientResponse struct {
	ID              int64  `json:"id"`
	FullName        string `json:"full_name"`
	Company         string `json:"company,omitempty"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
}

type freelancerLinks struct {
	Self string `json:"self"`
}

// freelancerSummaryResponse is the lightweight item used in browse results.
type freelancerSummaryResponse struct {
	ID              int64           `json:"id"`
	FullName        string          `json:"full_name"`
	Categories      []string        `json:"categories"`
	Skills          string          `json:"skills,omitempty"`
	ProfilePhotoURL string          `json:"profile_photo_url,omitempty"`
	AverageRating   float64         `json:"average_rating"`
	Links           freelancerLinks `json:"_links"`
}

type receivedReviewResponse struct {
	ID         int64  `json:"id"`
	ProjectID  int64  `json:"project_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	ClientName string `json:"client_name"`
}

type freelancerDetailsResponse struct {
	freelancerSummaryResponse
	Bio          string                   `json:"bio,omitempty"`
	Whatsapp     string                   `json:"whatsapp,omitempty"`
	ContactEmail string                   `json:"contact_email,omitempty"`
	Reviews      []receivedReviewResponse `json:"reviews"`
}

type categoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
