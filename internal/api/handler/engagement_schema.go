package handler

import "time"

// --- Requests ---

type createRequestRequest struct {
	FreelancerID int64  `json:"freelancer_id" validate:"required,gt=0"`
	Type         string `json:"type" validate:"required,max=200"`
	Description  string `json:"description" validate:"max=5000"`
	Duration     string `json:"duration" validate:"max=200"`
	Salary       string `json:"salary" validate:"max=100"`
}

type hireRequest struct {
	FreelancerID int64    `json:"freelancer_id" validate:"required,gt=0"`
	Title        string   `json:"title" validate:"required,max=200"`
	Description  string   `json:"description" validate:"max=5000"`
	ServiceName  string   `json:"service_name" validate:"max=200"`
	Duration     string   `json:"duration" validate:"max=200"`
	Deadline     string   `json:"deadline" validate:"max=100"`
	Salary       *float64 `json:"salary" validate:"omitempty,gte=0"`
}

// completeProjectRequest is optional; an empty body completes without review.
type completeProjectRequest struct {
	Rating  *int   `json:"rating"`
	Comment string `json:"comment" validate:"max=2000"`
}

type addReviewRequest struct {
	ProjectID int64  `json:"project_id" validate:"required,gt=0"`
	Rating    *int   `json:"rating"`
	Comment   string `json:"comment" validate:"max=2000"`
}

// --- Responses ---

type requestLinks struct {
	Accept  string `json:"accept,omitempty"`
	Decline string `json:"decline,omitempty"`
}

type requestResponse struct {
	ID             int64        `json:"id"`
	ClientID       int64        `json:"client_id"`
	ClientName     string       `json:"client_name"`
	FreelancerID   int64        `json:"freelancer_id"`
	FreelancerName string       `json:"freelancer_name"`
	Type           string       `json:"type"`
	Description    string       `json:"description,omitempty"`
	Duration       string       `json:"duration,omitempty"`
	Salary         string       `json:"salary,omitempty"`
	Status         string       `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	Links          requestLinks `json:"_links"`
}

type projectLinks struct {
	Complete string `json:"complete,omitempty"`
}

type projectResponse struct {
	ID           int64        `json:"id"`
	ClientID     int64        `json:"client_id"`
	FreelancerID int64        `json:"freelancer_id"`
	RequestID    *int64       `json:"request_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	ServiceName  string       `json:"service_name,omitempty"`
	Duration     string       `json:"duration,omitempty"`
	Deadline     string       `json:"deadline,omitempty"`
	Salary       *float64     `json:"salary"`
	Status       string       `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Links        projectLinks `json:"_links"`
}

type reviewResponse struct {
	ID           int64     `json:"id"`
	ProjectID    int64     `json:"project_id"`
	ClientID     int64     `json:"client_id"`
	FreelancerID int64     `json:"freelancer_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type acceptResponse struct {
	Request requestResponse `json:"request"`
	Project projectResponse `json:"project"`
}

type completionResponse struct {
	Project projectResponse `json:"project"`
	Review  *reviewResponse `json:"review,omitempty"`
}
