package domain

import "time"

// RequestStatus is the lifecycle state of an engagement request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestDeclined RequestStatus = "DECLINED"
)

// ACCEPTED and DECLINED are terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestPending: {RequestAccepted, RequestDeclined},
}

// CanTransitionTo reports whether a request may move from s to next.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Request is a client's engagement proposal targeting one freelancer.
// Salary is free text as typed by the client.
type Request struct {
	ID             int64         `json:"id" bson:"_id"`
	ClientID       int64         `json:"client_id" bson:"client_id"`
	FreelancerID   int64         `json:"freelancer_id" bson:"freelancer_id"`
	Type           string        `json:"type" bson:"type"`
	Description    string        `json:"description,omitempty" bson:"description,omitempty"`
	Duration       string        `json:"duration,omitempty" bson:"duration,omitempty"`
	Salary         string        `json:"salary,omitempty" bson:"salary,omitempty"`
	Status         RequestStatus `json:"status" bson:"status"`
	CreatedAt      time.Time     `json:"created_at" bson:"created_at"`
	IdempotencyKey string        `json:"-" bson:"idempotency_key,omitempty"`
}
