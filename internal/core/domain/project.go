package domain

import "time"

// ProjectStatus is the lifecycle state of a confirmed engagement.
type ProjectStatus string

const (
	ProjectPending    ProjectStatus = "PENDING"
	ProjectInProgress ProjectStatus = "IN_PROGRESS"
	ProjectCompleted  ProjectStatus = "COMPLETED"
)

// A project starts in PENDING (direct hire) or IN_PROGRESS (accepted request).
// Both only ever move to COMPLETED.
var projectTransitions = map[ProjectStatus][]ProjectStatus{
	ProjectPending:    {ProjectCompleted},
	ProjectInProgress: {ProjectCompleted},
}

// CanTransitionTo reports whether a project may move from s to next.
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, allowed := range projectTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Completable lists the statuses CompleteProject accepts as a starting point.
func Completable() []ProjectStatus {
	return []ProjectStatus{ProjectPending, ProjectInProgress}
}

// Project is a confirmed engagement between exactly one client and one freelancer.
type Project struct {
	ID             int64         `json:"id" bson:"_id"`
	ClientID       int64         `json:"client_id" bson:"client_id"`
	FreelancerID   int64         `json:"freelancer_id" bson:"freelancer_id"`
	RequestID      int64         `json:"request_id,omitempty" bson:"request_id,omitempty"`
	Title          string        `json:"title" bson:"title"`
	Description    string        `json:"description,omitempty" bson:"description,omitempty"`
	ServiceName    string        `json:"service_name,omitempty" bson:"service_name,omitempty"`
	Duration       string        `json:"duration,omitempty" bson:"duration,omitempty"`
	Deadline       string        `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Salary         *float64      `json:"salary" bson:"salary"`
	Status         ProjectStatus `json:"status" bson:"status"`
	CreatedAt      time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at" bson:"updated_at"`
	IdempotencyKey string        `json:"-" bson:"idempotency_key,omitempty"`
}
