package valueobjects

import "fmt"

// ReviewStatus represents the moderation state of a submitted review.
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

// statusTransitions defines the moderation machine. Only pending reviews
// can be moderated; decisions are final.
var statusTransitions = map[ReviewStatus][]ReviewStatus{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {},
	StatusRejected: {},
}

func (s ReviewStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

func (s ReviewStatus) CanTransitionTo(target ReviewStatus) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

func (s ReviewStatus) IsPending() bool {
	return s == StatusPending
}

func (s ReviewStatus) IsApproved() bool {
	return s == StatusApproved
}

func (s ReviewStatus) String() string {
	return string(s)
}

func NewReviewStatus(value string) (ReviewStatus, error) {
	s := ReviewStatus(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid review status: %s", value)
	}
	return s, nil
}
