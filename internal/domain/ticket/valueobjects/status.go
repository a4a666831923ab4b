// Package valueobjects contains the ticket status value object and its
// transition rules.
package valueobjects

import "fmt"

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusClosed:     true,
}

// statusTransitions defines the allowed caller-facing transitions.
// A ticket moves to in_progress when its owner posts a response (and stays
// there on further owner responses); closing is a staff action. closed is
// terminal.
var statusTransitions = map[Status][]Status{
	StatusOpen: {
		StatusInProgress,
		StatusClosed,
	},
	StatusInProgress: {
		StatusInProgress,
		StatusClosed,
	},
	StatusClosed: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
