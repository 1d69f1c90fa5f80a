package domain

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusCompleted Status = "completed"
)

// transitions holds every legal (current, requested) pair. The lifecycle is
// strictly forward: pending -> preparing -> completed, no skips, no repeats.
var transitions = map[Status]Status{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusCompleted,
}

// Transition validates a requested status change and returns the new status.
// It is a pure function; the order store applies the result.
func Transition(current, requested Status) (Status, error) {
	if next, ok := transitions[current]; ok && next == requested {
		return requested, nil
	}
	return "", fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, requested)
}
