package stats

import "fmt"

// InsufficientGroupsError is returned when a test cannot form enough
// groups or observations to run: an ANOVA needs at least two groups
// with two observations each, a t-test needs at least two observations.
type InsufficientGroupsError struct {
	Groups int
	Reason string
}

func (e *InsufficientGroupsError) Error() string {
	return fmt.Sprintf("insufficient groups (%d usable): %s", e.Groups, e.Reason)
}
