package services

import "errors"

var (
	// ErrInFlight is returned when a mutation is requested while another is still pending.
	ErrInFlight = errors.New("request already in flight")
	// ErrNotLoaded is returned when deleting from a detail controller with no record loaded.
	ErrNotLoaded = errors.New("no record loaded")
	// ErrUnknownField is returned when a draft update names an undeclared field.
	ErrUnknownField = errors.New("unknown field")
	// ErrImmutableField is returned when an update form tries to change the identifier.
	ErrImmutableField = errors.New("identifier cannot be changed")
)

// State is the result published by a controller: exactly one of Loading,
// Success or Error. Views switch over the concrete type.
type State[T any] interface {
	state()
}

type Loading[T any] struct{}

type Success[T any] struct {
	Data T
}

// Error carries the cause for logging. Views show a generic message and a retry.
type Error[T any] struct {
	Err error
}

func (Loading[T]) state() {}
func (Success[T]) state() {}
func (Error[T]) state()   {}

// IsEmpty reports whether s is a successful load of an empty collection.
func IsEmpty[T any](s State[[]T]) bool {
	success, ok := s.(Success[[]T])
	return ok && len(success.Data) == 0
}

// MutationStatus tracks a create, update or delete request.
type MutationStatus int

const (
	MutationIdle MutationStatus = iota
	MutationPending
	MutationSucceeded
	MutationFailed
)

func (s MutationStatus) String() string {
	switch s {
	case MutationIdle:
		return "idle"
	case MutationPending:
		return "pending"
	case MutationSucceeded:
		return "succeeded"
	case MutationFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Mutation is the outcome of the most recent mutation. Err is set only when
// Status is MutationFailed.
type Mutation struct {
	Status MutationStatus
	Err    error
}

func (m Mutation) Pending() bool {
	return m.Status == MutationPending
}
