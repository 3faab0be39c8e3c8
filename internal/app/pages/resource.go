package pages

import "context"

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "idle"
	}
}

// Resource is the remote data a page displays. Data is only meaningful when
// the status is ready; Failure only when it is error.
type Resource[T any] struct {
	Status  Status
	Data    T
	Failure string
}

func (r *Resource[T]) IsIdle() bool    { return r.Status == StatusIdle }
func (r *Resource[T]) IsLoading() bool { return r.Status == StatusLoading }
func (r *Resource[T]) IsReady() bool   { return r.Status == StatusReady }
func (r *Resource[T]) IsError() bool   { return r.Status == StatusError }

// Load moves the resource through loading to either ready or error. The
// fallback message replaces whatever the fetch failed with.
func (r *Resource[T]) Load(ctx context.Context, fallback string, fetch func(context.Context) (T, error)) error {
	r.Status = StatusLoading
	r.Failure = ""

	data, err := fetch(ctx)
	if err != nil {
		var zero T
		r.Data = zero
		r.Status = StatusError
		r.Failure = fallback
		return err
	}

	r.Set(data)
	return nil
}

func (r *Resource[T]) Set(data T) {
	r.Data = data
	r.Status = StatusReady
	r.Failure = ""
}
