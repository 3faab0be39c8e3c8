package pages

import "context"

// Editor adds an edit mode to a Resource. The draft lives beside the loaded
// data so a failed save never touches what the server last returned.
type Editor[T any] struct {
	Resource[T]
	EditMode bool
	Draft    T
}

// Edit copies the loaded data into the draft. It is a no-op until the data is
// ready.
func (e *Editor[T]) Edit() bool {
	if !e.IsReady() {
		return false
	}
	e.Draft = e.Data
	e.EditMode = true
	return true
}

func (e *Editor[T]) Cancel() {
	var zero T
	e.Draft = zero
	e.EditMode = false
}

// Save sends draft through write. On success the server's answer replaces the
// data and edit mode ends; on failure the draft is kept for another attempt.
func (e *Editor[T]) Save(ctx context.Context, draft T, write func(context.Context, T) (T, error)) error {
	e.Draft = draft
	saved, err := write(ctx, draft)
	if err != nil {
		e.EditMode = true
		return err
	}

	e.Set(saved)
	e.Cancel()
	return nil
}

// Reject keeps draft in edit mode without calling anything, for input that
// never left the portal.
func (e *Editor[T]) Reject(draft T) {
	e.Draft = draft
	e.EditMode = true
}
