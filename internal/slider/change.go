package slider

import "github.com/aalvaropc/multirange/internal/domain"

// ChangeKind tells what happened to the interval carried by a Change.
type ChangeKind int

const (
	ChangeCreated ChangeKind = iota
	ChangeUpdated
	ChangeDeleted
	ChangeReplaced
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeCreated:
		return "created"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	case ChangeReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Change is the per-interval notification payload. Interval is in base units;
// the accessors pull transformed views lazily from the owning store.
type Change struct {
	Kind     ChangeKind
	Interval domain.Interval

	store *Store
}

// Transformed returns the changed interval in transformed units.
func (c Change) Transformed() domain.Interval {
	return c.store.tr.TransformInterval(c.Interval)
}

// TransformedAll returns the current working set in transformed units.
func (c Change) TransformedAll() []domain.Interval {
	return c.store.All(ViewWorking)
}

// TransformedOne looks up a working interval in transformed units.
func (c Change) TransformedOne(id string) (domain.Interval, bool) {
	return c.store.One(id, ViewWorking)
}

// Transform converts an arbitrary base interval.
func (c Change) Transform(iv domain.Interval) domain.Interval {
	return c.store.tr.TransformInterval(iv)
}
