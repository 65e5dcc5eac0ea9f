package xmlbind

import (
	"github.com/jacoelho/jee/errors"
	"github.com/jacoelho/jee/internal/value"
)

// IDRegistry records the ids declared in one document.
// The zero value is ready to use.
type IDRegistry struct {
	seen map[string]string
}

// NewIDRegistry returns an empty registry.
func NewIDRegistry() *IDRegistry {
	return &IDRegistry{}
}

// Register collapses raw, checks it against the xs:ID lexical space and
// records it under path. It returns the collapsed id. A malformed or
// duplicate id is reported as a *errors.Validation.
func (r *IDRegistry) Register(raw, path string) (string, error) {
	id := value.CollapseWhitespace(raw)
	if err := value.ValidateNCName(id); err != nil {
		v := errors.NewValidationf(errors.ErrMalformedID, path, "malformed id: %v", err)
		v.Actual = raw
		return id, &v
	}
	if first, dup := r.seen[id]; dup {
		v := errors.NewValidationf(errors.ErrDuplicateID, path, "duplicate id %q", id)
		if first != "" {
			v.Expected = []string{"unique id, first declared at " + first}
		}
		return id, &v
	}
	if r.seen == nil {
		r.seen = make(map[string]string)
	}
	r.seen[id] = path
	return id, nil
}

// Lookup returns the path that declared id.
func (r *IDRegistry) Lookup(id string) (string, bool) {
	path, ok := r.seen[id]
	return path, ok
}

// Len reports the number of registered ids.
func (r *IDRegistry) Len() int {
	return len(r.seen)
}
