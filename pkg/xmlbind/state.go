package xmlbind

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jacoelho/jee/errors"
)

// state is the per-call context shared by encoding, decoding and id walks.
type state struct {
	log               logrus.FieldLogger
	ids               *IDRegistry
	path              []string
	errs              errors.ValidationList
	strictCardinality bool
	allowUnknownAttrs bool
}

func newState(log logrus.FieldLogger, strict bool) *state {
	return &state{
		log:               log,
		ids:               NewIDRegistry(),
		strictCardinality: strict,
	}
}

func (st *state) push(segment string) {
	st.path = append(st.path, segment)
}

func (st *state) pop() {
	st.path = st.path[:len(st.path)-1]
}

func (st *state) pathString() string {
	if len(st.path) == 0 {
		return "/"
	}
	return "/" + strings.Join(st.path, "/")
}

func (st *state) childPath(segment string) string {
	if len(st.path) == 0 {
		return "/" + segment
	}
	return st.pathString() + "/" + segment
}

func (st *state) add(v errors.Validation) {
	st.errs = append(st.errs, v)
}

func (st *state) addf(code errors.ErrorCode, path, format string, args ...any) {
	st.add(errors.NewValidationf(code, path, format, args...))
}

func (st *state) registerID(raw, path string) string {
	id, err := st.ids.Register(raw, path)
	if err != nil {
		if v, ok := err.(*errors.Validation); ok {
			st.add(*v)
		}
	}
	return id
}

func (st *state) err() error {
	if len(st.errs) == 0 {
		return nil
	}
	return st.errs
}

// requireMin reports whether a repeated field below its minimum is an error.
func (st *state) requireMin(kind Kind) bool {
	return kind != KindRepeated || st.strictCardinality
}
