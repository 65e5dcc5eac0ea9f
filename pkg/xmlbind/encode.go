package xmlbind

import (
	"github.com/beevik/etree"

	"github.com/jacoelho/jee/errors"
)

func encodeInto[T any](s *Schema[T], v *T, el *etree.Element, st *state) {
	for i := range s.Fields {
		f := &s.Fields[i]
		switch f.Kind {
		case KindAttribute:
			val := f.normalize(f.Get(v))
			path := st.childPath("@" + f.Tag)
			if val == "" {
				if f.Occurs.Min > 0 {
					st.addf(errors.ErrRequiredAttributeMissing, path, "missing required attribute %s", f.Tag)
				}
				continue
			}
			if f.ID {
				val = st.registerID(val, path)
			}
			el.CreateAttr(f.Tag, val)
		case KindElement:
			val := f.normalize(f.Get(v))
			if val == "" {
				if f.Occurs.Min > 0 {
					st.addf(errors.ErrMissingRequiredField, st.childPath(f.Tag), "missing required field %s", f.Tag)
				}
				continue
			}
			el.CreateElement(f.Tag).SetText(val)
		case KindCharData:
			val := f.normalize(f.Get(v))
			if val == "" {
				if f.Occurs.Min > 0 {
					st.addf(errors.ErrMissingRequiredField, st.pathString(), "missing required text %s", f.Name)
				}
				continue
			}
			el.SetText(val)
		case KindRepeated:
			n := f.count(v)
			if n < f.Occurs.Min && st.strictCardinality {
				st.addf(errors.ErrMissingRequiredField, st.childPath(f.Tag),
					"field %s needs at least %d element(s), has %d", f.Tag, f.Occurs.Min, n)
			}
			if !f.Occurs.allows(n) {
				st.addf(errors.ErrUnexpectedElement, st.childPath(f.Tag),
					"field %s allows at most %d element(s), has %d", f.Tag, f.Occurs.Max, n)
			}
			f.encode(v, el, st)
		}
	}
}

func walkIDs[T any](s *Schema[T], v *T, st *state) {
	for i := range s.Fields {
		f := &s.Fields[i]
		switch {
		case f.ID:
			if id := f.normalize(f.Get(v)); id != "" {
				st.registerID(id, st.childPath("@"+f.Tag))
			}
		case f.Kind == KindRepeated:
			f.walkIDs(v, st)
		}
	}
}
