package xmlbind

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/jacoelho/jee/errors"
	"github.com/jacoelho/jee/internal/value"
)

func decodeFrom[T any](s *Schema[T], v *T, el *etree.Element, st *state) {
	decodeAttrs(s, v, el, st)

	counts := make([]int, len(s.Fields))
	cursor := 0
	var text strings.Builder
	for _, tok := range el.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			if s.chardata >= 0 {
				text.WriteString(t.Data)
				continue
			}
			if !value.IsXMLWhitespaceOnly(t.Data) {
				st.add(errors.Validation{
					Code:    string(errors.ErrTextInElementOnly),
					Message: "text is not allowed in element-only content",
					Path:    st.pathString(),
					Actual:  value.CollapseWhitespace(t.Data),
				})
			}
		case *etree.Element:
			idx, ok := s.elements[t.Tag]
			if !ok {
				st.add(errors.Validation{
					Code:     string(errors.ErrUnexpectedElement),
					Message:  "unexpected element " + t.Tag,
					Path:     st.childPath(t.Tag),
					Expected: s.ElementOrder(),
				})
				continue
			}
			f := &s.Fields[idx]
			if f.Extension {
				st.log.WithField("element", f.Tag).WithField("path", st.childPath(f.Tag)).
					Debug("accepting non-canonical element")
			} else {
				if idx < cursor {
					st.add(errors.Validation{
						Code:     string(errors.ErrContentModelInvalid),
						Message:  "element " + t.Tag + " is out of order",
						Path:     st.childPath(t.Tag),
						Expected: s.ElementOrder(),
					})
					continue
				}
				cursor = idx
			}
			if !f.Occurs.allows(counts[idx] + 1) {
				st.addf(errors.ErrUnexpectedElement, st.childPath(t.Tag),
					"element %s occurs more than %d time(s)", t.Tag, f.Occurs.Max)
				continue
			}
			counts[idx]++
			decodeChild(f, v, t, counts[idx], st)
		}
	}

	for i := range s.Fields {
		f := &s.Fields[i]
		switch f.Kind {
		case KindElement, KindRepeated:
			switch {
			case counts[i] < f.Occurs.Min && st.requireMin(f.Kind):
				st.addf(errors.ErrMissingRequiredField, st.childPath(f.Tag), "missing required field %s", f.Tag)
			case f.Kind == KindElement && f.Occurs.Min > 0 && f.Get(v) == "":
				st.addf(errors.ErrMissingRequiredField, st.childPath(f.Tag), "required field %s is empty", f.Tag)
			}
		case KindCharData:
			val := f.normalize(text.String())
			if val == "" && f.Occurs.Min > 0 {
				st.addf(errors.ErrMissingRequiredField, st.pathString(), "missing required text %s", f.Name)
			}
			f.Set(v, val)
		}
	}
}

func decodeChild[T any](f *Field[T], v *T, el *etree.Element, n int, st *state) {
	switch f.Kind {
	case KindElement:
		st.push(el.Tag)
		defer st.pop()
		if len(el.ChildElements()) > 0 {
			st.addf(errors.ErrContentModelInvalid, st.pathString(), "element %s has simple content", el.Tag)
			return
		}
		f.Set(v, f.normalize(simpleText(el)))
	case KindRepeated:
		st.push(indexed(el.Tag, n-1))
		defer st.pop()
		f.decode(v, el, st)
	}
}

func decodeAttrs[T any](s *Schema[T], v *T, el *etree.Element, st *state) {
	seen := make([]bool, len(s.Fields))
	for _, a := range el.Attr {
		if isNamespaceAttr(a) {
			continue
		}
		name := a.FullKey()
		idx, ok := s.attrs[name]
		if !ok {
			if !st.allowUnknownAttrs {
				st.addf(errors.ErrAttributeNotDeclared, st.childPath("@"+name), "attribute %s is not declared", name)
			}
			continue
		}
		f := &s.Fields[idx]
		val := f.normalize(a.Value)
		if f.ID {
			val = st.registerID(val, st.childPath("@"+name))
		}
		f.Set(v, val)
		seen[idx] = true
	}
	for i := range s.Fields {
		f := &s.Fields[i]
		if f.Kind == KindAttribute && f.Occurs.Min > 0 && !seen[i] {
			st.addf(errors.ErrRequiredAttributeMissing, st.childPath("@"+f.Tag), "missing required attribute %s", f.Tag)
		}
	}
}

func isNamespaceAttr(a etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns") || a.Space == "xsi"
}

func simpleText(el *etree.Element) string {
	var b strings.Builder
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return b.String()
}
