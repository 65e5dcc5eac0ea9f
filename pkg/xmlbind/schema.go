package xmlbind

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/jacoelho/jee/internal/value"
)

// Kind selects how a field maps onto XML.
type Kind uint8

const (
	// KindAttribute binds a string attribute of the element.
	KindAttribute Kind = iota
	// KindElement binds a child element with simple content.
	KindElement
	// KindCharData binds the character data of the element itself.
	KindCharData
	// KindRepeated binds child elements with their own schema.
	KindRepeated
)

func (k Kind) String() string {
	switch k {
	case KindAttribute:
		return "attribute"
	case KindElement:
		return "element"
	case KindCharData:
		return "chardata"
	case KindRepeated:
		return "repeated"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Whitespace is the normalization applied to a field value on read and write.
type Whitespace = value.WhitespaceMode

const (
	// Preserve keeps values as written.
	Preserve = value.WhitespacePreserve
	// Replace maps tab, CR and LF to a space.
	Replace = value.WhitespaceReplace
	// Collapse applies the xs:token rule.
	Collapse = value.WhitespaceCollapse
)

// Unbounded marks a field without an upper occurrence limit.
const Unbounded = -1

// Occurs is the cardinality of a field.
type Occurs struct {
	Min int
	Max int
}

var (
	// Optional is 0..1.
	Optional = Occurs{Min: 0, Max: 1}
	// Required is exactly 1.
	Required = Occurs{Min: 1, Max: 1}
	// ZeroOrMore is 0..n.
	ZeroOrMore = Occurs{Min: 0, Max: Unbounded}
	// OneOrMore is 1..n.
	OneOrMore = Occurs{Min: 1, Max: Unbounded}
)

func (o Occurs) String() string {
	if o.Max == Unbounded {
		return fmt.Sprintf("%d..n", o.Min)
	}
	return fmt.Sprintf("%d..%d", o.Min, o.Max)
}

func (o Occurs) allows(n int) bool {
	return o.Max == Unbounded || n <= o.Max
}

// Field is one row of a mapping table.
type Field[T any] struct {
	Name       string
	Tag        string
	Kind       Kind
	Occurs     Occurs
	Whitespace Whitespace
	// ID marks an attribute typed xs:ID.
	ID bool
	// Extension marks a field outside the canonical schema. It is written in
	// table order but accepted anywhere on read.
	Extension bool

	Get func(*T) string
	Set func(*T, string)

	count   func(*T) int
	encode  func(*T, *etree.Element, *state)
	decode  func(*T, *etree.Element, *state)
	walkIDs func(*T, *state)
}

// Attr maps an attribute. Tags may carry a prefix such as "xml:lang".
func Attr[T any](name, tag string, occurs Occurs, get func(*T) string, set func(*T, string)) Field[T] {
	return Field[T]{Name: name, Tag: tag, Kind: KindAttribute, Occurs: occurs, Get: get, Set: set}
}

// IDAttr maps a collapsed optional attribute typed xs:ID.
func IDAttr[T any](tag string, get func(*T) string, set func(*T, string)) Field[T] {
	f := Attr(tag, tag, Optional, get, set)
	f.Whitespace = Collapse
	f.ID = true
	return f
}

// Elem maps a child element with simple content.
func Elem[T any](name, tag string, occurs Occurs, get func(*T) string, set func(*T, string)) Field[T] {
	return Field[T]{Name: name, Tag: tag, Kind: KindElement, Occurs: occurs, Get: get, Set: set}
}

// CharData maps the text content of the element.
func CharData[T any](name string, occurs Occurs, get func(*T) string, set func(*T, string)) Field[T] {
	return Field[T]{Name: name, Kind: KindCharData, Occurs: occurs, Get: get, Set: set}
}

// Repeated maps child elements described by the child schema. items returns
// the current children in emission order; add stores one decoded child.
func Repeated[T, C any](name string, occurs Occurs, child *Schema[C], items func(*T) []C, add func(*T, C)) Field[T] {
	return Field[T]{
		Name:   name,
		Tag:    child.Tag,
		Kind:   KindRepeated,
		Occurs: occurs,
		count: func(v *T) int {
			return len(items(v))
		},
		encode: func(v *T, parent *etree.Element, st *state) {
			for i, item := range items(v) {
				el := parent.CreateElement(child.Tag)
				st.push(indexed(child.Tag, i))
				encodeInto(child, &item, el, st)
				st.pop()
			}
		},
		decode: func(v *T, el *etree.Element, st *state) {
			var item C
			decodeFrom(child, &item, el, st)
			add(v, item)
		},
		walkIDs: func(v *T, st *state) {
			for i, item := range items(v) {
				st.push(indexed(child.Tag, i))
				walkIDs(child, &item, st)
				st.pop()
			}
		},
	}
}

// WithWhitespace returns a copy of f using the whitespace mode.
func (f Field[T]) WithWhitespace(ws Whitespace) Field[T] {
	f.Whitespace = ws
	return f
}

// AsExtension returns a copy of f flagged as a non-canonical extension.
func (f Field[T]) AsExtension() Field[T] {
	f.Extension = true
	return f
}

func (f *Field[T]) normalize(s string) string {
	return value.NormalizeWhitespace(f.Whitespace, s)
}

// Schema is the mapping table of one XML complex type.
type Schema[T any] struct {
	Tag    string
	Fields []Field[T]

	elements map[string]int
	attrs    map[string]int
	chardata int
}

// NewSchema builds a mapping table and checks that it is consistent.
func NewSchema[T any](tag string, fields ...Field[T]) (*Schema[T], error) {
	if tag == "" {
		return nil, fmt.Errorf("schema: empty tag")
	}
	s := &Schema[T]{
		Tag:      tag,
		Fields:   fields,
		elements: make(map[string]int),
		attrs:    make(map[string]int),
		chardata: -1,
	}
	for i := range s.Fields {
		f := &s.Fields[i]
		if err := s.index(i, f); err != nil {
			return nil, fmt.Errorf("schema %s: field %s: %w", tag, f.Name, err)
		}
	}
	if s.chardata >= 0 && len(s.elements) > 0 {
		return nil, fmt.Errorf("schema %s: character data cannot be mixed with child elements", tag)
	}
	return s, nil
}

// MustSchema is like NewSchema but panics on an inconsistent table.
func MustSchema[T any](tag string, fields ...Field[T]) *Schema[T] {
	s, err := NewSchema(tag, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema[T]) index(i int, f *Field[T]) error {
	if f.Occurs.Min < 0 || (f.Occurs.Max != Unbounded && f.Occurs.Max < f.Occurs.Min) {
		return fmt.Errorf("invalid occurrence %s", f.Occurs)
	}
	if f.ID && f.Kind != KindAttribute {
		return fmt.Errorf("id flag requires an attribute")
	}
	switch f.Kind {
	case KindAttribute, KindElement, KindCharData:
		if f.Get == nil || f.Set == nil {
			return fmt.Errorf("missing accessors")
		}
		if f.Occurs.Max != 1 {
			return fmt.Errorf("%s fields hold at most one value", f.Kind)
		}
	case KindRepeated:
		if f.encode == nil || f.decode == nil {
			return fmt.Errorf("repeated fields must be built with Repeated")
		}
	default:
		return fmt.Errorf("unknown kind %s", f.Kind)
	}
	switch f.Kind {
	case KindAttribute:
		if f.Tag == "" {
			return fmt.Errorf("empty tag")
		}
		if _, dup := s.attrs[f.Tag]; dup {
			return fmt.Errorf("duplicate attribute %s", f.Tag)
		}
		s.attrs[f.Tag] = i
	case KindCharData:
		if s.chardata >= 0 {
			return fmt.Errorf("more than one character data field")
		}
		s.chardata = i
	default:
		if f.Tag == "" {
			return fmt.Errorf("empty tag")
		}
		if _, dup := s.elements[f.Tag]; dup {
			return fmt.Errorf("duplicate element %s", f.Tag)
		}
		s.elements[f.Tag] = i
	}
	return nil
}

// ElementOrder returns the child element tags in emission order.
func (s *Schema[T]) ElementOrder() []string {
	var tags []string
	for i := range s.Fields {
		switch s.Fields[i].Kind {
		case KindElement, KindRepeated:
			tags = append(tags, s.Fields[i].Tag)
		}
	}
	return tags
}

// Bind pairs a schema with a value so the pair can travel as a Codec.
func Bind[T any](s *Schema[T], v *T) Codec {
	return bound[T]{schema: s, v: v}
}

// Codec is a schema bound to a value. Codecs are created with Bind.
type Codec interface {
	Tag() string
	encode(el *etree.Element, st *state)
	decode(el *etree.Element, st *state)
	walkIDs(st *state)
}

type bound[T any] struct {
	schema *Schema[T]
	v      *T
}

func (b bound[T]) Tag() string { return b.schema.Tag }

func (b bound[T]) encode(el *etree.Element, st *state) { encodeInto(b.schema, b.v, el, st) }

func (b bound[T]) decode(el *etree.Element, st *state) { decodeFrom(b.schema, b.v, el, st) }

func (b bound[T]) walkIDs(st *state) { walkIDs(b.schema, b.v, st) }

func indexed(tag string, i int) string {
	return fmt.Sprintf("%s[%d]", tag, i+1)
}
