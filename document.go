package jee

import (
	"cmp"
	"fmt"
	"io"

	"github.com/jacoelho/jee/pkg/xmlbind"
)

// DefaultNamespace is the Java EE descriptor namespace written when a
// Document does not name one.
const DefaultNamespace = "http://java.sun.com/xml/ns/javaee"

// Kind tells UnmarshalDocument how to build the element for a tag.
type Kind struct {
	Tag string
	New func() Element
}

// PersistenceUnitRefKind decodes persistence-unit-ref elements.
var PersistenceUnitRefKind = Kind{
	Tag: "persistence-unit-ref",
	New: func() Element { return &PersistenceUnitRef{} },
}

// Document is an ordered group of descriptor elements that share one id
// space. An empty Root marks a document made of a single bare element.
type Document struct {
	Root      string
	Namespace string
	Elements  []Element
}

// Add appends elements.
func (d *Document) Add(elems ...Element) {
	d.Elements = append(d.Elements, elems...)
}

// ValidateIDs checks that every id is a well-formed xs:ID and that no id
// is declared twice.
func (d *Document) ValidateIDs() error {
	return xmlbind.ValidateIDs(d.codecs()...)
}

func (d *Document) codecs() []xmlbind.Codec {
	codecs := make([]xmlbind.Codec, 0, len(d.Elements))
	for _, e := range d.Elements {
		codecs = append(codecs, e.XMLBinding())
	}
	return codecs
}

// MarshalDocument writes d. The namespace defaults to DefaultNamespace.
func MarshalDocument(w io.Writer, d *Document, opts xmlbind.MarshalOptions) error {
	if d == nil {
		return fmt.Errorf("marshal document: nil document")
	}
	opts = opts.WithNamespace(cmp.Or(d.Namespace, opts.Namespace(), DefaultNamespace))
	return xmlbind.MarshalDocument(w, d.Root, d.codecs(), opts)
}

// UnmarshalDocument reads a document whose children, or whose root
// element itself, are one of kinds. The returned document holds every
// element that could be decoded, even when err reports validations.
func UnmarshalDocument(r io.Reader, opts xmlbind.UnmarshalOptions, kinds ...Kind) (*Document, error) {
	byTag := make(map[string]Kind, len(kinds))
	for _, k := range kinds {
		byTag[k.Tag] = k
	}
	d := &Document{}
	info, err := xmlbind.UnmarshalDocument(r, "", func(tag string) (xmlbind.Codec, bool) {
		k, ok := byTag[tag]
		if !ok {
			return nil, false
		}
		e := k.New()
		d.Elements = append(d.Elements, e)
		return e.XMLBinding(), true
	}, opts)
	d.Root = info.Root
	d.Namespace = info.Namespace
	return d, err
}
