package xmlbind

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/jacoelho/jee/errors"
	"github.com/jacoelho/jee/internal/value"
)

// DocumentInfo describes the root of a decoded document.
type DocumentInfo struct {
	// Root is the root tag, or empty when the document is a single bare element.
	Root      string
	Namespace string
}

// Resolver returns the codec that decodes a child element with the given tag.
type Resolver func(tag string) (Codec, bool)

// Marshal writes one element as a standalone XML document.
// Nothing is written when the element fails validation.
func Marshal(w io.Writer, c Codec, opts MarshalOptions) error {
	if c == nil {
		return fmt.Errorf("marshal: nil codec")
	}
	return MarshalDocument(w, "", []Codec{c}, opts)
}

// MarshalDocument writes codecs as children of a root element. An empty
// root writes the single codec as the document element. All codecs share
// one id space.
func MarshalDocument(w io.Writer, root string, codecs []Codec, opts MarshalOptions) error {
	resolved, err := opts.withDefaults()
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}
	if root == "" && len(codecs) != 1 {
		return fmt.Errorf("marshal: a document without root needs exactly one element, got %d", len(codecs))
	}

	doc := etree.NewDocument()
	if resolved.declaration {
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	}
	st := newState(resolved.logger, resolved.strictCardinality)

	parent := &doc.Element
	if root != "" {
		parent = doc.CreateElement(root)
		declareNamespace(parent, resolved.namespace)
		st.push(root)
	}
	for i, c := range codecs {
		if c == nil {
			return fmt.Errorf("marshal: nil codec at index %d", i)
		}
		el := parent.CreateElement(c.Tag())
		if root == "" {
			declareNamespace(el, resolved.namespace)
			st.push(c.Tag())
		} else {
			st.push(indexed(c.Tag(), i))
		}
		c.encode(el, st)
		st.pop()
	}
	if err := st.err(); err != nil {
		return err
	}

	if resolved.indent > 0 {
		doc.Indent(resolved.indent)
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", docName(root, codecs), err)
	}
	resolved.logger.WithField("root", docName(root, codecs)).WithField("elements", len(codecs)).
		Debug("document written")
	return nil
}

// Unmarshal reads one element from a standalone XML document into c.
func Unmarshal(r io.Reader, c Codec, opts UnmarshalOptions) error {
	if c == nil {
		return fmt.Errorf("unmarshal: nil codec")
	}
	resolved, err := opts.withDefaults()
	if err != nil {
		return fmt.Errorf("unmarshal options: %w", err)
	}
	top, err := readRoot(r)
	if err != nil {
		return err
	}
	if top.Tag != c.Tag() {
		v := errors.NewValidationf(errors.ErrRootMismatch, "/"+top.Tag, "unexpected root element %s", top.Tag)
		v.Expected = []string{c.Tag()}
		return errors.ValidationList{v}
	}
	st := newUnmarshalState(resolved)
	st.push(top.Tag)
	c.decode(top, st)
	st.pop()
	return st.err()
}

// UnmarshalDocument reads a document and decodes each child of the root
// through the codec returned by resolve. When resolve accepts the root tag
// itself, the document is decoded as a single bare element. When root is
// not empty, the root element must carry that tag. All elements share one
// id space.
func UnmarshalDocument(r io.Reader, root string, resolve Resolver, opts UnmarshalOptions) (DocumentInfo, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return DocumentInfo{}, fmt.Errorf("unmarshal options: %w", err)
	}
	if resolve == nil {
		return DocumentInfo{}, fmt.Errorf("unmarshal: nil resolver")
	}
	top, err := readRoot(r)
	if err != nil {
		return DocumentInfo{}, err
	}

	st := newUnmarshalState(resolved)
	info := DocumentInfo{Namespace: namespaceOf(top)}

	if root == "" {
		if c, ok := resolve(top.Tag); ok {
			st.push(top.Tag)
			c.decode(top, st)
			st.pop()
			return info, st.err()
		}
	}
	if root != "" && top.Tag != root {
		v := errors.NewValidationf(errors.ErrRootMismatch, "/"+top.Tag, "unexpected root element %s", top.Tag)
		v.Expected = []string{root}
		return info, errors.ValidationList{v}
	}

	info.Root = top.Tag
	st.push(top.Tag)
	n := 0
	for _, tok := range top.Child {
		switch t := tok.(type) {
		case *etree.Element:
			c, ok := resolve(t.Tag)
			if !ok {
				st.addf(errors.ErrUnexpectedElement, st.childPath(t.Tag), "unexpected element %s", t.Tag)
				continue
			}
			st.push(indexed(t.Tag, n))
			c.decode(t, st)
			st.pop()
			n++
		case *etree.CharData:
			if !value.IsXMLWhitespaceOnly(t.Data) {
				st.addf(errors.ErrTextInElementOnly, st.pathString(), "text is not allowed in element-only content")
			}
		}
	}
	st.pop()
	resolved.logger.WithField("root", info.Root).WithField("elements", n).Debug("document read")
	return info, st.err()
}

// ValidateIDs runs the document-wide id pass over codecs without encoding them.
func ValidateIDs(codecs ...Codec) error {
	st := newState(loggerOrDefault(nil), false)
	for i, c := range codecs {
		if c == nil {
			continue
		}
		st.push(indexed(c.Tag(), i))
		c.walkIDs(st)
		st.pop()
	}
	return st.err()
}

func readRoot(r io.Reader) (*etree.Element, error) {
	if r == nil {
		return nil, errors.ValidationList{errors.NewValidation(errors.ErrXMLParse, "nil reader", "")}
	}
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, errors.ValidationList{errors.NewValidation(errors.ErrXMLParse, err.Error(), "")}
	}
	top := doc.Root()
	if top == nil {
		return nil, errors.ValidationList{errors.NewValidation(errors.ErrNoRoot, "document has no root element", "")}
	}
	return top, nil
}

func newUnmarshalState(opts resolvedUnmarshalOptions) *state {
	st := newState(opts.logger, opts.strictCardinality)
	st.allowUnknownAttrs = opts.allowUnknownAttributes
	return st
}

func declareNamespace(el *etree.Element, ns string) {
	if ns != "" {
		el.CreateAttr("xmlns", ns)
	}
}

func namespaceOf(el *etree.Element) string {
	if el.Space != "" {
		return el.SelectAttrValue("xmlns:"+el.Space, "")
	}
	return el.SelectAttrValue("xmlns", "")
}

func docName(root string, codecs []Codec) string {
	if root != "" || len(codecs) == 0 {
		return root
	}
	return codecs[0].Tag()
}
