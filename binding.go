package jee

import (
	"io"

	"github.com/jacoelho/jee/pkg/xmlbind"
)

// Element is a descriptor element that can cross the XML boundary.
type Element interface {
	XMLBinding() xmlbind.Codec
}

// Marshal writes e as a standalone XML document.
func Marshal(w io.Writer, e Element, opts xmlbind.MarshalOptions) error {
	return xmlbind.Marshal(w, e.XMLBinding(), opts)
}

// Unmarshal reads a standalone XML document into e.
func Unmarshal(r io.Reader, e Element, opts xmlbind.UnmarshalOptions) error {
	return xmlbind.Unmarshal(r, e.XMLBinding(), opts)
}

var descriptionSchema = xmlbind.MustSchema("description",
	xmlbind.Attr("Lang", "xml:lang", xmlbind.Optional,
		func(t *Text) string { return t.Lang },
		func(t *Text, v string) { t.Lang = v }).WithWhitespace(xmlbind.Collapse),
	xmlbind.CharData("Value", xmlbind.Optional,
		func(t *Text) string { return t.Value },
		func(t *Text, v string) { t.Value = v }),
)

var injectionTargetSchema = xmlbind.MustSchema("injection-target",
	xmlbind.Elem("Class", "injection-target-class", xmlbind.Required,
		func(t *InjectionTarget) string { return t.Class },
		func(t *InjectionTarget, v string) { t.Class = v }).WithWhitespace(xmlbind.Collapse),
	xmlbind.Elem("Name", "injection-target-name", xmlbind.Required,
		func(t *InjectionTarget) string { return t.Name },
		func(t *InjectionTarget, v string) { t.Name = v }).WithWhitespace(xmlbind.Collapse),
)

var persistenceUnitRefSchema = xmlbind.MustSchema("persistence-unit-ref",
	xmlbind.Repeated("Descriptions", xmlbind.ZeroOrMore, descriptionSchema,
		(*PersistenceUnitRef).Descriptions,
		func(r *PersistenceUnitRef, t Text) { r.descriptions.Put(t) }),
	xmlbind.Elem("RefName", "persistence-unit-ref-name", xmlbind.Required,
		func(r *PersistenceUnitRef) string { return r.RefName },
		func(r *PersistenceUnitRef, v string) { r.RefName = v }),
	xmlbind.Elem("UnitName", "persistence-unit-name", xmlbind.Optional,
		func(r *PersistenceUnitRef) string { return r.UnitName },
		func(r *PersistenceUnitRef, v string) { r.UnitName = v }),
	xmlbind.Elem("MappedName", "mapped-name", xmlbind.Optional,
		func(r *PersistenceUnitRef) string { return r.MappedName },
		func(r *PersistenceUnitRef, v string) { r.MappedName = v }),
	xmlbind.Elem("LookupName", "lookup-name", xmlbind.Optional,
		func(r *PersistenceUnitRef) string { return r.LookupName },
		func(r *PersistenceUnitRef, v string) { r.LookupName = v }).AsExtension(),
	xmlbind.Repeated("InjectionTargets", xmlbind.OneOrMore, injectionTargetSchema,
		func(r *PersistenceUnitRef) []InjectionTarget { return r.InjectionTargets().Slice() },
		func(r *PersistenceUnitRef, t InjectionTarget) { r.InjectionTargets().Add(t) }),
	xmlbind.IDAttr("id",
		func(r *PersistenceUnitRef) string { return r.ID },
		func(r *PersistenceUnitRef, v string) { r.ID = v }),
)

// PersistenceUnitRefSchema returns the mapping table of persistence-unit-ref.
func PersistenceUnitRefSchema() *xmlbind.Schema[PersistenceUnitRef] {
	return persistenceUnitRefSchema
}
