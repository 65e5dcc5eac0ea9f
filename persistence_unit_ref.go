package jee

import (
	"fmt"
	"reflect"

	"github.com/jacoelho/jee/pkg/xmlbind"
)

// PersistenceUnitRef binds persistence-unit-refType: a reference from a
// component environment to an EntityManagerFactory.
// The zero value is an empty reference.
type PersistenceUnitRef struct {
	// RefName is persistence-unit-ref-name, required on write.
	RefName  string
	UnitName string
	// MappedName is a vendor specific resolution hint.
	MappedName string
	// LookupName is lookup-name, accepted outside the canonical schema.
	LookupName string
	ID         string

	descriptions     TextMap
	injectionTargets *InjectionTargetSet
}

var (
	_ PersistenceReference = (*PersistenceUnitRef)(nil)
	_ Element              = (*PersistenceUnitRef)(nil)
)

// NewPersistenceUnitRef returns a reference with the given names. Neither
// is validated.
func NewPersistenceUnitRef(refName, unitName string) *PersistenceUnitRef {
	return &PersistenceUnitRef{RefName: refName, UnitName: unitName}
}

// WithName sets RefName.
func (r *PersistenceUnitRef) WithName(refName string) *PersistenceUnitRef {
	r.RefName = refName
	return r
}

// WithUnit sets UnitName.
func (r *PersistenceUnitRef) WithUnit(unitName string) *PersistenceUnitRef {
	r.UnitName = unitName
	return r
}

// WithMappedName sets MappedName.
func (r *PersistenceUnitRef) WithMappedName(mappedName string) *PersistenceUnitRef {
	r.MappedName = mappedName
	return r
}

// WithLookup sets LookupName.
func (r *PersistenceUnitRef) WithLookup(lookupName string) *PersistenceUnitRef {
	r.LookupName = lookupName
	return r
}

// WithInjectionTarget adds the target className.property. When RefName is
// still empty it becomes java:comp/env/<className>/<property>; a name that
// is already set is left alone.
func (r *PersistenceUnitRef) WithInjectionTarget(className, property string) *PersistenceUnitRef {
	r.InjectionTargets().Add(InjectionTarget{Class: className, Name: property})
	if r.RefName == "" {
		r.RefName = DefaultRefName(className, property)
	}
	return r
}

// WithInjectionTargetOf is WithInjectionTarget with the class name taken
// from the dynamic type of v, as import path and type name.
func (r *PersistenceUnitRef) WithInjectionTargetOf(v any, property string) *PersistenceUnitRef {
	return r.WithInjectionTarget(typeName(v), property)
}

// InjectionTargets returns the live target set, creating it on first use.
func (r *PersistenceUnitRef) InjectionTargets() *InjectionTargetSet {
	if r.injectionTargets == nil {
		r.injectionTargets = &InjectionTargetSet{}
	}
	return r.injectionTargets
}

// Descriptions returns a copy of the descriptions.
func (r *PersistenceUnitRef) Descriptions() []Text {
	return r.descriptions.Texts()
}

// SetDescriptions replaces every description.
func (r *PersistenceUnitRef) SetDescriptions(texts []Text) {
	r.descriptions.Set(texts)
}

// Description returns the description without a locale, or the first one.
func (r *PersistenceUnitRef) Description() string {
	return r.descriptions.Get()
}

// Name returns RefName.
func (r *PersistenceUnitRef) Name() string {
	return r.RefName
}

// SetName sets RefName.
func (r *PersistenceUnitRef) SetName(name string) {
	r.RefName = name
}

// Type returns UnitName.
func (r *PersistenceUnitRef) Type() string {
	return r.UnitName
}

// Key returns the JNDI name the reference is bound under.
func (r *PersistenceUnitRef) Key() string {
	return ResolveKey(r.RefName)
}

// XMLBinding pairs the reference with its mapping table.
func (r *PersistenceUnitRef) XMLBinding() xmlbind.Codec {
	return xmlbind.Bind(persistenceUnitRefSchema, r)
}

func (r *PersistenceUnitRef) String() string {
	return fmt.Sprintf("PersistenceUnitRef{name='%s', unit='%s', mappedName='%s', lookupName='%s'}",
		r.RefName, r.UnitName, r.MappedName, r.LookupName)
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
