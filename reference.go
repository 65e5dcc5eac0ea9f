package jee

import "strings"

// EnvPrefix is the JNDI context that relative reference names resolve against.
const EnvPrefix = "java:comp/env/"

// Reference is an element registered in the component JNDI environment.
type Reference interface {
	Name() string
	SetName(name string)
	// Key is the fully qualified JNDI name.
	Key() string
}

// PersistenceReference is a Reference to a persistence unit or context.
type PersistenceReference interface {
	Reference
	// Type names the referenced persistence unit.
	Type() string
}

// ResolveKey qualifies a reference name with EnvPrefix. Empty names and
// names already in a java: namespace are returned unchanged.
func ResolveKey(name string) string {
	if name == "" || strings.HasPrefix(name, "java:") {
		return name
	}
	return EnvPrefix + name
}

// DefaultRefName is the reference name derived from an injection target.
func DefaultRefName(className, property string) string {
	return EnvPrefix + className + "/" + property
}
