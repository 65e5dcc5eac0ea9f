package xmlbind

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

const defaultIndent = 2

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved(fallback int) int {
	if !o.set {
		return fallback
	}
	return o.value
}

// MarshalOptions configures element and document encoding.
type MarshalOptions struct {
	logger            logrus.FieldLogger
	namespace         string
	indent            intOption
	omitDeclaration   bool
	strictCardinality bool
}

// UnmarshalOptions configures element and document decoding.
type UnmarshalOptions struct {
	logger                 logrus.FieldLogger
	strictCardinality      bool
	allowUnknownAttributes bool
}

type resolvedMarshalOptions struct {
	logger            logrus.FieldLogger
	namespace         string
	indent            int
	declaration       bool
	strictCardinality bool
}

type resolvedUnmarshalOptions struct {
	logger                 logrus.FieldLogger
	strictCardinality      bool
	allowUnknownAttributes bool
}

// NewMarshalOptions returns a default, valid marshal options value.
func NewMarshalOptions() MarshalOptions {
	return MarshalOptions{}
}

// NewUnmarshalOptions returns a default, valid unmarshal options value.
func NewUnmarshalOptions() UnmarshalOptions {
	return UnmarshalOptions{}
}

// WithNamespace sets the default namespace declared on the root element.
func (o MarshalOptions) WithNamespace(ns string) MarshalOptions {
	o.namespace = ns
	return o
}

// WithIndent sets the indentation width; 0 writes the document on one line.
func (o MarshalOptions) WithIndent(spaces int) MarshalOptions {
	o.indent = intOption{value: spaces, set: true}
	return o
}

// WithXMLDeclaration controls whether the <?xml?> declaration is written.
func (o MarshalOptions) WithXMLDeclaration(value bool) MarshalOptions {
	o.omitDeclaration = !value
	return o
}

// WithStrictCardinality makes repeated fields below their minimum an error.
func (o MarshalOptions) WithStrictCardinality(value bool) MarshalOptions {
	o.strictCardinality = value
	return o
}

// WithLogger sets the logger (nil uses the logrus standard logger).
func (o MarshalOptions) WithLogger(l logrus.FieldLogger) MarshalOptions {
	o.logger = l
	return o
}

// Namespace returns the configured default namespace.
func (o MarshalOptions) Namespace() string {
	return o.namespace
}

// Validate validates marshal options values.
func (o MarshalOptions) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithStrictCardinality makes repeated fields below their minimum an error.
func (o UnmarshalOptions) WithStrictCardinality(value bool) UnmarshalOptions {
	o.strictCardinality = value
	return o
}

// WithAllowUnknownAttributes skips undeclared attributes instead of reporting them.
func (o UnmarshalOptions) WithAllowUnknownAttributes(value bool) UnmarshalOptions {
	o.allowUnknownAttributes = value
	return o
}

// WithLogger sets the logger (nil uses the logrus standard logger).
func (o UnmarshalOptions) WithLogger(l logrus.FieldLogger) UnmarshalOptions {
	o.logger = l
	return o
}

// Validate validates unmarshal options values.
func (o UnmarshalOptions) Validate() error {
	_, err := o.withDefaults()
	return err
}

func (o MarshalOptions) withDefaults() (resolvedMarshalOptions, error) {
	indent := o.indent.resolved(defaultIndent)
	if indent < 0 {
		return resolvedMarshalOptions{}, fmt.Errorf("indent must be >= 0")
	}
	return resolvedMarshalOptions{
		logger:            loggerOrDefault(o.logger),
		namespace:         o.namespace,
		indent:            indent,
		declaration:       !o.omitDeclaration,
		strictCardinality: o.strictCardinality,
	}, nil
}

func (o UnmarshalOptions) withDefaults() (resolvedUnmarshalOptions, error) {
	return resolvedUnmarshalOptions{
		logger:                 loggerOrDefault(o.logger),
		strictCardinality:      o.strictCardinality,
		allowUnknownAttributes: o.allowUnknownAttributes,
	}, nil
}

func loggerOrDefault(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}
