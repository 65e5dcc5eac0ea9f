package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a binding or document validation failure.
// Codes borrowed from XML Schema use the W3C constraint names.
// See: https://www.w3.org/TR/xmlschema-1/#outcomes
type ErrorCode string

const (
	// ErrNoRoot indicates the XML document has no root element.
	ErrNoRoot ErrorCode = "xml-no-root"
	// ErrXMLParse indicates the XML document could not be parsed.
	ErrXMLParse ErrorCode = "xml-parse-error"
	// ErrRootMismatch indicates the root element is not the expected descriptor element.
	ErrRootMismatch ErrorCode = "xml-root-mismatch"

	// ErrMissingRequiredField indicates a required child element was absent.
	ErrMissingRequiredField ErrorCode = "cvc-complex-type.2.4.b"
	// ErrRequiredAttributeMissing indicates a required attribute was absent.
	ErrRequiredAttributeMissing ErrorCode = "cvc-complex-type.4"
	// ErrTextInElementOnly indicates text appeared in element-only content.
	ErrTextInElementOnly ErrorCode = "cvc-complex-type.2.3"
	// ErrContentModelInvalid indicates children appear out of the declared sequence.
	ErrContentModelInvalid ErrorCode = "cvc-complex-type.2.4"
	// ErrUnexpectedElement indicates an undeclared or surplus child element.
	ErrUnexpectedElement ErrorCode = "cvc-complex-type.2.4.d"
	// ErrAttributeNotDeclared indicates an attribute is not declared.
	ErrAttributeNotDeclared ErrorCode = "cvc-complex-type.3.2.1"

	// ErrDuplicateID indicates two elements of one document share an id.
	ErrDuplicateID ErrorCode = "cvc-id.2"
	// ErrMalformedID indicates an id is not an NCName after whitespace collapsing.
	ErrMalformedID ErrorCode = "cvc-datatype-valid.id"
)

// Validation describes a binding error with a code, a message and an
// optional element path.
//
//nolint:errname // public API name uses XSD domain term.
type Validation struct {
	Code     string
	Message  string
	Path     string
	Actual   string
	Expected []string
}

// ValidationList is an error that wraps one or more validation errors.
type ValidationList []Validation //nolint:errname // public API name, keep for compatibility.

// Error returns a compact summary of the validation errors.
func (v ValidationList) Error() string {
	switch len(v) {
	case 0:
		return "no validation errors"
	case 1:
		return v[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", v[0].Error(), len(v)-1)
	}
}

// Error formats the validation for display, including code, message, and context.
func (v *Validation) Error() string {
	if v == nil {
		return "validation <nil>"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", v.Code, v.Message)
	if v.Path != "" {
		fmt.Fprintf(&b, " at %s", v.Path)
	}
	if len(v.Expected) > 0 {
		fmt.Fprintf(&b, " (expected: %s)", strings.Join(v.Expected, ", "))
	}
	if v.Actual != "" {
		fmt.Fprintf(&b, " (actual: %s)", v.Actual)
	}
	return b.String()
}

// NewValidation builds a Validation with a code, message, and optional path.
func NewValidation(code ErrorCode, msg, path string) Validation {
	return Validation{Code: string(code), Message: msg, Path: path}
}

// NewValidationf formats a message and builds a Validation.
func NewValidationf(code ErrorCode, path, format string, args ...any) Validation {
	return NewValidation(code, fmt.Sprintf(format, args...), path)
}

// AsValidations extracts validation errors from an error returned by the binding helpers.
func AsValidations(err error) ([]Validation, bool) {
	list, ok := asValidationList(err)
	if !ok {
		return nil, false
	}
	return []Validation(list), true
}

// HasCode reports whether err carries a validation with the given code.
func HasCode(err error, code ErrorCode) bool {
	list, ok := asValidationList(err)
	if !ok {
		return false
	}
	for _, v := range list {
		if v.Code == string(code) {
			return true
		}
	}
	return false
}

func asValidationList(err error) (ValidationList, bool) {
	if err == nil {
		return nil, false
	}
	var list ValidationList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *ValidationList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	var single *Validation
	if errors.As(err, &single) && single != nil {
		return ValidationList{*single}, true
	}

	return nil, false
}
