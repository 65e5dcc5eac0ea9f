// Package xmlbind reads and writes descriptor elements through explicit
// mapping tables instead of struct tags or reflection.
//
// A Schema lists the fields of one XML complex type in declaration order.
// Each Field names its tag, its kind (attribute, child element, character
// data or repeated nested element), its cardinality and its whitespace
// rule. Encoding emits fields in table order; decoding enforces the same
// order except for fields flagged as extensions.
//
// ID attributes are collapsed, checked against the xs:ID lexical space and
// registered in an IDRegistry that spans one document.
package xmlbind
