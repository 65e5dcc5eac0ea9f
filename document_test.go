package jee_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacoelho/jee"
	"github.com/jacoelho/jee/errors"
	"github.com/jacoelho/jee/pkg/xmlbind"
	"github.com/jacoelho/jee/wls"
)

func compact() xmlbind.MarshalOptions {
	return xmlbind.NewMarshalOptions().WithIndent(0).WithXMLDeclaration(false)
}

func sampleDocument() *jee.Document {
	ref := jee.NewPersistenceUnitRef("orders", "ordersPU").WithInjectionTarget("a.B", "em")
	ref.ID = "a"
	plugin := wls.NewSecurityPlugin("com.acme.Plugin", "acme")
	plugin.ID = "b"

	d := &jee.Document{Root: "descriptors"}
	d.Add(ref, plugin)
	return d
}

func TestMarshalDocumentDefaultNamespace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jee.MarshalDocument(&buf, sampleDocument(), compact()))

	want := `<descriptors xmlns="http://java.sun.com/xml/ns/javaee">` +
		`<persistence-unit-ref id="a"><persistence-unit-ref-name>orders</persistence-unit-ref-name>` +
		`<persistence-unit-name>ordersPU</persistence-unit-name>` +
		`<injection-target><injection-target-class>a.B</injection-target-class>` +
		`<injection-target-name>em</injection-target-name></injection-target></persistence-unit-ref>` +
		`<security-plugin id="b"><plugin-class>com.acme.Plugin</plugin-class><key>acme</key></security-plugin>` +
		`</descriptors>`
	assert.Equal(t, want, buf.String())
}

func TestMarshalDocumentKeepsOwnNamespace(t *testing.T) {
	d := sampleDocument()
	d.Namespace = "http://xmlns.oracle.com/weblogic"

	var buf bytes.Buffer
	require.NoError(t, jee.MarshalDocument(&buf, d, compact().WithNamespace("urn:ignored")))
	assert.True(t, strings.HasPrefix(buf.String(), `<descriptors xmlns="http://xmlns.oracle.com/weblogic">`))
}

func TestMarshalDocumentNil(t *testing.T) {
	assert.Error(t, jee.MarshalDocument(&bytes.Buffer{}, nil, compact()))
}

func TestMarshalDocumentDuplicateIDAcrossKinds(t *testing.T) {
	d := sampleDocument()
	d.Elements[1].(*wls.SecurityPlugin).ID = "a"

	var buf bytes.Buffer
	err := jee.MarshalDocument(&buf, d, compact())
	list, ok := errors.AsValidations(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, string(errors.ErrDuplicateID), list[0].Code)
	assert.Equal(t, "/descriptors/security-plugin[2]/@id", list[0].Path)
	assert.Zero(t, buf.Len())
}

func TestDocumentValidateIDs(t *testing.T) {
	d := sampleDocument()
	require.NoError(t, d.ValidateIDs())

	d.Elements[1].(*wls.SecurityPlugin).ID = " a "
	assert.True(t, errors.HasCode(d.ValidateIDs(), errors.ErrDuplicateID))

	d.Elements[1].(*wls.SecurityPlugin).ID = "1b"
	assert.True(t, errors.HasCode(d.ValidateIDs(), errors.ErrMalformedID))
}

func TestDocumentRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jee.MarshalDocument(&buf, sampleDocument(), xmlbind.NewMarshalOptions()))

	d, err := jee.UnmarshalDocument(&buf, xmlbind.NewUnmarshalOptions(), jee.PersistenceUnitRefKind, wls.SecurityPluginKind)
	require.NoError(t, err)
	assert.Equal(t, "descriptors", d.Root)
	assert.Equal(t, jee.DefaultNamespace, d.Namespace)
	require.Len(t, d.Elements, 2)

	ref, ok := d.Elements[0].(*jee.PersistenceUnitRef)
	require.True(t, ok)
	assert.Equal(t, "orders", ref.RefName)
	assert.Equal(t, "a", ref.ID)
	assert.Equal(t, []jee.InjectionTarget{{Class: "a.B", Name: "em"}}, ref.InjectionTargets().Slice())

	plugin, ok := d.Elements[1].(*wls.SecurityPlugin)
	require.True(t, ok)
	assert.Equal(t, *wls.NewSecurityPlugin("com.acme.Plugin", "acme"), wls.SecurityPlugin{PluginClass: plugin.PluginClass, Key: plugin.Key})
	assert.Equal(t, "b", plugin.ID)
}

func TestUnmarshalDocumentBareElement(t *testing.T) {
	doc := `<security-plugin><plugin-class>c</plugin-class><key>k</key></security-plugin>`
	d, err := jee.UnmarshalDocument(strings.NewReader(doc), xmlbind.NewUnmarshalOptions(), jee.PersistenceUnitRefKind, wls.SecurityPluginKind)
	require.NoError(t, err)
	assert.Empty(t, d.Root)
	require.Len(t, d.Elements, 1)
	assert.Equal(t, "SecurityPlugin{pluginClass='c', key='k'}", d.Elements[0].(*wls.SecurityPlugin).String())
}

func TestUnmarshalDocumentUnknownKind(t *testing.T) {
	doc := `<descriptors>
  <persistence-unit-ref><persistence-unit-ref-name>x</persistence-unit-ref-name></persistence-unit-ref>
  <security-plugin><plugin-class>c</plugin-class><key>k</key></security-plugin>
</descriptors>`
	d, err := jee.UnmarshalDocument(strings.NewReader(doc), xmlbind.NewUnmarshalOptions(), jee.PersistenceUnitRefKind)
	assert.True(t, errors.HasCode(err, errors.ErrUnexpectedElement))
	require.Len(t, d.Elements, 1)
	assert.Equal(t, "x", d.Elements[0].(*jee.PersistenceUnitRef).Name())
}

func TestUnmarshalDocumentStrictCardinality(t *testing.T) {
	doc := `<descriptors><persistence-unit-ref><persistence-unit-ref-name>x</persistence-unit-ref-name></persistence-unit-ref></descriptors>`
	_, err := jee.UnmarshalDocument(strings.NewReader(doc), xmlbind.NewUnmarshalOptions(), jee.PersistenceUnitRefKind)
	require.NoError(t, err)

	_, err = jee.UnmarshalDocument(strings.NewReader(doc), xmlbind.NewUnmarshalOptions().WithStrictCardinality(true), jee.PersistenceUnitRefKind)
	list, ok := errors.AsValidations(err)
	require.True(t, ok)
	assert.Equal(t, "/descriptors/persistence-unit-ref[1]/injection-target", list[0].Path)
}

func TestReferenceInterfaces(t *testing.T) {
	var r jee.PersistenceReference = jee.NewPersistenceUnitRef("orders", "ordersPU")
	assert.Equal(t, "ordersPU", r.Type())
	r.SetName("java:module/orders")
	assert.Equal(t, "java:module/orders", r.Key())
	assert.Equal(t, "java:comp/env/a.B/em", jee.DefaultRefName("a.B", "em"))
}
