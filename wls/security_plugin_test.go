package wls_test

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

func TestSecurityPluginElementOrder(t *testing.T) {
	p := &wls.SecurityPlugin{PluginClass: "com.x.Plugin", Key: "k"}

	var buf bytes.Buffer
	require.NoError(t, jee.Marshal(&buf, p, compact()))
	assert.Equal(t, "<security-plugin><plugin-class>com.x.Plugin</plugin-class><key>k</key></security-plugin>", buf.String())
}

func TestSecurityPluginWithID(t *testing.T) {
	p := wls.NewSecurityPlugin("com.x.Plugin", "k")
	p.ID = "  plugin-1 "

	var buf bytes.Buffer
	require.NoError(t, jee.Marshal(&buf, p, compact()))
	assert.Equal(t, `<security-plugin id="plugin-1"><plugin-class>com.x.Plugin</plugin-class><key>k</key></security-plugin>`, buf.String())
}

func TestSecurityPluginRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		p    *wls.SecurityPlugin
		path string
	}{
		{name: "plugin class", p: &wls.SecurityPlugin{Key: "k"}, path: "/security-plugin/plugin-class"},
		{name: "key", p: &wls.SecurityPlugin{PluginClass: "c"}, path: "/security-plugin/key"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := jee.Marshal(&buf, tt.p, compact())
			list, ok := errors.AsValidations(err)
			require.True(t, ok)
			require.Len(t, list, 1)
			assert.Equal(t, string(errors.ErrMissingRequiredField), list[0].Code)
			assert.Equal(t, tt.path, list[0].Path)
		})
	}
}

func TestSecurityPluginUnmarshal(t *testing.T) {
	doc := `<security-plugin xmlns="http://xmlns.oracle.com/weblogic/weblogic-ejb-jar" id="sp">
  <plugin-class>
    com.x.Plugin
  </plugin-class>
  <key>secret-key</key>
</security-plugin>`

	var p wls.SecurityPlugin
	require.NoError(t, jee.Unmarshal(strings.NewReader(doc), &p, xmlbind.NewUnmarshalOptions()))
	assert.Equal(t, wls.SecurityPlugin{PluginClass: "\n    com.x.Plugin\n  ", Key: "secret-key", ID: "sp"}, p)
}

func TestSecurityPluginEmptyRequiredFields(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path string
	}{
		{
			name: "empty plugin class",
			doc:  `<security-plugin><plugin-class/><key>k</key></security-plugin>`,
			path: "/security-plugin/plugin-class",
		},
		{
			name: "empty key",
			doc:  `<security-plugin><plugin-class>c</plugin-class><key></key></security-plugin>`,
			path: "/security-plugin/key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p wls.SecurityPlugin
			err := jee.Unmarshal(strings.NewReader(tt.doc), &p, xmlbind.NewUnmarshalOptions())
			list, ok := errors.AsValidations(err)
			require.True(t, ok)
			require.Len(t, list, 1)
			assert.Equal(t, string(errors.ErrMissingRequiredField), list[0].Code)
			assert.Equal(t, tt.path, list[0].Path)
		})
	}
}

func TestSecurityPluginOutOfOrder(t *testing.T) {
	doc := `<security-plugin><key>k</key><plugin-class>c</plugin-class></security-plugin>`
	var p wls.SecurityPlugin
	err := jee.Unmarshal(strings.NewReader(doc), &p, xmlbind.NewUnmarshalOptions())
	assert.True(t, errors.HasCode(err, errors.ErrContentModelInvalid))
}

func TestSecurityPluginString(t *testing.T) {
	p := wls.NewSecurityPlugin("com.x.Plugin", "k")
	assert.Equal(t, "SecurityPlugin{pluginClass='com.x.Plugin', key='k'}", p.String())
}
