// Package wls binds elements of the WebLogic EJB deployment descriptor.
package wls

import (
	"fmt"

	"github.com/jacoelho/jee"
	"github.com/jacoelho/jee/pkg/xmlbind"
)

// SecurityPlugin binds security-plugin: a custom security provider class
// and the key it is configured under.
type SecurityPlugin struct {
	PluginClass string
	Key         string
	ID          string
}

var _ jee.Element = (*SecurityPlugin)(nil)

// NewSecurityPlugin returns a plugin with the given class and key.
func NewSecurityPlugin(pluginClass, key string) *SecurityPlugin {
	return &SecurityPlugin{PluginClass: pluginClass, Key: key}
}

// XMLBinding pairs the plugin with its mapping table.
func (p *SecurityPlugin) XMLBinding() xmlbind.Codec {
	return xmlbind.Bind(securityPluginSchema, p)
}

func (p *SecurityPlugin) String() string {
	return fmt.Sprintf("SecurityPlugin{pluginClass='%s', key='%s'}", p.PluginClass, p.Key)
}

// SecurityPluginKind decodes security-plugin elements.
var SecurityPluginKind = jee.Kind{
	Tag: "security-plugin",
	New: func() jee.Element { return &SecurityPlugin{} },
}

var securityPluginSchema = xmlbind.MustSchema("security-plugin",
	xmlbind.Elem("PluginClass", "plugin-class", xmlbind.Required,
		func(p *SecurityPlugin) string { return p.PluginClass },
		func(p *SecurityPlugin, v string) { p.PluginClass = v }),
	xmlbind.Elem("Key", "key", xmlbind.Required,
		func(p *SecurityPlugin) string { return p.Key },
		func(p *SecurityPlugin, v string) { p.Key = v }),
	xmlbind.IDAttr("id",
		func(p *SecurityPlugin) string { return p.ID },
		func(p *SecurityPlugin, v string) { p.ID = v }),
)
