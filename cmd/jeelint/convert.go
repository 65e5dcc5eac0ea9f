package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jacoelho/jee"
	"github.com/jacoelho/jee/pkg/xmlbind"
	"github.com/jacoelho/jee/wls"
)

type documentView struct {
	Root      string        `yaml:"root,omitempty"`
	Namespace string        `yaml:"namespace,omitempty"`
	Elements  []elementView `yaml:"elements"`
}

type elementView struct {
	PersistenceUnitRef *persistenceUnitRefView `yaml:"persistence-unit-ref,omitempty"`
	SecurityPlugin     *securityPluginView     `yaml:"security-plugin,omitempty"`
}

type persistenceUnitRefView struct {
	ID               string                `yaml:"id,omitempty"`
	Descriptions     []jee.Text            `yaml:"descriptions,omitempty"`
	Name             string                `yaml:"name"`
	Key              string                `yaml:"key"`
	Unit             string                `yaml:"unit,omitempty"`
	MappedName       string                `yaml:"mapped-name,omitempty"`
	LookupName       string                `yaml:"lookup-name,omitempty"`
	InjectionTargets []jee.InjectionTarget `yaml:"injection-targets,omitempty"`
}

type securityPluginView struct {
	ID          string `yaml:"id,omitempty"`
	PluginClass string `yaml:"plugin-class"`
	Key         string `yaml:"key"`
}

func (c *cli) convertCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "convert [--format yaml|xml] <file>",
		Short: "Print a descriptor document as YAML or canonical XML",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if format != "yaml" && format != "xml" {
				return fmt.Errorf("unsupported format %q", format)
			}
			d, err := c.readDocument(args[0], xmlbind.NewUnmarshalOptions().WithLogger(c.logger))
			if err != nil {
				return err
			}
			if format == "xml" {
				return jee.MarshalDocument(c.stdout, d, xmlbind.NewMarshalOptions().WithLogger(c.logger))
			}
			return c.writeYAML(d)
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format (yaml, xml)")
	return cmd
}

func (c *cli) writeYAML(d *jee.Document) error {
	enc := yaml.NewEncoder(c.stdout)
	enc.SetIndent(2)
	if err := enc.Encode(newDocumentView(d)); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func newDocumentView(d *jee.Document) documentView {
	view := documentView{Root: d.Root, Namespace: d.Namespace, Elements: []elementView{}}
	for _, e := range d.Elements {
		switch e := e.(type) {
		case *jee.PersistenceUnitRef:
			view.Elements = append(view.Elements, elementView{PersistenceUnitRef: &persistenceUnitRefView{
				ID:               e.ID,
				Descriptions:     e.Descriptions(),
				Name:             e.RefName,
				Key:              e.Key(),
				Unit:             e.UnitName,
				MappedName:       e.MappedName,
				LookupName:       e.LookupName,
				InjectionTargets: e.InjectionTargets().Slice(),
			}})
		case *wls.SecurityPlugin:
			view.Elements = append(view.Elements, elementView{SecurityPlugin: &securityPluginView{
				ID:          e.ID,
				PluginClass: e.PluginClass,
				Key:         e.Key,
			}})
		}
	}
	return view
}
