package jee_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/jacoelho/jee"
	"github.com/jacoelho/jee/errors"
	"github.com/jacoelho/jee/pkg/xmlbind"
	"github.com/jacoelho/jee/wls"
)

func ExamplePersistenceUnitRef_Key() {
	fmt.Println(jee.NewPersistenceUnitRef("myUnit", "unitA").Key())
	fmt.Println(jee.NewPersistenceUnitRef("java:app/orders", "unitA").Key())
	// Output:
	// java:comp/env/myUnit
	// java:app/orders
}

func ExamplePersistenceUnitRef_WithInjectionTarget() {
	ref := (&jee.PersistenceUnitRef{}).
		WithUnit("ordersPU").
		WithInjectionTarget("com.acme.OrderService", "em")
	fmt.Println(ref)
	// Output: PersistenceUnitRef{name='java:comp/env/com.acme.OrderService/em', unit='ordersPU', mappedName='', lookupName=''}
}

func ExampleMarshal() {
	ref := jee.NewPersistenceUnitRef("persistence/orders", "ordersPU").
		WithInjectionTarget("com.acme.OrderService", "em")

	opts := xmlbind.NewMarshalOptions().
		WithNamespace(jee.DefaultNamespace).
		WithXMLDeclaration(false)
	if err := jee.Marshal(os.Stdout, ref, opts); err != nil {
		fmt.Println(err)
	}
	// Output:
	// <persistence-unit-ref xmlns="http://java.sun.com/xml/ns/javaee">
	//   <persistence-unit-ref-name>persistence/orders</persistence-unit-ref-name>
	//   <persistence-unit-name>ordersPU</persistence-unit-name>
	//   <injection-target>
	//     <injection-target-class>com.acme.OrderService</injection-target-class>
	//     <injection-target-name>em</injection-target-name>
	//   </injection-target>
	// </persistence-unit-ref>
}

func ExampleUnmarshalDocument() {
	doc := `<descriptors>
  <persistence-unit-ref id="orders">
    <persistence-unit-ref-name>persistence/orders</persistence-unit-ref-name>
  </persistence-unit-ref>
  <security-plugin id="orders">
    <plugin-class>com.acme.Plugin</plugin-class>
    <key>acme</key>
  </security-plugin>
</descriptors>`

	d, err := jee.UnmarshalDocument(strings.NewReader(doc), xmlbind.NewUnmarshalOptions(),
		jee.PersistenceUnitRefKind, wls.SecurityPluginKind)
	for _, e := range d.Elements {
		fmt.Println(e)
	}
	if violations, ok := errors.AsValidations(err); ok {
		for _, v := range violations {
			fmt.Println(v.Code, v.Path)
		}
	}
	// Output:
	// PersistenceUnitRef{name='persistence/orders', unit='', mappedName='', lookupName=''}
	// SecurityPlugin{pluginClass='com.acme.Plugin', key='acme'}
	// cvc-id.2 /descriptors/security-plugin[2]/@id
}
