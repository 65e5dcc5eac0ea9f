// Package jee binds Java EE deployment-descriptor elements to Go values.
//
// Each descriptor element is a plain struct paired with a mapping table
// that fixes its XML tag, child order and cardinality. Elements carry no
// validation of their own; required fields and XML ids are checked when an
// element crosses the XML boundary through Marshal, Unmarshal or a Document.
//
// A persistence-unit-ref can be assembled fluently:
//
//	ref := jee.NewPersistenceUnitRef("", "orders").
//		WithInjectionTarget("com.acme.OrderService", "em")
//	ref.Key() // "java:comp/env/com.acme.OrderService/em"
package jee
