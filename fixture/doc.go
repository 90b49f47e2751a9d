// Package fixture loads YAML documents describing a model, its annotations,
// operation scripts and expected term values. Fixtures drive the edm
// command and tests; they are not a schema language.
//
// A minimal document:
//
//	terms:
//	  - name: UI.Label
//	    type: Edm.String
//	types:
//	  - name: NS.Person
//	instances:
//	  - name: NS.Me
//	    type: NS.Person
//	    value: {Name: Ada}
//	annotations:
//	  - target: NS.Person
//	    term: UI.Label
//	    expr: {path: Name}
//	checks:
//	  - target: NS.Me
//	    term: UI.Label
//	    expect: Ada
//
// See ExprFromYAML and ValueFromYAML for how expressions and values are
// written.
package fixture
