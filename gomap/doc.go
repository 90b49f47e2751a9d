// Package gomap materializes value trees into native Go object graphs.
//
// The target types are described by shapes rather than discovered by
// reflection. Primitive shapes are package variables (Int32, String, ...);
// the rest are built with generic constructors that capture how to create,
// convert and assign the native type:
//
//	type Person struct {
//	    Name    string
//	    Friends []*Person
//	}
//
//	person := gomap.Class[Person]("NS.Person")
//	person.Fields(
//	    gomap.Prop("Name", gomap.String, nil, func(p *Person, s string) { p.Name = s }),
//	    gomap.Prop("Friends", gomap.Collection[*Person](person, gomap.ReadOnlySequence), nil,
//	        func(p *Person, fs []*Person) { p.Friends = fs }),
//	)
//	p, err := gomap.MaterializeAs[*Person](v, person)
//
// Numeric conversions check the target range and fail with ErrOverflow,
// except narrowing to Float32, which saturates to an infinity. Each
// structured value is materialized once per call, so shared and cyclic
// references in the value tree are shared in the result. A Hook may supply
// instances, for example of a derived type named by the value's declared
// type.
package gomap
