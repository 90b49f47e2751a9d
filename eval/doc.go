// Package eval evaluates annotation expressions against a context value.
//
// Evaluate walks an edm.Expr once and produces a value tree. Paths select
// properties of the context, records and collections are built from their
// evaluated members, If evaluates only the branch its Boolean condition
// selects, and Apply calls the implementation an Operations table holds for
// the operation the model bound it to.
//
// Table is the usual Operations implementation. Operations may be Go
// functions or expr-lang scripts; Canonical returns a table with the odata
// string functions.
package eval
