// Package edm holds the read-only schema model that annotation lookup and
// evaluation work against: structured and enum types, vocabulary terms,
// operations, named instances, annotations and their expression trees.
//
// A Model is assembled with a Builder. Build links base types by name and
// binds every Apply expression to the declared operation overload of the
// same arity; references that cannot be bound stay in the tree, marked with
// an error, so that a model can still be inspected statically.
package edm
