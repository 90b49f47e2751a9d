// Package annotation finds the vocabulary annotation that applies to a model
// element, walking from an instance to its type and from a structured type to
// its base types.
package annotation
