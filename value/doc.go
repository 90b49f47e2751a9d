// Package value provides the value tree produced by evaluating EDM
// expressions.
//
// # Overview
//
// A Value is a recursive tagged union. The Kind field selects which slot
// carries the payload:
//
//   - Null: no payload; Null() returns a shared instance
//   - Integer and Enum: Int64 (Enum also carries its type in Type)
//   - Floating: Float64
//   - Decimal: Decimal
//   - String: String
//   - Boolean: Bool
//   - Binary: Bytes
//   - Guid: GUID
//   - DateTimeOffset and Date: Time
//   - TimeOfDay and Duration: Duration
//   - Collection: Values, in order, element type name in Type
//   - Structured: Fields and Values at matching indexes, type name in Type
//
// Structured values keep properties in declaration order and do not enforce
// unique names; consumers that care (materialization) check for themselves.
// Collections may hold Null elements and elements of differing declared
// types.
//
// # Creating Values
//
//	v := value.FromKeyVals("NS.Person", []value.KeyVal{
//	    {Key: "Name", Val: value.FromString("Ada")},
//	    {Key: "Tags", Val: value.FromSlice("Edm.String", []*value.Value{
//	        value.FromString("a"),
//	    })},
//	})
//
// # Identity
//
// A *Value may be referenced from several places, including from its own
// descendants. Compare, Hash and ToAny assume an acyclic tree; Format
// detects cycles.
//
// # Thread Safety
//
// Values are immutable after construction and may be shared between
// goroutines.
package value
