// Package errors provides the structured error type shared by every layer of
// the spellbook service.
//
// Errors carry a Code, a caller-facing message, an optional cause and
// metadata. Codes map one-to-one onto gRPC status codes so handlers can
// return ToGRPCError(err) without translating by hand.
//
// # Basic Usage
//
//	err := errors.NotFoundf("spell %q not found", name)
//	err := errors.InvalidArgument("level must be between 0 and 9").
//	    WithMeta("level", level)
//
// Wrapping keeps the original code:
//
//	if err := source.ListSpells(ctx); err != nil {
//	    return errors.Wrap(err, "failed to load catalog")
//	}
//
// Field validation:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", spell.Name, vb)
//	errors.ValidateRange("level", spell.Level, 0, 9, vb)
//	return vb.Build()
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // point lookup miss
//	}
package errors
