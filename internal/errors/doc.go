// Package errors provides the structured error type used across warband.
//
// Errors carry a Code, a user facing Message, an optional Cause and free
// form metadata:
//
//	err := errors.Construction("no sword provided").
//	    WithMeta("missing", []string{"sword"})
//
// Wrapping keeps the code of the wrapped error:
//
//	if _, err := b.Result(); err != nil {
//	    return errors.Wrap(err, "failed to assemble swordsman")
//	}
//
// Checking:
//
//	if errors.IsConstruction(err) {
//	    // a builder was driven without all of its components
//	}
//
// # Construction errors
//
// CodeConstruction is the only error a builder returns for missing parts.
// It is produced synchronously by Result and is never recovered inside the
// module; the director recipes always supply every component, so the
// factory surface cannot produce it.
//
// # Validation
//
// Config types validate their dependencies with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Clock == nil {
//	    vb.RequiredField("Clock")
//	}
//	return vb.Build()
package errors
