// Package errors provides structured error handling for dungeon-api.
//
// Errors carry a code, a message, optional metadata and an optional cause:
//
//	err := errors.NotFound("layout not found").WithMeta("layout_id", id)
//
// Wrapping preserves the inner code:
//
//	if err := repo.Get(ctx, id); err != nil {
//	    return errors.Wrap(err, "failed to load layout")
//	}
//
// Handlers map codes to HTTP statuses via Code.HTTPStatus, and callers
// branch on codes with the Is* helpers:
//
//	if errors.IsNotFound(err) { ... }
//
// Field-level input validation accumulates through a ValidationBuilder and
// collapses into a single InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Width <= 0 {
//	    vb.InvalidField("Width", "must be positive")
//	}
//	return vb.Build()
package errors
