// Package errors provides structured error handling for warband-api.
//
// Errors carry a code, a message, and optional metadata, and wrap causes
// while preserving the original code:
//
//	err := errors.NotFoundf("warband %q not found", warbandID)
//	err := errors.Wrap(err, "failed to create roster")
//
// Checking:
//
//	if errors.IsNotFound(err) {
//	    // unknown warband, item, skill, or spell
//	}
//
// Layer guidelines:
//   - Repository layer returns NotFound/AlreadyExists with IDs in metadata
//     and wraps storage errors with context.
//   - Engine layer returns NotFound for unknown catalog references,
//     AlreadyExists for duplicate skill/spell adds, and OutOfRange when a
//     stat mutation would leave the allowed range.
//   - Orchestrator layer validates inputs (InvalidArgument), checks
//     recruit limits (FailedPrecondition), and wraps lower-layer errors.
package errors
