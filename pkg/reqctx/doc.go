// Package reqctx carries request-scoped metadata from the HTTP layer into
// services. Context keys are unexported; use the accessors.
package reqctx
