// Package services exposes the order lifecycle operations to inbound adapters.
//
// OrderService runs the command and query handlers and converts their typed
// errors into a Result with a Kind, so callers branch on the outcome instead
// of inspecting errors. Unexpected failures are logged with a reference that
// is returned to the caller in place of the error detail.
package services
