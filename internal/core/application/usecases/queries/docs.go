// Package queries contains read-only operations of the CQRS architecture.
// Query handlers never open a unit of work; they read through the store ports.
package queries
