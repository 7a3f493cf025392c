// Package domain holds the core model types, repository and service
// interfaces, and sentinel errors shared across the feedback engine.
// It has no dependencies on any other internal package.
package domain
