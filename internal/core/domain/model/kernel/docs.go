// Package kernel contains shared value objects used across all domain
// aggregates. Currently this is the UUID surrogate identifier.
package kernel
