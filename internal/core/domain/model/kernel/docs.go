// Package kernel contains the shared value objects of the domain model:
// UUID identifiers and GPS positions. These types are immutable, validated
// at construction, and carry no behavior beyond what every aggregate needs.
package kernel
