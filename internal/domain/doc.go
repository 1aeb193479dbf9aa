// Package domain contains the core domain model for multirange.
//
// The domain is storage- and UI-agnostic: it does not depend on YAML parsing,
// the terminal, or the filesystem. Infra/adapters map into/from these types.
// Unit transformation and tick generation live here because both are pure
// functions of the slider configuration.
package domain
