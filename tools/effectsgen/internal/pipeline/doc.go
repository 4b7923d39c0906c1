// Package pipeline will contain the discrete stages of the effects contract
// generation workflow (loading contracts, validating registries, emitting
// client bindings). Implementation will follow the roadmap once the scaffolding
// is in place.
package pipeline
