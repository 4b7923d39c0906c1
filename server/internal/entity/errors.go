package entity

import "errors"

var (
	ErrInvalidConfig     = errors.New("entity: invalid configuration")
	ErrUnknownResource   = errors.New("entity: unknown resource")
	ErrUnknownStat       = errors.New("entity: unknown stat")
	ErrUnknownEffect     = errors.New("entity: unknown effect")
	ErrInvalidAnchor     = errors.New("entity: anchor slot already occupied")
	ErrScriptError       = errors.New("entity: script is in an errored state")
	ErrNetSchemaMismatch = errors.New("entity: replicated schema version mismatch")
	ErrWorldTornDown     = errors.New("entity: world reference required")
)
