package combat

// AbilityActor captures the subset of actor metadata required to sanitize
// ability owners before constructing combat intents. It mirrors the legacy
// actor state fields without depending on the server package.
type AbilityActor struct {
	ID     string
	X      float64
	Y      float64
	Facing string
}
