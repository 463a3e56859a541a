package config

// Render layers, as ecs.LayerID values
const (
	Default = iota
)
