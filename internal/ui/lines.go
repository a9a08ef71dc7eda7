package ui

import "planar/internal/core"

// Lines returns the HUD text for sim: its name, then its parameter snapshot
// when it provides one.
func Lines(sim core.Sim) []string {
	lines := []string{sim.Name()}
	if provider, ok := sim.(core.ParameterProvider); ok {
		lines = append(lines, provider.Parameters().Lines()...)
	}
	return lines
}
