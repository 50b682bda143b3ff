package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lensing/engine"
	"github.com/lixenwraith/lensing/parameter"
)

// tuneKeys maps a lowercase rune to a simulation mutator; each press applies one step
var tuneKeys = map[rune]func(s *engine.Simulation){
	'q': func(s *engine.Simulation) { s.SetMass(s.Mass() - parameter.StepMass) },
	'e': func(s *engine.Simulation) { s.SetMass(s.Mass() + parameter.StepMass) },
	'z': func(s *engine.Simulation) { s.SetRadius(s.Radius() - parameter.StepRadius) },
	'x': func(s *engine.Simulation) { s.SetRadius(s.Radius() + parameter.StepRadius) },
	'a': func(s *engine.Simulation) { s.SetSpeed(s.Speed() - parameter.StepSpeed) },
	's': func(s *engine.Simulation) { s.SetSpeed(s.Speed() + parameter.StepSpeed) },
	'd': func(s *engine.Simulation) {
		s.SetGravityMultiplier(s.GravityMultiplier() - parameter.StepGravityMultiplier)
	},
	'f': func(s *engine.Simulation) {
		s.SetGravityMultiplier(s.GravityMultiplier() + parameter.StepGravityMultiplier)
	},
	'c': func(s *engine.Simulation) { s.SetMaxForce(s.MaxForce() - parameter.StepMaxForce) },
	'v': func(s *engine.Simulation) { s.SetMaxForce(s.MaxForce() + parameter.StepMaxForce) },
	'g': func(s *engine.Simulation) { s.SetForceExponent(s.ForceExponent() - parameter.StepForceExponent) },
	'h': func(s *engine.Simulation) { s.SetForceExponent(s.ForceExponent() + parameter.StepForceExponent) },
	'r': func(s *engine.Simulation) { s.Reset() },
	' ': func(s *engine.Simulation) { s.Reset() },
	't': func(s *engine.Simulation) { s.CyclePattern() },
}

// moveKeys maps arrow keys to black hole displacement in world units
var moveKeys = map[tcell.Key][2]float64{
	tcell.KeyLeft:  {-parameter.StepMove, 0},
	tcell.KeyRight: {parameter.StepMove, 0},
	tcell.KeyUp:    {0, parameter.StepMove},
	tcell.KeyDown:  {0, -parameter.StepMove},
}

const helpLine = "←↑↓→ move  q/e mass  z/x radius  a/s speed  d/f gravity  c/v max force  g/h exponent  t pattern  r reset  p params  enter pause  esc quit"
