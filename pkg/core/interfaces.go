package core

// Rand is the random source consumed by world generation and pickups.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Agent maps a percept to an action
type Agent interface {
	Decide(p Percept) Action
}

// Environment defines the rules and mechanics of the street
type Environment interface {
	// Step runs one perceive, decide, apply cycle
	Step()
	// IsDone reports whether the agent has finished its route
	IsDone() bool
	// GetState returns the current environment state
	GetState() State
}
