package environment

import (
	"errors"
	"fmt"
	"time"

	"github.com/boristopalov/curbside/pkg/agent"
	"github.com/boristopalov/curbside/pkg/audit"
	"github.com/boristopalov/curbside/pkg/config"
	"github.com/boristopalov/curbside/pkg/core"
	"github.com/boristopalov/curbside/pkg/inspection"
)

const (
	StatusIdle      = "idle"
	StatusRunning   = "running"
	StatusDone      = "done"
	StatusInspected = "inspected"
)

var (
	ErrAgentPresent = errors.New("street already has a collector")
	ErrEmptyWorld   = errors.New("street world has no locations")
	ErrOffStreet    = errors.New("collector start is not on the street")
)

var _ core.Environment = (*Street)(nil)

// Street is a linear street worked by a single collector
type Street struct {
	world     core.StreetWorld
	day       core.CollectionDay
	pMiss     float64
	rng       core.Rand
	agent     *agent.Collector
	log       *audit.Log
	state     core.State
	inspected bool
}

type StreetParams struct {
	Rand core.Rand
}

type StreetOption func(*StreetParams)

// WithRand replaces the source built from the config seed
func WithRand(rng core.Rand) StreetOption {
	return func(p *StreetParams) {
		p.Rand = rng
	}
}

// NewStreet validates cfg and generates the street from its own random
// source. World generation consumes the source first, then every collect
// attempt draws once more from it.
func NewStreet(cfg config.SimulationConfig, opts ...StreetOption) (*Street, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	params := &StreetParams{}
	for _, opt := range opts {
		opt(params)
	}
	if params.Rand == nil {
		params.Rand = NewRand(cfg.Seed)
	}

	world, err := GenerateWorld(cfg.Locations, cfg.PItem, cfg.PContam, params.Rand)
	if err != nil {
		return nil, err
	}
	return newStreet(world, cfg.CollectionDay(), cfg.PMiss, params.Rand), nil
}

// NewStreetFromWorld wraps a prebuilt world. The street keeps its own copy.
func NewStreetFromWorld(world core.StreetWorld, day core.CollectionDay, pMiss float64, rng core.Rand) (*Street, error) {
	if len(world) == 0 {
		return nil, ErrEmptyWorld
	}
	if !day.Valid() {
		return nil, fmt.Errorf("%w: got %s", core.ErrInvalidDay, day)
	}
	return newStreet(world.Clone(), day, pMiss, rng), nil
}

func newStreet(world core.StreetWorld, day core.CollectionDay, pMiss float64, rng core.Rand) *Street {
	return &Street{
		world: world,
		day:   day,
		pMiss: pMiss,
		rng:   rng,
		log:   audit.NewLog(),
		state: core.State{
			Status:    StatusIdle,
			Step:      0,
			Timestamp: time.Now(),
		},
	}
}

// AddAgent puts the collector on the street at its current location,
// which must be a valid index
func (s *Street) AddAgent(a *agent.Collector) error {
	if s.agent != nil {
		return fmt.Errorf("%w: %s", ErrAgentPresent, s.agent.GetID())
	}
	if a.Day() != s.day {
		return fmt.Errorf("collector works %s day, street is collected on %s day", a.Day(), s.day)
	}
	if a.Location() < 0 || a.Location() >= len(s.world) {
		return fmt.Errorf("%w: index %d, street has %d locations", ErrOffStreet, a.Location(), len(s.world))
	}
	s.agent = a
	return nil
}

func (s *Street) GetAgent() *agent.Collector {
	return s.agent
}

// Perceive returns a snapshot of the collector's current location
func (s *Street) Perceive(a *agent.Collector) core.Percept {
	return core.Percept{
		Index:    a.Location(),
		Location: s.world[a.Location()],
	}
}

// Apply executes the collector's action against the street and counts
// it as one step
func (s *Street) Apply(a *agent.Collector, action core.Action) {
	s.state.Step++
	s.state.Timestamp = time.Now()
	step := s.state.Step
	loc := a.Location()

	switch action {
	case core.Collect:
		if s.rng.Float64() < s.pMiss {
			s.log.Record("[step %d] Missed %s pickup at location %d.", step, s.day, loc)
		} else {
			count := s.day.ClearTarget(s.day.ServicedBin(&s.world[loc]))
			s.log.Record("[step %d] Collected %s at location %d (items: %d).", step, s.day, loc, count)
		}
	case core.Move:
		next := min(loc+1, len(s.world)-1)
		s.log.Record("[step %d] Moving from %d to %d.", step, loc, next)
		a.MoveTo(next)
	}

	// The route ends once the collector has nowhere left to move
	if action != core.Collect && a.Location() == len(s.world)-1 {
		a.Retire()
	}
}

// Step runs one perceive, decide, apply cycle
func (s *Street) Step() {
	if s.IsDone() {
		return
	}
	s.state.Status = StatusRunning
	action := s.agent.Decide(s.Perceive(s.agent))
	s.Apply(s.agent, action)
	if s.IsDone() {
		s.state.Status = StatusDone
	}
}

// Run steps until the collector retires or maxSteps steps have been
// taken, and returns the number of steps taken. A collector that keeps
// collecting at the last location never retires on its own, so the bound
// is always required.
func (s *Street) Run(maxSteps int) int {
	taken := 0
	for taken < maxSteps && !s.IsDone() {
		s.Step()
		taken++
	}
	return taken
}

// IsDone reports whether there is no live collector on the street
func (s *Street) IsDone() bool {
	return s.agent == nil || !s.agent.Alive()
}

// Inspect audits the final street once. Later calls return nil, false and
// leave the fines and the log untouched.
func (s *Street) Inspect() (*inspection.Report, bool) {
	if s.inspected {
		return nil, false
	}
	report := inspection.Inspect(s.world, s.day)
	s.log.Append(report.Log...)
	s.inspected = true
	s.state.Status = StatusInspected
	return &report, true
}

func (s *Street) Inspected() bool {
	return s.inspected
}

// World returns a copy of the current street
func (s *Street) World() core.StreetWorld {
	return s.world.Clone()
}

func (s *Street) Day() core.CollectionDay {
	return s.day
}

// Logs returns the audit log in chronological order
func (s *Street) Logs() []string {
	return s.log.Entries()
}

func (s *Street) GetState() core.State {
	return s.state
}
