package experiment

import (
	"fmt"
	"log"
	"time"

	"github.com/boristopalov/curbside/pkg/agent"
	"github.com/boristopalov/curbside/pkg/config"
	"github.com/boristopalov/curbside/pkg/core"
	"github.com/boristopalov/curbside/pkg/environment"
	"github.com/google/uuid"
)

// Result merges the collection run and the inspection that followed it
type Result struct {
	RunID                  string   `yaml:"run_id" json:"run_id"`
	Name                   string   `yaml:"name" json:"name"`
	NumLocations           int      `yaml:"num_locations" json:"num_locations"`
	DayType                string   `yaml:"day_type" json:"day_type"`
	Seed                   *int64   `yaml:"seed,omitempty" json:"seed,omitempty"`
	Steps                  int      `yaml:"steps" json:"steps"`
	Completed              bool     `yaml:"completed" json:"completed"`
	UncollectedLocations   []int    `yaml:"uncollected_locations" json:"uncollected_locations"`
	ContaminationLocations []int    `yaml:"contamination_locations" json:"contamination_locations"`
	FineUncollected        int      `yaml:"fine_uncollected_$" json:"fine_uncollected_$"`
	FineContamination      int      `yaml:"fine_contamination_$" json:"fine_contamination_$"`
	TotalFines             int      `yaml:"total_fines_$" json:"total_fines_$"`
	Logs                   []string `yaml:"logs" json:"logs"`
}

type Status struct {
	Running   bool
	StartTime time.Time
	EndTime   time.Time
}

// Experiment runs one collection day on a freshly generated street
type Experiment struct {
	id     string
	cfg    config.SimulationConfig
	opts   []environment.StreetOption
	status Status
}

func NewExperiment(cfg config.SimulationConfig, opts ...environment.StreetOption) *Experiment {
	return &Experiment{
		id:   uuid.New().String(),
		cfg:  cfg,
		opts: opts,
	}
}

func (e *Experiment) GetID() string {
	return e.id
}

func (e *Experiment) GetStatus() Status {
	return e.status
}

// Run generates the street, lets the collector work it within the step
// budget, and inspects the result
func (e *Experiment) Run() (*Result, error) {
	e.status.Running = true
	e.status.StartTime = time.Now()
	defer func() {
		e.status.Running = false
		e.status.EndTime = time.Now()
	}()

	street, err := environment.NewStreet(e.cfg, e.opts...)
	if err != nil {
		return nil, err
	}
	collector := agent.NewCollector(street.Day())
	if err := street.AddAgent(collector); err != nil {
		return nil, fmt.Errorf("failed to add collector: %w", err)
	}

	budget := e.cfg.StepBudget()
	log.Printf("Starting run %s: %d locations, %s day, budget %d steps", e.id, e.cfg.Locations, street.Day(), budget)
	steps := street.Run(budget)
	if !street.IsDone() {
		log.Printf("Run %s: %s stopped at location %d after %d steps", e.id, collector.GetID(), collector.Location(), steps)
	}

	report, ok := street.Inspect()
	if !ok {
		return nil, fmt.Errorf("street for run %s was already inspected", e.id)
	}
	log.Printf("Run %s inspected: $%d in fines", e.id, report.TotalFine)

	return &Result{
		RunID:                  e.id,
		Name:                   e.cfg.Name,
		NumLocations:           e.cfg.Locations,
		DayType:                street.Day().String(),
		Seed:                   e.cfg.Seed,
		Steps:                  steps,
		Completed:              street.IsDone(),
		UncollectedLocations:   report.UncollectedLocations,
		ContaminationLocations: report.ContaminationLocations,
		FineUncollected:        report.FineUncollected,
		FineContamination:      report.FineContamination,
		TotalFines:             report.TotalFine,
		Logs:                   street.Logs(),
	}, nil
}

// Run is shorthand for NewExperiment(cfg).Run()
func Run(cfg config.SimulationConfig) (*Result, error) {
	return NewExperiment(cfg).Run()
}

// RunSimulation drives a collector along a prebuilt world and returns the
// final world, the collector's log and the number of steps taken. The
// input world is not modified.
func RunSimulation(world core.StreetWorld, day core.CollectionDay, pMiss float64, rng core.Rand, maxSteps int) (core.StreetWorld, []string, int, error) {
	street, err := environment.NewStreetFromWorld(world, day, pMiss, rng)
	if err != nil {
		return nil, nil, 0, err
	}
	if err := street.AddAgent(agent.NewCollector(day)); err != nil {
		return nil, nil, 0, err
	}
	steps := street.Run(maxSteps)
	return street.World(), street.Logs(), steps, nil
}
