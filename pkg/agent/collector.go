package agent

import (
	"github.com/boristopalov/curbside/pkg/core"
	"github.com/google/uuid"
)

var _ core.Agent = (*Collector)(nil)

// Collector is a reactive waste collector working a single collection day
type Collector struct {
	id       string
	day      core.CollectionDay
	location int
	alive    bool
}

type CollectorParams struct {
	AgentID string
	Start   int
}

type CollectorOption func(*CollectorParams)

func WithAgentId(id string) CollectorOption {
	return func(p *CollectorParams) {
		p.AgentID = id
	}
}

// WithStart sets the index at which the collector joins the street.
// Street.AddAgent rejects an index outside the street.
func WithStart(index int) CollectorOption {
	return func(p *CollectorParams) {
		p.Start = index
	}
}

func defaultCollectorParams() *CollectorParams {
	return &CollectorParams{
		AgentID: "collector-" + uuid.New().String(),
	}
}

// NewCollector creates a live collector for the given day
func NewCollector(day core.CollectionDay, opts ...CollectorOption) *Collector {
	params := defaultCollectorParams()
	for _, opt := range opts {
		opt(params)
	}

	return &Collector{
		id:       params.AgentID,
		day:      day,
		location: params.Start,
		alive:    true,
	}
}

func (c *Collector) GetID() string {
	return c.id
}

func (c *Collector) Day() core.CollectionDay {
	return c.day
}

func (c *Collector) Location() int {
	return c.location
}

func (c *Collector) Alive() bool {
	return c.alive
}

// MoveTo sets the collector's street index
func (c *Collector) MoveTo(index int) {
	c.location = index
}

// Retire marks the collector as finished. There is no way back.
func (c *Collector) Retire() {
	c.alive = false
}

// Decide collects when the bin serviced today still holds its own waste
// kind. The other bin and any contamination are never looked at.
func (c *Collector) Decide(p core.Percept) core.Action {
	bin := c.day.ServicedBin(&p.Location)
	if c.day.Target(*bin) > 0 {
		return core.Collect
	}
	return core.Move
}
