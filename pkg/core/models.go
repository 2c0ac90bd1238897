package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDay = errors.New("day type must be garbage or recycle")

// BinState counts the items held by one bin, split by waste kind
type BinState struct {
	Garbage int `yaml:"garbage" json:"garbage"`
	Recycle int `yaml:"recycle" json:"recycle"`
}

// LocationState is one street position with its two bins
type LocationState struct {
	GarbageBin BinState `yaml:"garbage_bin" json:"garbage_bin"`
	RecycleBin BinState `yaml:"recycle_bin" json:"recycle_bin"`
}

// StreetWorld is the ordered sequence of locations along the street
type StreetWorld []LocationState

// Clone returns a copy that shares no bins with w
func (w StreetWorld) Clone() StreetWorld {
	out := make(StreetWorld, len(w))
	copy(out, w)
	return out
}

// CollectionDay selects which bin the collector services
type CollectionDay int

const (
	GarbageDay CollectionDay = iota
	RecycleDay
)

// ParseCollectionDay accepts "garbage" or "recycle" in any case
func ParseCollectionDay(s string) (CollectionDay, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "garbage":
		return GarbageDay, nil
	case "recycle":
		return RecycleDay, nil
	}
	return 0, fmt.Errorf("%w: got %q", ErrInvalidDay, s)
}

func (d CollectionDay) String() string {
	switch d {
	case GarbageDay:
		return "garbage"
	case RecycleDay:
		return "recycle"
	}
	return fmt.Sprintf("CollectionDay(%d)", int(d))
}

// Valid reports whether d is one of the two known days
func (d CollectionDay) Valid() bool {
	return d == GarbageDay || d == RecycleDay
}

// ServicedBin returns the bin that is emptied on this day
func (d CollectionDay) ServicedBin(ls *LocationState) *BinState {
	if d == RecycleDay {
		return &ls.RecycleBin
	}
	return &ls.GarbageBin
}

// Target returns the count of the waste kind collected on this day
func (d CollectionDay) Target(b BinState) int {
	if d == RecycleDay {
		return b.Recycle
	}
	return b.Garbage
}

// Contaminant returns the count of the waste kind that does not belong
// in this day's bin
func (d CollectionDay) Contaminant(b BinState) int {
	if d == RecycleDay {
		return b.Garbage
	}
	return b.Recycle
}

// ClearTarget empties the target count of b and returns what it held
func (d CollectionDay) ClearTarget(b *BinState) int {
	var n int
	if d == RecycleDay {
		n, b.Recycle = b.Recycle, 0
	} else {
		n, b.Garbage = b.Garbage, 0
	}
	return n
}

type Action int

const (
	Move Action = iota
	Collect
)

func (a Action) String() string {
	if a == Collect {
		return "collect"
	}
	return "move"
}

// Percept is what the agent sees at its current position
type Percept struct {
	Index    int
	Location LocationState
}

type State struct {
	Status    string
	Step      int
	Timestamp time.Time
}
