package environment

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/boristopalov/curbside/pkg/config"
	"github.com/boristopalov/curbside/pkg/core"
)

// NewRand returns a source seeded from seed, or from the clock when seed
// is nil. Every run should own its source.
func NewRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// GenerateWorld builds a street of n locations. Each location gets four
// independent draws, in order: garbage into the garbage bin, recyclables
// into the recycle bin, recyclables into the garbage bin, garbage into
// the recycle bin.
func GenerateWorld(n int, pItem, pContam float64, rng core.Rand) (core.StreetWorld, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", config.ErrInvalidLocations, n)
	}

	world := make(core.StreetWorld, n)
	for i := range world {
		ls := &world[i]
		if rng.Float64() < pItem {
			ls.GarbageBin.Garbage++
		}
		if rng.Float64() < pItem {
			ls.RecycleBin.Recycle++
		}
		if rng.Float64() < pContam {
			ls.GarbageBin.Recycle++
		}
		if rng.Float64() < pContam {
			ls.RecycleBin.Garbage++
		}
	}
	return world, nil
}
