package inspection

import (
	"testing"

	"github.com/boristopalov/curbside/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestInspectCleanStreet(t *testing.T) {
	world := core.StreetWorld{{}, {}, {}}
	r := Inspect(world, core.GarbageDay)
	assert.Empty(t, r.UncollectedLocations)
	assert.Empty(t, r.ContaminationLocations)
	assert.Equal(t, 0, r.TotalFine)
	assert.Empty(t, r.Log)
}

func TestInspectContaminationOnly(t *testing.T) {
	world := core.StreetWorld{
		{},
		{GarbageBin: core.BinState{Garbage: 0, Recycle: 1}},
	}
	r := Inspect(world, core.GarbageDay)
	assert.Empty(t, r.UncollectedLocations)
	assert.Equal(t, []int{1}, r.ContaminationLocations)
	assert.Equal(t, 0, r.FineUncollected)
	assert.Equal(t, 200, r.FineContamination)
	assert.Equal(t, 200, r.TotalFine)
	assert.Equal(t, []string{
		"[inspection] Fine $200 at location 1 for contamination (garbage-bin has recycle).",
	}, r.Log)
}

func TestInspectOnlyServicedBin(t *testing.T) {
	// A dirty recycle bin next to a clean garbage bin
	world := core.StreetWorld{{
		RecycleBin: core.BinState{Garbage: 1, Recycle: 1},
	}}

	t.Run("garbage day skips recycle bin", func(t *testing.T) {
		r := Inspect(world, core.GarbageDay)
		assert.Equal(t, 0, r.TotalFine)
	})

	t.Run("recycle day fines it", func(t *testing.T) {
		r := Inspect(world, core.RecycleDay)
		assert.Equal(t, []int{0}, r.UncollectedLocations)
		assert.Equal(t, []int{0}, r.ContaminationLocations)
		assert.Equal(t, 300, r.TotalFine)
		assert.Equal(t, []string{
			"[inspection] Fine $100 at location 0 for uncollected recycle.",
			"[inspection] Fine $200 at location 0 for contamination (recycle-bin has garbage).",
		}, r.Log)
	})
}

func TestInspectFineArithmeticAndOrder(t *testing.T) {
	world := core.StreetWorld{
		{GarbageBin: core.BinState{Garbage: 1, Recycle: 1}},
		{GarbageBin: core.BinState{Garbage: 2}},
		{GarbageBin: core.BinState{Recycle: 1}},
		{RecycleBin: core.BinState{Garbage: 1}},
	}
	r := Inspect(world, core.GarbageDay)

	assert.Equal(t, []int{0, 1}, r.UncollectedLocations)
	assert.Equal(t, []int{0, 2}, r.ContaminationLocations)
	assert.Equal(t, UncollectedFine*len(r.UncollectedLocations), r.FineUncollected)
	assert.Equal(t, ContaminationFine*len(r.ContaminationLocations), r.FineContamination)
	assert.Equal(t, r.FineUncollected+r.FineContamination, r.TotalFine)
	assert.Equal(t, []string{
		"[inspection] Fine $100 at location 0 for uncollected garbage.",
		"[inspection] Fine $100 at location 1 for uncollected garbage.",
		"[inspection] Fine $200 at location 0 for contamination (garbage-bin has recycle).",
		"[inspection] Fine $200 at location 2 for contamination (garbage-bin has recycle).",
	}, r.Log)
}

func TestInspectDoesNotMutate(t *testing.T) {
	world := core.StreetWorld{{GarbageBin: core.BinState{Garbage: 1}}}
	Inspect(world, core.GarbageDay)
	assert.Equal(t, 1, world[0].GarbageBin.Garbage)
}
