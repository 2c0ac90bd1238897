// Package inspection audits a street after the collection run and fines
// the bins serviced that day.
package inspection

import (
	"fmt"

	"github.com/boristopalov/curbside/pkg/core"
)

const (
	UncollectedFine   = 100
	ContaminationFine = 200
)

type Report struct {
	UncollectedLocations   []int    `yaml:"uncollected_locations" json:"uncollected_locations"`
	ContaminationLocations []int    `yaml:"contamination_locations" json:"contamination_locations"`
	FineUncollected        int      `yaml:"fine_uncollected_$" json:"fine_uncollected_$"`
	FineContamination      int      `yaml:"fine_contamination_$" json:"fine_contamination_$"`
	TotalFine              int      `yaml:"total_fines_$" json:"total_fines_$"`
	Log                    []string `yaml:"inspection_log" json:"inspection_log"`
}

// Inspect fines every location whose serviced bin still holds the day's
// waste kind or holds the other kind. The opposite bin is never audited.
func Inspect(world core.StreetWorld, day core.CollectionDay) Report {
	r := Report{
		UncollectedLocations:   []int{},
		ContaminationLocations: []int{},
	}

	for i := range world {
		bin := *day.ServicedBin(&world[i])
		if day.Target(bin) > 0 {
			r.FineUncollected += UncollectedFine
			r.UncollectedLocations = append(r.UncollectedLocations, i)
		}
		if day.Contaminant(bin) > 0 {
			r.FineContamination += ContaminationFine
			r.ContaminationLocations = append(r.ContaminationLocations, i)
		}
	}
	r.TotalFine = r.FineUncollected + r.FineContamination

	r.Log = make([]string, 0, len(r.UncollectedLocations)+len(r.ContaminationLocations))
	for _, i := range r.UncollectedLocations {
		r.Log = append(r.Log, fmt.Sprintf("[inspection] Fine $%d at location %d for uncollected %s.", UncollectedFine, i, day))
	}
	reason := contaminationReason(day)
	for _, i := range r.ContaminationLocations {
		r.Log = append(r.Log, fmt.Sprintf("[inspection] Fine $%d at location %d for contamination (%s).", ContaminationFine, i, reason))
	}
	return r
}

func contaminationReason(day core.CollectionDay) string {
	if day == core.RecycleDay {
		return "recycle-bin has garbage"
	}
	return "garbage-bin has recycle"
}
