package domain

import "time"

// ResearchRun records one completed keyword research run for history.
type ResearchRun struct {
	// ID is the unique identifier (UUID).
	ID string `json:"id"`
	// CreatedAt is when the run completed.
	CreatedAt time.Time `json:"created_at"`
	// Seeds are the seed keywords the run expanded.
	Seeds []string `json:"seeds"`
	// Location is the location the run targeted.
	Location string `json:"location"`
	// ResultCount is how many keyword ideas the run produced.
	ResultCount int `json:"result_count"`
	// OutputFile is where the results were exported, if anywhere.
	OutputFile string `json:"output_file,omitempty"`
}
