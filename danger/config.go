// danger/config.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package danger

// SpreadMode selects which neighbors of a predicted cell receive buffer
// risk. Both variants are intentional design iterations: the forward arc
// was the first cut, the full ring replaced it after path planners were
// observed cutting diagonally behind a predicted aircraft.
type SpreadMode int

const (
	// SpreadRing8 spreads buffer risk to all 8 neighboring cells.
	SpreadRing8 SpreadMode = iota
	// SpreadForwardArc spreads buffer risk to the 5 neighbors centered on
	// the aircraft's named bearing.
	SpreadForwardArc
)

// AttenuationFunc maps a time offset in seconds (negative for the past,
// positive for the future) to the weight applied to raw projected risk
// before it is written into that offset's slice.
type AttenuationFunc func(seconds int) float32

// FlatAttenuation returns the default attenuation policy: the same
// weight at every offset. The attenuation vector was designed as a decay
// curve, so a tuned policy can be substituted without touching the fill
// code.
func FlatAttenuation(weight float32) AttenuationFunc {
	return func(int) float32 { return weight }
}

// Config carries every knob the risk field engine uses. There is no
// package-level tuning state; a Config is passed in at construction and
// never mutated afterwards.
type Config struct {
	// LookAhead and LookBehind are the number of seconds of prediction and
	// history the field holds, one grid slice per second.
	LookAhead  int
	LookBehind int

	// PlaneDanger is the risk assigned to any cell currently occupied by
	// an aircraft: near-certain presence.
	PlaneDanger float32

	// FieldWeight scales the risk spread into neighboring cells to form
	// the buffer zone around each predicted cell.
	FieldWeight float32

	// DangerCeiling caps each individual projected contribution so that no
	// single step dominates the field.
	DangerCeiling float32

	// TailSeconds is the number of extra seconds projected past an
	// aircraft's final destination along its approach bearing, seeding
	// buffer risk just beyond the goal. Valid range is 1 to 3.
	TailSeconds int

	// MaxSteps bounds the trajectory walk in case a destination is
	// unreachable by single-cell steps.
	MaxSteps int

	Spread      SpreadMode
	Attenuation AttenuationFunc
}

// DefaultConfig returns the tuning used in the 500m flight tests.
func DefaultConfig() Config {
	return Config{
		LookAhead:     20,
		LookBehind:    2,
		PlaneDanger:   0.98,
		FieldWeight:   0.5,
		DangerCeiling: 0.4,
		TailSeconds:   2,
		MaxSteps:      1024,
		Spread:        SpreadRing8,
		Attenuation:   FlatAttenuation(0.98),
	}
}
