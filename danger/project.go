// danger/project.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package danger

import (
	"fmt"

	"github.com/uaswarm/dangergrid/aviation"
	"github.com/uaswarm/dangergrid/math"
)

// cellOffsets maps each of the eight compass directions to the (dx, dy)
// step it represents on the grid. y decreases to the north.
var cellOffsets = [8][2]int{
	math.North:     {0, -1},
	math.NorthEast: {1, -1},
	math.East:      {1, 0},
	math.SouthEast: {1, 1},
	math.South:     {0, 1},
	math.SouthWest: {-1, 1},
	math.West:      {-1, 0},
	math.NorthWest: {-1, -1},
}

// offsetForAngle maps a grid-aligned bearing (0, ±45, ±90, ±135, ±180) to
// its neighbor-cell offset. Both 180 and -180 are due south.
func offsetForAngle(angle float32) [2]int {
	switch angle {
	case 0:
		return cellOffsets[math.North]
	case 45:
		return cellOffsets[math.NorthEast]
	case 90:
		return cellOffsets[math.East]
	case 135:
		return cellOffsets[math.SouthEast]
	case 180, -180:
		return cellOffsets[math.South]
	case -45:
		return cellOffsets[math.NorthWest]
	case -90:
		return cellOffsets[math.West]
	case -135:
		return cellOffsets[math.SouthWest]
	default:
		panic(fmt.Sprintf("danger: %v is not a grid-aligned angle", angle))
	}
}

// splitMass divides one step's risk mass between the two neighbor cells of
// (x, y) bracketing the given bearing. The two fractions sum to 1; the
// majority share always goes to the direction nearer the true bearing, so
// maj.Risk >= rem.Risk. No ceiling has been applied yet.
func splitMass(bearing float32, x, y int) (maj, rem Estimate) {
	first, second := math.BracketingAngles(bearing)

	var closest, other float32
	if math.Abs(bearing-first) >= math.Abs(bearing-second) {
		closest, other = second, first
	} else {
		closest, other = first, second
	}

	// The fraction assigned to the nearer direction is the angular
	// closeness ratio. When the nearer direction is 0 the ratio would
	// divide by zero, so the share is measured against the other
	// direction instead and inverted.
	var frac float32
	if math.Abs(bearing) > math.Abs(closest) && closest != 0 {
		frac = closest / bearing
	} else if closest != 0 {
		frac = bearing / closest
	} else {
		frac = 1 - bearing/other
	}

	co := offsetForAngle(closest)
	oo := offsetForAngle(other)
	maj = Estimate{x + co[0], y + co[1], frac}
	rem = Estimate{x + oo[0], y + oo[1], 1 - frac}
	return
}

// clampCeiling applies the per-contribution ceiling.
func clampCeiling(e Estimate, ceiling float32) Estimate {
	e.Risk = math.Clamp(e.Risk, 0, ceiling)
	return e
}

// projectTrajectory extrapolates an aircraft's straight-line path into a
// stream of per-second Estimate clusters, each cluster terminated by a
// sentinel. The aircraft is walked one cell per second: at each step the
// bearing to the destination is split between its two bracketing grid
// directions, both neighbor cells are emitted, and the majority cell
// becomes the next position. If the aircraft has an intermediate
// destination distinct from its final one, the two legs are projected
// back-to-back on a single elapsed-time axis. A short tail past the final
// destination continues along the approach bearing to seed buffer risk
// beyond the goal.
//
// An aircraft already at its destination produces an empty stream.
func projectTrajectory(ac aviation.Aircraft, cfg Config) []Estimate {
	var out []Estimate

	cur := ac.Location
	legs := [][2]int{ac.FinalDestination}
	if ac.HasIntermediate() {
		legs = [][2]int{ac.Destination, ac.FinalDestination}
	}

	// The work list holds the single pending (point, destination) pair;
	// each iteration appends one confirmed cluster to the output.
	steps := 0
	moved := false
	var approach float32
	for _, dest := range legs {
		for cur != dest && steps < cfg.MaxSteps {
			bearing := math.EuclideanBearing(cur[0], cur[1], dest[0], dest[1])
			maj, rem := splitMass(bearing, cur[0], cur[1])

			out = append(out,
				clampCeiling(maj, cfg.DangerCeiling),
				clampCeiling(rem, cfg.DangerCeiling),
				sentinel())

			cur = [2]int{maj.X, maj.Y}
			approach = bearing
			steps++
			moved = true
		}
	}

	if moved {
		out = append(out, projectTail(cur, approach, cfg)...)
	}
	return out
}

// projectTail emits a fixed-length continuation past the destination along
// the discretized approach bearing, one full-mass (ceiling-clamped)
// estimate per second.
func projectTail(dest [2]int, approach float32, cfg Config) []Estimate {
	tail := math.Clamp(cfg.TailSeconds, 1, 3)
	off := cellOffsets[math.NamedBearing(approach)]

	out := make([]Estimate, 0, 2*tail)
	x, y := dest[0], dest[1]
	for i := 0; i < tail; i++ {
		x += off[0]
		y += off[1]
		out = append(out, Estimate{x, y, cfg.DangerCeiling}, sentinel())
	}
	return out
}
