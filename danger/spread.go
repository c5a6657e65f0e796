// danger/spread.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package danger

import (
	"github.com/uaswarm/dangergrid/math"
)

// spreadBuffer adds an attenuated copy of the risk just written at (x, y)
// to neighboring cells of the same slice, creating the buffer zone that
// keeps planned paths from grazing a predicted aircraft. Writes go through
// SafelyAddRisk: near a grid edge the buffer degrades instead of faulting.
//
// In SpreadForwardArc mode only the five neighbors centered on the
// aircraft's named bearing receive risk; the default ring spreads to all
// eight so planners cannot cut diagonally close behind the aircraft.
func spreadBuffer(g *Grid, x, y int, risk, bearing float32, cfg Config) {
	d := risk * cfg.FieldWeight

	if cfg.Spread == SpreadForwardArc {
		// The compass directions are declared clockwise, so the arc is
		// five consecutive values centered on the bearing.
		center := int(math.NamedBearing(bearing))
		for i := -2; i <= 2; i++ {
			off := cellOffsets[(center+i+8)%8]
			g.SafelyAddRisk(x+off[0], y+off[1], d)
		}
		return
	}

	for _, off := range cellOffsets {
		g.SafelyAddRisk(x+off[0], y+off[1], d)
	}
}
