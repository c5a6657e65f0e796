// danger/distance.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package danger

import (
	"fmt"

	"github.com/uaswarm/dangergrid/math"
)

// negligibleRisk is the threshold below which a cell's risk is treated as
// zero when blending distance costs.
const negligibleRisk = 1e-6

// buildDistanceMap returns a grid whose every cell holds the straight-line
// distance, in cells, to the goal square.
func (f *Field) buildDistanceMap(goalX, goalY int) *Grid {
	m := NewGrid(f.slices[0].Width(), f.slices[0].Height(), f.Resolution(), f.cfg.PlaneDanger)
	for x := 0; x < m.WidthInCells(); x++ {
		for y := 0; y < m.HeightInCells(); y++ {
			m.SetRisk(x, y, math.EuclideanDistance(x, y, goalX, goalY))
		}
	}
	return m
}

// ComputeDistanceCosts overlays the straight-line distance to the goal
// square onto every time slice, turning the raw risk field into a
// planning-heuristic surface: cells whose risk is negligible become pure
// distance, and cells carrying risk become adjust*risk + distance. adjust
// defaults to 1 and may be overridden with a single optional argument.
//
// The blend consumes the raw field; it cannot meaningfully be applied
// twice, so a second call returns an error. Snapshot the field with Copy
// first if the raw ratings are still needed.
func (f *Field) ComputeDistanceCosts(goalX, goalY int, adjust ...float32) error {
	if f.distanceComputed {
		return fmt.Errorf("danger: distance costs already computed for this field")
	}
	if len(adjust) > 1 {
		return fmt.Errorf("danger: at most one adjust override, got %d", len(adjust))
	}
	f.slices[0].checkBounds(goalX, goalY)

	dangerAdjust := float32(1)
	if len(adjust) == 1 {
		dangerAdjust = adjust[0]
	}

	f.distanceMap = f.buildDistanceMap(goalX, goalY)
	for _, sl := range f.slices {
		for x := 0; x < sl.WidthInCells(); x++ {
			for y := 0; y < sl.HeightInCells(); y++ {
				dist := f.distanceMap.RiskAt(x, y)
				if risk := sl.RiskAt(x, y); risk > negligibleRisk {
					sl.SetRisk(x, y, dangerAdjust*risk+dist)
				} else {
					sl.SetRisk(x, y, dist)
				}
			}
		}
	}
	f.distanceComputed = true
	return nil
}

// CalculateDistanceCosts is the direct-blend variant: every cell of the
// first lookAhead slices becomes adjust*risk + distance with adjust fixed
// at (widthCells+heightCells)/4, leaving zero-risk cells with a distance
// floor rather than zero.
//
// Unlike ComputeDistanceCosts this variant is not idempotent: invoking it
// a second time blends the already-blended surface. See the compounding
// test before reaching for it.
func (f *Field) CalculateDistanceCosts(goalX, goalY int) {
	f.slices[0].checkBounds(goalX, goalY)
	dangerAdjust := float32(f.WidthInCells()+f.HeightInCells()) / 4

	if f.distanceMap == nil {
		f.distanceMap = f.buildDistanceMap(goalX, goalY)
	}
	for t := 0; t < f.cfg.LookAhead; t++ {
		sl := f.slices[t]
		for x := 0; x < sl.WidthInCells(); x++ {
			for y := 0; y < sl.HeightInCells(); y++ {
				dist := f.distanceMap.RiskAt(x, y)
				sl.SetRisk(x, y, dangerAdjust*sl.RiskAt(x, y)+dist)
			}
		}
	}
	f.distanceComputed = true
}

// DistanceCostAt returns the straight-line distance, in cells, from a
// square to the goal declared when the distance costs were computed.
// Calling it before either blend has run is a contract violation.
func (f *Field) DistanceCostAt(x, y int) float32 {
	if !f.distanceComputed {
		panic("danger: distance costs queried before being computed")
	}
	return f.distanceMap.RiskAt(x, y)
}
