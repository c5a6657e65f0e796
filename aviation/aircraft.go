// aviation/aircraft.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package aviation holds the aircraft-state and course-file types consumed
// by the danger field engine. The engine treats everything here as a
// read-only snapshot: state is captured once per field construction and
// never mutated by the core.
package aviation

import (
	"github.com/uaswarm/dangergrid/math"
)

// PlaneID is the stable identifier assigned to an aircraft for the
// duration of a flight; course files key their rows by it.
type PlaneID int

// Aircraft is one aircraft's state as captured for a planning cycle.
// Positions are grid cell coordinates ([0] is x, [1] is y). Destination is
// the next waypoint being flown to; FinalDestination is the last waypoint
// of the course. When the two coincide there is no intermediate leg.
// Bearing is in degrees, 0 due north, clockwise positive.
type Aircraft struct {
	ID               PlaneID
	Location         [2]int
	Destination      [2]int
	FinalDestination [2]int
	Bearing          float32
}

// HasIntermediate reports whether the aircraft is currently flying to a
// waypoint short of its final destination.
func (ac Aircraft) HasIntermediate() bool {
	return ac.Destination != ac.FinalDestination
}

// Aircraft converts a course into the snapshot the field engine consumes,
// for a field anchored at upperLeft with the given resolution in meters
// per cell. The course's first waypoint is the current position, its
// second (if any) the intermediate destination, and its last the final
// destination; the bearing is toward the intermediate destination.
func (c Course) Aircraft(upperLeft math.Point2LL, resolution float32) Aircraft {
	ac := Aircraft{ID: c.ID}
	if len(c.Waypoints) == 0 {
		return ac
	}

	start := c.Waypoints[0]
	x, y := math.LL2GridXY(start.Pos, upperLeft, resolution)
	ac.Location = [2]int{x, y}
	ac.Destination = ac.Location
	ac.FinalDestination = ac.Location

	if len(c.Waypoints) > 1 {
		next := c.Waypoints[1]
		last := c.Waypoints[len(c.Waypoints)-1]
		nx, ny := math.LL2GridXY(next.Pos, upperLeft, resolution)
		lx, ly := math.LL2GridXY(last.Pos, upperLeft, resolution)
		ac.Destination = [2]int{nx, ny}
		ac.FinalDestination = [2]int{lx, ly}
		ac.Bearing = math.Heading2LL(start.Pos, next.Pos)
	}
	return ac
}
