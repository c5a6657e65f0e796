// math/heading.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
)

///////////////////////////////////////////////////////////////////////////
// headings and directions

type CardinalOrdinalDirection int

const (
	North CardinalOrdinalDirection = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

func (co CardinalOrdinalDirection) Heading() float32 {
	return float32(co) * 45
}

func (co CardinalOrdinalDirection) ShortString() string {
	switch co {
	case North:
		return "N"
	case NorthEast:
		return "NE"
	case East:
		return "E"
	case SouthEast:
		return "SE"
	case South:
		return "S"
	case SouthWest:
		return "SW"
	case West:
		return "W"
	case NorthWest:
		return "NW"
	default:
		return "ERROR"
	}
}

// Opposite returns the reverse direction: the opposite of North is South,
// of SouthEast is NorthWest, and so on.
func (co CardinalOrdinalDirection) Opposite() CardinalOrdinalDirection {
	return (co + 4) % 8
}

func ParseCardinalOrdinalDirection(s string) (CardinalOrdinalDirection, error) {
	for co := North; co <= NorthWest; co++ {
		if s == co.ShortString() {
			return co, nil
		}
	}
	return CardinalOrdinalDirection(0), fmt.Errorf("invalid direction")
}

// NamedBearing classifies a bearing in degrees (0 is due north, 90 due
// east, and so on) into the closest of the eight compass directions: N for
// bearings in (-22.5, 22.5], NE for (22.5, 67.5], etc.
func NamedBearing(bearing float32) CardinalOrdinalDirection {
	b := NormalizeHeading(bearing)
	switch {
	case b <= 22.5 || b > 337.5:
		return North
	case b <= 67.5:
		return NorthEast
	case b <= 112.5:
		return East
	case b <= 157.5:
		return SouthEast
	case b <= 202.5:
		return South
	case b <= 247.5:
		return SouthWest
	case b <= 292.5:
		return West
	default:
		return NorthWest
	}
}

// Reduces it to [0,360).
func NormalizeHeading(h float32) float32 {
	if h < 0 {
		return 360 - NormalizeHeading(-h)
	}
	return Mod(h, 360)
}

func OppositeHeading(h float32) float32 {
	return NormalizeHeading(h + 180)
}

// HeadingDifference returns the minimum difference between two
// headings. (i.e., the result is always in the range [0,180].)
func HeadingDifference(a float32, b float32) float32 {
	var d float32
	if a > b {
		d = a - b
	} else {
		d = b - a
	}
	if d > 180 {
		d = 360 - d
	}
	return d
}

// BracketingAngles returns the two grid-aligned angles, out of 0, ±45,
// ±90, ±135, and 180, that bracket a bearing given in the signed range
// (-180, 180]. A bearing resting exactly on one of the eight angles is
// treated as the lower edge of the sector above it, so the bearing itself
// is always the first angle returned in that case.
func BracketingAngles(bearing float32) (first, second float32) {
	if bearing > 0 {
		switch {
		case bearing < 45:
			return 0, 45
		case bearing < 90:
			return 45, 90
		case bearing < 135:
			return 90, 135
		default:
			return 135, 180
		}
	}
	switch {
	case bearing > -45:
		return 0, -45
	case bearing > -90:
		return -45, -90
	case bearing > -135:
		return -90, -135
	default:
		return -135, -180
	}
}

// EuclideanBearing returns the bearing in degrees from grid cell (x1, y1)
// to (x2, y2), where y decreases to the north. The result is in (-180,
// 180]: 0 is due north, 90 due east, 180 due south, and negative values
// are west of north.
func EuclideanBearing(x1, y1, x2, y2 int) float32 {
	// atan2() measures w.r.t. the +x axis with angles positive
	// counter-clockwise; we want to measure w.r.t. north (-y, since y
	// grows southward) with positive angles clockwise. Passing (dx, -dy)
	// gives exactly that.
	dx := float32(x2 - x1)
	dy := float32(y2 - y1)
	return Degrees(Atan2(dx, -dy))
}

// EuclideanDistance returns the straight-line distance between two grid
// cells, in cells.
func EuclideanDistance(x1, y1, x2, y2 int) float32 {
	return Hypot(float32(x2-x1), float32(y2-y1))
}
