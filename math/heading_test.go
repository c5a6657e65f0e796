// math/heading_test.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"testing"
)

func TestNamedBearing(t *testing.T) {
	tests := []struct {
		name     string
		bearing  float32
		expected CardinalOrdinalDirection
	}{
		{"due north", 0, North},
		{"north sector upper edge", 22.5, North},
		{"just past north sector", 23, NorthEast},
		{"due northeast", 45, NorthEast},
		{"due east", 90, East},
		{"east sector", 100, East},
		{"due southeast", 135, SouthEast},
		{"due south", 180, South},
		{"signed due south", -180, South},
		{"due southwest", -135, SouthWest},
		{"due west", -90, West},
		{"due northwest", -45, NorthWest},
		{"northwest sector edge", 337.5, NorthWest},
		{"just past northwest sector", 338, North},
		{"negative wraps", -10, North},
		{"beyond full circle", 405, NorthEast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NamedBearing(tt.bearing); got != tt.expected {
				t.Errorf("NamedBearing(%v) = %v, expected %v", tt.bearing, got, tt.expected)
			}
		})
	}
}

func TestBracketingAngles(t *testing.T) {
	tests := []struct {
		bearing       float32
		first, second float32
	}{
		{0, 0, -45},
		{10, 0, 45},
		{45, 45, 90},
		{89, 45, 90},
		{90, 90, 135},
		{135, 135, 180},
		{170, 135, 180},
		{180, 135, 180},
		{-10, 0, -45},
		{-45, -45, -90},
		{-100, -90, -135},
		{-135, -135, -180},
		{-170, -135, -180},
	}

	for _, tt := range tests {
		first, second := BracketingAngles(tt.bearing)
		if first != tt.first || second != tt.second {
			t.Errorf("BracketingAngles(%v) = (%v, %v), expected (%v, %v)",
				tt.bearing, first, second, tt.first, tt.second)
		}
		// The bearing always lies between the two angles.
		lo, hi := min(first, second), max(first, second)
		if tt.bearing < lo || tt.bearing > hi {
			t.Errorf("BracketingAngles(%v) = (%v, %v) does not bracket the bearing",
				tt.bearing, first, second)
		}
	}
}

func TestNormalizeHeading(t *testing.T) {
	tests := []struct {
		h, expected float32
	}{
		{0, 0},
		{90, 90},
		{360, 0},
		{-45, 315},
		{-180, 180},
		{720, 0},
		{-350, 10},
	}
	for _, tt := range tests {
		if got := NormalizeHeading(tt.h); got != tt.expected {
			t.Errorf("NormalizeHeading(%v) = %v, expected %v", tt.h, got, tt.expected)
		}
	}
}

func TestHeadingDifference(t *testing.T) {
	tests := []struct {
		a, b, expected float32
	}{
		{0, 90, 90},
		{90, 0, 90},
		{350, 10, 20},
		{180, 180, 0},
		{0, 180, 180},
	}
	for _, tt := range tests {
		if got := HeadingDifference(tt.a, tt.b); got != tt.expected {
			t.Errorf("HeadingDifference(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestCardinalOrdinalDirection(t *testing.T) {
	for co := North; co <= NorthWest; co++ {
		if got := co.Opposite().Opposite(); got != co {
			t.Errorf("%v: double Opposite() gave %v", co, got)
		}
		parsed, err := ParseCardinalOrdinalDirection(co.ShortString())
		if err != nil {
			t.Errorf("%v: unexpected parse error: %v", co, err)
		} else if parsed != co {
			t.Errorf("%v: parsed back as %v", co, parsed)
		}
	}
	if North.Opposite() != South || SouthEast.Opposite() != NorthWest {
		t.Errorf("Opposite() gave wrong directions")
	}
	if _, err := ParseCardinalOrdinalDirection("NNE"); err == nil {
		t.Errorf("expected error parsing invalid direction")
	}
}

func TestEuclideanBearing(t *testing.T) {
	// y decreases to the north.
	tests := []struct {
		name           string
		x1, y1, x2, y2 int
		expected       float32
	}{
		{"north", 5, 5, 5, 1, 0},
		{"northeast", 5, 5, 6, 4, 45},
		{"east", 5, 5, 9, 5, 90},
		{"southeast", 5, 5, 6, 6, 135},
		{"south", 5, 5, 5, 9, 180},
		{"southwest", 5, 5, 4, 6, -135},
		{"west", 5, 5, 0, 5, -90},
		{"northwest", 9, 9, 0, 0, -45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EuclideanBearing(tt.x1, tt.y1, tt.x2, tt.y2)
			if Abs(got-tt.expected) > 1e-4 {
				t.Errorf("EuclideanBearing(%d, %d, %d, %d) = %v, expected %v",
					tt.x1, tt.y1, tt.x2, tt.y2, got, tt.expected)
			}
		})
	}
}

func TestEuclideanDistance(t *testing.T) {
	if d := EuclideanDistance(0, 0, 3, 4); d != 5 {
		t.Errorf("EuclideanDistance(0, 0, 3, 4) = %v, expected 5", d)
	}
	if d := EuclideanDistance(7, 2, 7, 2); d != 0 {
		t.Errorf("EuclideanDistance of a point to itself = %v, expected 0", d)
	}
}
