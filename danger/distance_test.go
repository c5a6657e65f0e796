// danger/distance_test.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package danger

import (
	"testing"

	"github.com/uaswarm/dangergrid/math"
)

func TestComputeDistanceCosts(t *testing.T) {
	f := NewField(100, 100, 10, nil, 0, DefaultConfig())
	f.AddRiskAt(2, 2, 0, 0.5)

	if err := f.ComputeDistanceCosts(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A risk-free square becomes pure distance to the goal, in every
	// slice.
	for _, s := range []int{-2, 0, 7, 20} {
		if r := f.RiskAt(3, 4, s); r != 5 {
			t.Errorf("t=%d: risk-free square cost %v, expected 5", s, r)
		}
	}
	if r := f.RiskAt(0, 0, 0); r != 0 {
		t.Errorf("goal square cost %v, expected 0", r)
	}

	// A risky square becomes risk + distance.
	want := 0.5 + math.EuclideanDistance(2, 2, 0, 0)
	if r := f.RiskAt(2, 2, 0); math.Abs(r-want) > 1e-5 {
		t.Errorf("risky square cost %v, expected %v", r, want)
	}

	if d := f.DistanceCostAt(3, 4); d != 5 {
		t.Errorf("DistanceCostAt(3, 4) = %v, expected 5", d)
	}
}

func TestComputeDistanceCostsAdjust(t *testing.T) {
	f := NewField(100, 100, 10, nil, 0, DefaultConfig())
	f.AddRiskAt(2, 2, 0, 0.5)

	if err := f.ComputeDistanceCosts(0, 0, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 2*0.5 + math.EuclideanDistance(2, 2, 0, 0)
	if r := f.RiskAt(2, 2, 0); math.Abs(r-want) > 1e-5 {
		t.Errorf("adjusted cost %v, expected %v", r, want)
	}
}

func TestComputeDistanceCostsOnce(t *testing.T) {
	f := NewField(100, 100, 10, nil, 0, DefaultConfig())

	if err := f.ComputeDistanceCosts(0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.ComputeDistanceCosts(0, 0); err == nil {
		t.Errorf("expected an error blending a second time")
	}

	// A fresh copy taken before the blend is unaffected; copies taken
	// after inherit the blended-already state.
	c := f.Copy()
	if err := c.ComputeDistanceCosts(0, 0); err == nil {
		t.Errorf("expected an error blending a copy of a blended field")
	}
}

// CalculateDistanceCosts deliberately reproduces the direct blend,
// including its hazard: calling it twice blends the already-blended
// surface, scaling every cost by the danger adjust again.
func TestCalculateDistanceCostsCompound(t *testing.T) {
	f := NewField(100, 100, 10, nil, 0, DefaultConfig())
	adjust := float32(f.WidthInCells()+f.HeightInCells()) / 4

	f.CalculateDistanceCosts(0, 0)
	first := f.RiskAt(3, 4, -2)
	if first != 5 {
		t.Fatalf("first blend cost %v, expected 5", first)
	}

	f.CalculateDistanceCosts(0, 0)
	want := adjust*first + 5
	if r := f.RiskAt(3, 4, -2); math.Abs(r-want) > 1e-4 {
		t.Errorf("second blend cost %v, expected %v", r, want)
	}
}

func TestCalculateDistanceCostsRisk(t *testing.T) {
	f := NewField(100, 100, 10, nil, 0, DefaultConfig())
	f.AddRiskAt(1, 0, -2, 0.2)
	adjust := float32(f.WidthInCells()+f.HeightInCells()) / 4

	f.CalculateDistanceCosts(0, 0)
	want := adjust*0.2 + 1
	if r := f.RiskAt(1, 0, -2); math.Abs(r-want) > 1e-5 {
		t.Errorf("risky square cost %v, expected %v", r, want)
	}
}

func TestDistanceCostBeforeComputePanics(t *testing.T) {
	f := NewField(100, 100, 10, nil, 0, DefaultConfig())
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic querying distance costs before computing them")
		}
	}()
	f.DistanceCostAt(1, 1)
}
