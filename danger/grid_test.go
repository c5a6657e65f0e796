// danger/grid_test.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package danger

import (
	"strings"
	"testing"
)

func TestNewGridDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height float32
		resolution    float32
		wantW, wantH  int
	}{
		{"exact fit", 100, 100, 10, 10, 10},
		{"partial cell rounds up", 95, 92, 10, 10, 10},
		{"sub-cell field", 5, 5, 10, 1, 1},
		{"non-square", 500, 465, 10, 50, 47},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.width, tt.height, tt.resolution, 0.98)
			if g.WidthInCells() != tt.wantW || g.HeightInCells() != tt.wantH {
				t.Errorf("got %d x %d cells, expected %d x %d",
					g.WidthInCells(), g.HeightInCells(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestNewGridPanics(t *testing.T) {
	tests := []struct {
		name          string
		width, height float32
		resolution    float32
	}{
		{"zero width", 0, 100, 10},
		{"negative height", 100, -1, 10},
		{"zero resolution", 100, 100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic")
				}
			}()
			NewGrid(tt.width, tt.height, tt.resolution, 0.98)
		})
	}
}

func TestGridRisk(t *testing.T) {
	g := NewGrid(100, 100, 10, 0.98)

	if r := g.RiskAt(3, 4); r != 0 {
		t.Errorf("fresh grid has risk %v at (3, 4), expected 0", r)
	}

	g.AddRisk(3, 4, 0.25)
	g.AddRisk(3, 4, 0.5)
	if r := g.RiskAt(3, 4); r != 0.75 {
		t.Errorf("accumulated risk %v, expected 0.75", r)
	}

	g.SetRisk(3, 4, 0.1)
	if r := g.RiskAt(3, 4); r != 0.1 {
		t.Errorf("risk after SetRisk %v, expected 0.1", r)
	}
}

func TestGridNegativeRiskPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic adding negative risk")
		}
	}()
	NewGrid(100, 100, 10, 0.98).AddRisk(0, 0, -0.1)
}

func TestGridOutOfRangePanics(t *testing.T) {
	g := NewGrid(100, 100, 10, 0.98)
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("(%d, %d): expected panic", xy[0], xy[1])
				}
			}()
			g.RiskAt(xy[0], xy[1])
		}()
	}
}

func TestSafelyAddRisk(t *testing.T) {
	g := NewGrid(100, 100, 10, 0.98)

	// Off-grid writes are silently dropped.
	g.SafelyAddRisk(-1, 5, 0.3)
	g.SafelyAddRisk(10, 5, 0.3)
	g.SafelyAddRisk(5, -1, 0.3)
	g.SafelyAddRisk(5, 10, 0.3)

	g.SafelyAddRisk(5, 5, 0.3)
	if r := g.RiskAt(5, 5); r != 0.3 {
		t.Errorf("in-range SafelyAddRisk gave %v, expected 0.3", r)
	}
	for x := 0; x < g.WidthInCells(); x++ {
		for y := 0; y < g.HeightInCells(); y++ {
			if (x != 5 || y != 5) && g.RiskAt(x, y) != 0 {
				t.Errorf("unexpected risk %v at (%d, %d)", g.RiskAt(x, y), x, y)
			}
		}
	}
}

func TestAddOccupant(t *testing.T) {
	g := NewGrid(100, 100, 10, 0.98)

	g.AddOccupant(2, 7, 12)
	g.AddOccupant(2, 7, 12) // again; occupants are a set
	g.AddOccupant(2, 7, 3)

	occ := g.OccupantsAt(2, 7)
	if len(occ) != 2 {
		t.Errorf("got %d occupants, expected 2: %v", len(occ), occ)
	}
	if r := g.RiskAt(2, 7); r != 0.98 {
		t.Errorf("occupied cell risk %v, expected 0.98", r)
	}
	if occ := g.OccupantsAt(3, 7); len(occ) != 0 {
		t.Errorf("empty cell has occupants %v", occ)
	}
}

func TestGridDump(t *testing.T) {
	g := NewGrid(30, 20, 10, 0.98)
	g.SetRisk(1, 0, 0.5)

	var sb strings.Builder
	g.Dump(&sb, false)
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d rows, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "50") {
		t.Errorf("top row %q does not show the 0.5 cell", lines[0])
	}
	if !strings.Contains(lines[1], "-") {
		t.Errorf("bottom row %q does not render empty cells", lines[1])
	}
}
