// danger/grid.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package danger

import (
	"fmt"
	"io"
	"slices"

	"github.com/uaswarm/dangergrid/aviation"
	"github.com/uaswarm/dangergrid/math"
)

// A Cell is one square of airspace at one instant: its accumulated risk
// rating and the aircraft currently inside it.
type Cell struct {
	Risk      float32
	Occupants []aviation.PlaneID
}

// Grid is a two-dimensional array of Cells covering the flyable area.
// Width and height are in physical units (meters, typically); resolution
// is the size of a single square in the same units. Cell (0, 0) is the
// upper-left corner: x grows eastward, y grows southward.
type Grid struct {
	cells        [][]Cell // indexed [x][y]
	width        float32
	height       float32
	resolution   float32
	occupiedRisk float32
}

// NewGrid returns a zeroed grid for a field of the given physical
// dimensions. The cell counts are the dimensions divided by the
// resolution, rounded up, so the grid always covers the whole field.
// Panics if any dimension or the resolution is not positive. occupiedRisk
// is the rating assigned to cells that AddOccupant marks.
func NewGrid(width, height, resolution, occupiedRisk float32) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("danger: invalid grid dimensions %v x %v", width, height))
	}
	if resolution <= 0 {
		panic(fmt.Sprintf("danger: invalid grid resolution %v", resolution))
	}

	// The +0.1 keeps an exact integer ratio from landing just below the
	// integer due to float rounding.
	w := int(math.Ceil(width/resolution) + 0.1)
	h := int(math.Ceil(height/resolution) + 0.1)

	cells := make([][]Cell, w)
	for x := range cells {
		cells[x] = make([]Cell, h)
	}
	return &Grid{
		cells:        cells,
		width:        width,
		height:       height,
		resolution:   resolution,
		occupiedRisk: occupiedRisk,
	}
}

func (g *Grid) checkBounds(x, y int) {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("danger: cell (%d, %d) outside %d x %d grid", x, y,
			g.WidthInCells(), g.HeightInCells()))
	}
}

// Contains reports whether (x, y) is a valid cell.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < len(g.cells) && y >= 0 && y < len(g.cells[0])
}

// OccupantsAt returns the IDs of the aircraft in the given cell. Callers
// are expected to bounds-check; out-of-range access panics.
func (g *Grid) OccupantsAt(x, y int) []aviation.PlaneID {
	g.checkBounds(x, y)
	return g.cells[x][y].Occupants
}

// AddOccupant records an aircraft in a cell and unconditionally sets the
// cell's risk to the occupied rating: any square holding an aircraft is
// maximally dangerous right now.
func (g *Grid) AddOccupant(x, y int, id aviation.PlaneID) {
	g.checkBounds(x, y)
	c := &g.cells[x][y]
	if !slices.Contains(c.Occupants, id) {
		c.Occupants = append(c.Occupants, id)
	}
	c.Risk = g.occupiedRisk
}

// RiskAt returns the risk rating of a cell. Out-of-range access panics.
func (g *Grid) RiskAt(x, y int) float32 {
	g.checkBounds(x, y)
	return g.cells[x][y].Risk
}

// SetRisk overwrites a cell's risk rating.
func (g *Grid) SetRisk(x, y int, risk float32) {
	g.checkBounds(x, y)
	g.cells[x][y].Risk = risk
}

// AddRisk accumulates risk into a cell. Negative risk is a contract
// violation and panics.
func (g *Grid) AddRisk(x, y int, risk float32) {
	g.checkBounds(x, y)
	if risk < 0 {
		panic(fmt.Sprintf("danger: negative risk %v added at (%d, %d)", risk, x, y))
	}
	g.cells[x][y].Risk += risk
}

// SafelyAddRisk accumulates risk into a cell, silently ignoring
// coordinates outside the grid. Projected buffer cells routinely fall off
// the edge, so this is the accessor the neighbor spreader uses.
func (g *Grid) SafelyAddRisk(x, y int, risk float32) {
	if !g.Contains(x, y) {
		return
	}
	g.cells[x][y].Risk += risk
}

func (g *Grid) WidthInCells() int   { return len(g.cells) }
func (g *Grid) HeightInCells() int  { return len(g.cells[0]) }
func (g *Grid) Width() float32      { return g.width }
func (g *Grid) Height() float32     { return g.height }
func (g *Grid) Resolution() float32 { return g.resolution }

// Dump writes a human-readable rendering of the grid, top row first:
// risk ratings scaled to two digits, or occupant counts if occupants is
// true. Troubleshooting only; not part of the functional contract.
func (g *Grid) Dump(w io.Writer, occupants bool) {
	for y := 0; y < g.HeightInCells(); y++ {
		for x := 0; x < g.WidthInCells(); x++ {
			c := g.cells[x][y]
			switch {
			case occupants:
				fmt.Fprintf(w, "%2d ", len(c.Occupants))
			case c.Risk < negligibleRisk && c.Risk > -negligibleRisk:
				fmt.Fprint(w, " - ")
			default:
				fmt.Fprintf(w, "%2.0f ", c.Risk*100)
			}
		}
		fmt.Fprintln(w)
	}
}
