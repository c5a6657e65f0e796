// danger/field.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package danger computes a time-indexed collision-risk field over a
// discretized 2D airspace for a single aircraft, used to steer a path
// planner away from other aircraft's predicted positions.
//
// A Field is a sequence of Grids, one per second from lookBehind seconds
// in the past to lookAhead seconds in the future. To find the risk
// associated with position (10, 7) four seconds from now, call
// field.RiskAt(10, 7, 4).
package danger

import (
	"fmt"
	"slices"

	"github.com/brunoga/deep"

	"github.com/uaswarm/dangergrid/aviation"
)

// Field is the danger lattice: one Grid per second offset in
// [-lookBehind, lookAhead], all sharing identical dimensions, plus the
// per-offset attenuation weights. A field is built for a single owner
// aircraft, which contributes no risk to it.
type Field struct {
	cfg Config

	// slices[t+cfg.LookBehind] is the grid for time offset t.
	slices []*Grid

	// ratings[t+cfg.LookBehind] scales raw projected risk at offset t.
	ratings []float32

	// distanceMap and distanceComputed record the distance-cost blend;
	// see distance.go.
	distanceMap      *Grid
	distanceComputed bool
}

// NewField builds a field covering a width x height area at the given
// resolution and fully computes the risk contributed by every aircraft in
// the snapshot other than owner. The snapshot is read-only to the engine;
// construction completes synchronously and the result never changes until
// it is discarded. Fields for the next planning cycle are rebuilt from
// scratch rather than updated.
func NewField(width, height, resolution float32, aircraft []aviation.Aircraft, owner aviation.PlaneID, cfg Config) *Field {
	return NewFieldFromGrid(NewGrid(width, height, resolution, cfg.PlaneDanger), aircraft, owner, cfg)
}

// NewFieldFromGrid is NewField with the area taken from an already
// configured grid template. The template itself is not retained.
func NewFieldFromGrid(template *Grid, aircraft []aviation.Aircraft, owner aviation.PlaneID, cfg Config) *Field {
	if cfg.LookAhead < 1 || cfg.LookBehind < 0 {
		panic(fmt.Sprintf("danger: invalid look ahead %d / look behind %d",
			cfg.LookAhead, cfg.LookBehind))
	}
	if cfg.Attenuation == nil {
		cfg.Attenuation = FlatAttenuation(cfg.PlaneDanger)
	}

	f := &Field{cfg: cfg}
	for i := 0; i <= cfg.LookAhead+cfg.LookBehind; i++ {
		f.slices = append(f.slices,
			NewGrid(template.Width(), template.Height(), template.Resolution(), cfg.PlaneDanger))
		f.ratings = append(f.ratings, cfg.Attenuation(i-cfg.LookBehind))
	}

	f.fill(aircraft, owner)
	return f
}

// Copy returns a deep copy of the field; the copy shares no state with the
// source, so one computed field can be handed to multiple consumers or
// snapshotted before a distance-cost blend.
func (f *Field) Copy() *Field {
	c := *f
	c.slices = deep.MustCopy(f.slices)
	c.ratings = slices.Clone(f.ratings)
	if f.distanceMap != nil {
		c.distanceMap = deep.MustCopy(f.distanceMap)
	}
	return &c
}

// fill does virtually all the important work: for each non-owner
// aircraft it marks the aircraft's current square occupied in the t=0
// slice, projects the aircraft's future positions, and writes each
// attenuated estimate plus its buffer spread into the slice for its
// second.
func (f *Field) fill(aircraft []aviation.Aircraft, owner aviation.PlaneID) {
	for _, ac := range aircraft {
		if ac.ID == owner {
			continue
		}

		now := f.slices[f.cfg.LookBehind]
		if now.Contains(ac.Location[0], ac.Location[1]) {
			now.AddOccupant(ac.Location[0], ac.Location[1], ac.ID)
		}

		est := projectTrajectory(ac, f.cfg)

		t := 1
		for _, e := range est {
			if t > f.cfg.LookAhead {
				break
			}
			if e.IsSentinel() {
				t++
				continue
			}
			if !now.Contains(e.X, e.Y) {
				// Off the grid; skipped, but only sentinels advance t.
				continue
			}
			d := e.Risk * f.adjustDanger(t)
			sl := f.slices[t+f.cfg.LookBehind]
			sl.AddRisk(e.X, e.Y, d)
			spreadBuffer(sl, e.X, e.Y, d, ac.Bearing, f.cfg)
		}

		// The aircraft reached its goal before the horizon: it is
		// expected to hold there, so its destination square stays
		// dangerous for the remaining seconds.
		if len(est) > 0 && t <= f.cfg.LookAhead {
			dest := ac.FinalDestination
			if now.Contains(dest[0], dest[1]) {
				for ; t <= f.cfg.LookAhead; t++ {
					d := f.cfg.PlaneDanger * f.adjustDanger(t)
					sl := f.slices[t+f.cfg.LookBehind]
					sl.AddRisk(dest[0], dest[1], d)
					spreadBuffer(sl, dest[0], dest[1], d, ac.Bearing, f.cfg)
				}
			}
		}
	}
}

// adjustDanger returns the attenuation weight for a time offset; raw
// projected risk is multiplied by it to account for the uncertainty of
// predicting that far out.
func (f *Field) adjustDanger(seconds int) float32 {
	return f.ratings[seconds+f.cfg.LookBehind]
}

func (f *Field) checkOffset(seconds int) {
	if seconds < -f.cfg.LookBehind || seconds > f.cfg.LookAhead {
		panic(fmt.Sprintf("danger: time offset %d outside [%d, %d]",
			seconds, -f.cfg.LookBehind, f.cfg.LookAhead))
	}
}

// RiskAt returns the risk rating of square (x, y) at the given number of
// seconds in the future (negative for the past). The offset must lie in
// [-lookBehind, lookAhead] and the square must be on the grid.
func (f *Field) RiskAt(x, y, seconds int) float32 {
	f.checkOffset(seconds)
	return f.slices[seconds+f.cfg.LookBehind].RiskAt(x, y)
}

// At is shorthand for RiskAt.
func (f *Field) At(x, y, seconds int) float32 {
	return f.RiskAt(x, y, seconds)
}

// AddRiskAt accumulates risk into a square at a time offset.
func (f *Field) AddRiskAt(x, y, seconds int, risk float32) {
	f.checkOffset(seconds)
	f.slices[seconds+f.cfg.LookBehind].AddRisk(x, y, risk)
}

// SetRiskAt overwrites the risk of a square at a time offset.
func (f *Field) SetRiskAt(x, y, seconds int, risk float32) {
	f.checkOffset(seconds)
	f.slices[seconds+f.cfg.LookBehind].SetRisk(x, y, risk)
}

// Slice returns the grid for a time offset. The grid is owned by the
// field; callers must not retain it across a rebuild.
func (f *Field) Slice(seconds int) *Grid {
	f.checkOffset(seconds)
	return f.slices[seconds+f.cfg.LookBehind]
}

func (f *Field) WidthInCells() int      { return f.slices[0].WidthInCells() }
func (f *Field) HeightInCells() int     { return f.slices[0].HeightInCells() }
func (f *Field) Resolution() float32    { return f.slices[0].Resolution() }
func (f *Field) LookAheadSeconds() int  { return f.cfg.LookAhead }
func (f *Field) LookBehindSeconds() int { return f.cfg.LookBehind }
