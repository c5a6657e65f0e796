// danger/estimate.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package danger

// An Estimate is a single projected grid cell with the fraction of an
// aircraft's risk mass assigned to it, or a sentinel marking that one
// second has elapsed in the projection. Sentinels are control tokens for
// the field-filling loop; they are never written into a grid.
type Estimate struct {
	X, Y int
	Risk float32
}

const sentinelRisk = -1

func sentinel() Estimate { return Estimate{0, 0, sentinelRisk} }

// IsSentinel reports whether the estimate is a time marker rather than a
// risk contribution.
func (e Estimate) IsSentinel() bool { return e.Risk < 0 }
