// cmd/dangersim/main.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// dangersim reads a course file, builds the predicted danger field for one
// plane, and prints grid slices so the prediction can be eyeballed.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/uaswarm/dangergrid/aviation"
	"github.com/uaswarm/dangergrid/danger"
	"github.com/uaswarm/dangergrid/log"
	"github.com/uaswarm/dangergrid/util"
)

var (
	resolution float32
	owner      int
	lookAhead  int
	lookBehind int
	dumpOffset int
	distance   bool
	logLevel   string
	logDir     string
)

var rootCmd = &cobra.Command{
	Use:   "dangersim <course-file>",
	Short: "Build and inspect the danger field predicted from a course file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lg := log.New(logLevel, logDir)

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		var e util.ErrorLogger
		courses := aviation.ReadCourses(f, &e)
		if e.HaveErrors() {
			e.PrintErrors(lg)
			return fmt.Errorf("%s: errors parsing course file", args[0])
		}
		lg.Infof("%s: read %d courses", args[0], len(courses))

		geom := aviation.Field500m()
		aircraft := make([]aviation.Aircraft, len(courses))
		for i, c := range courses {
			aircraft[i] = c.Aircraft(geom.UpperLeft, resolution)
		}

		cfg := danger.DefaultConfig()
		cfg.LookAhead = lookAhead
		cfg.LookBehind = lookBehind

		// One field per aircraft; each excludes its own plane.
		var ownerField *danger.Field
		var ownerAc aviation.Aircraft
		start := time.Now()
		for _, ac := range aircraft {
			f := danger.NewField(geom.WidthMeters(), geom.HeightMeters(), resolution,
				aircraft, ac.ID, cfg)
			lg.Info("built danger field",
				"plane", int(ac.ID),
				"location", ac.Location,
				"peak", peakRisk(f))
			if ac.ID == aviation.PlaneID(owner) {
				ownerField, ownerAc = f, ac
			}
		}
		lg.Info("all fields built",
			"planes", len(aircraft),
			"elapsed", time.Since(start))

		if ownerField == nil {
			return fmt.Errorf("plane %d not in course file", owner)
		}

		if distance {
			gx, gy := ownerAc.FinalDestination[0], ownerAc.FinalDestination[1]
			if err := ownerField.ComputeDistanceCosts(gx, gy); err != nil {
				return err
			}
			lg.Infof("blended distance costs toward (%d, %d)", gx, gy)
		}

		fmt.Printf("plane %d, t=%+d seconds:\n", owner, dumpOffset)
		ownerField.Slice(dumpOffset).Dump(os.Stdout, false)
		return nil
	},
}

func init() {
	def := danger.DefaultConfig()
	rootCmd.Flags().Float32Var(&resolution, "resolution", 10, "grid resolution in meters")
	rootCmd.Flags().IntVar(&owner, "owner", 0, "plane whose field to build (it is excluded from its own field)")
	rootCmd.Flags().IntVar(&lookAhead, "look-ahead", def.LookAhead, "seconds of future to predict")
	rootCmd.Flags().IntVar(&lookBehind, "look-behind", def.LookBehind, "seconds of past to retain")
	rootCmd.Flags().IntVar(&dumpOffset, "dump", 1, "time offset in seconds of the slice to print")
	rootCmd.Flags().BoolVar(&distance, "distance", false, "blend distance-to-goal costs into the field first")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "logging level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&logDir, "log-dir", "", "directory for log files")
}

// peakRisk scans the whole lattice for its highest rating.
func peakRisk(f *danger.Field) float32 {
	var peak float32
	for t := -f.LookBehindSeconds(); t <= f.LookAheadSeconds(); t++ {
		for x := 0; x < f.WidthInCells(); x++ {
			for y := 0; y < f.HeightInCells(); y++ {
				peak = max(peak, f.RiskAt(x, y, t))
			}
		}
	}
	return peak
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
