// cmd/coursegen/main.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// coursegen writes a randomly-generated course file that dangersim (and
// the original flight tests it stands in for) can consume.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/uaswarm/dangergrid/aviation"
	"github.com/uaswarm/dangergrid/math"
)

var (
	seed      int64
	numPlanes int
	waypoints int
	minAlt    int
	maxAlt    int
	output    string

	cornerLat float32
	cornerLon float32
	widthDeg  float32
	heightDeg float32
)

var rootCmd = &cobra.Command{
	Use:   "coursegen",
	Short: "Generate random plane courses over the 500m test field",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := aviation.DefaultGeneratorConfig()
		cfg.Seed = seed
		cfg.NumPlanes = numPlanes
		cfg.NumWaypoints = waypoints
		cfg.MinAltitude = minAlt
		cfg.MaxAltitude = maxAlt
		cfg.Field = aviation.FieldGeometry{
			UpperLeft: math.Point2LL{cornerLon, cornerLat},
			WidthDeg:  widthDeg,
			HeightDeg: heightDeg,
		}

		if cfg.NumPlanes <= 0 {
			return fmt.Errorf("%d: must generate at least one plane", cfg.NumPlanes)
		}
		if cfg.MaxAltitude < cfg.MinAltitude {
			return fmt.Errorf("max altitude %d below min altitude %d", cfg.MaxAltitude, cfg.MinAltitude)
		}

		w := os.Stdout
		if output != "" {
			var err error
			w, err = os.Create(output)
			if err != nil {
				return err
			}
			defer w.Close()
		}

		return aviation.WriteCourses(w, aviation.GenerateCourses(cfg))
	},
}

func init() {
	def := aviation.DefaultGeneratorConfig()
	rootCmd.Flags().Int64Var(&seed, "seed", def.Seed, "random seed")
	rootCmd.Flags().IntVar(&numPlanes, "planes", def.NumPlanes, "number of planes to generate")
	rootCmd.Flags().IntVar(&waypoints, "waypoints", def.NumWaypoints, "waypoints per plane beyond its starting position")
	rootCmd.Flags().IntVar(&minAlt, "min-alt", def.MinAltitude, "minimum waypoint altitude (feet)")
	rootCmd.Flags().IntVar(&maxAlt, "max-alt", def.MaxAltitude, "maximum waypoint altitude (feet)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	rootCmd.Flags().Float32Var(&cornerLat, "lat", def.Field.UpperLeft.Latitude(), "latitude of the field's upper-left corner")
	rootCmd.Flags().Float32Var(&cornerLon, "lon", def.Field.UpperLeft.Longitude(), "longitude of the field's upper-left corner")
	rootCmd.Flags().Float32Var(&widthDeg, "width-deg", def.Field.WidthDeg, "field width in degrees of longitude")
	rootCmd.Flags().Float32Var(&heightDeg, "height-deg", def.Field.HeightDeg, "field height in degrees of latitude (negative, southward)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
