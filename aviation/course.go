// aviation/course.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package aviation

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/uaswarm/dangergrid/math"
	"github.com/uaswarm/dangergrid/rand"
	"github.com/uaswarm/dangergrid/util"
)

// A Waypoint is one point of a course: a lat-long position and an assigned
// altitude in feet. Altitude is carried through the file format but the
// risk field is strictly 2D, so the engine never looks at it.
type Waypoint struct {
	Pos      math.Point2LL
	Altitude float32
}

// A Course is the ordered list of waypoints assigned to one aircraft. The
// first waypoint is the aircraft's starting position.
type Course struct {
	ID        PlaneID
	Waypoints []Waypoint
}

// FieldGeometry anchors a rectangular flyable area on the Earth. Width is
// in degrees of longitude east of the upper-left corner; height is in
// degrees of latitude and is negative, southward, matching the grid's
// y-down convention.
type FieldGeometry struct {
	UpperLeft math.Point2LL
	WidthDeg  float32
	HeightDeg float32
}

// Field500m is the 500 m by 500 m test field all default courses are
// generated on.
func Field500m() FieldGeometry {
	return FieldGeometry{
		UpperLeft: math.Point2LL{-115.808173, 37.244956},
		WidthDeg:  0.005653,
		HeightDeg: -0.004516,
	}
}

// WidthMeters returns the physical width of the field.
func (fg FieldGeometry) WidthMeters() float32 {
	ul := fg.UpperLeft
	return math.Distance2LL(ul, math.Point2LL{ul.Longitude() + fg.WidthDeg, ul.Latitude()})
}

// HeightMeters returns the physical height of the field.
func (fg FieldGeometry) HeightMeters() float32 {
	ul := fg.UpperLeft
	return math.Distance2LL(ul, math.Point2LL{ul.Longitude(), ul.Latitude() + fg.HeightDeg})
}

///////////////////////////////////////////////////////////////////////////
// course files

// ReadCourses parses a course file: '#' begins a comment, blank lines are
// allowed, and every other line is "planeID latitude longitude altitude".
// The first row seen for a plane is its starting position; later rows are
// its waypoints in order. Problems are accumulated in e rather than
// aborting the parse, so one bad row doesn't hide the rest.
func ReadCourses(r io.Reader, e *util.ErrorLogger) []Course {
	defer e.CheckDepth(e.CurrentDepth())

	var order []PlaneID
	byID := make(map[PlaneID]*Course)

	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		e.Push(fmt.Sprintf("line %d", lineno))
		f := strings.Fields(line)
		if len(f) != 4 {
			e.ErrorString("expected \"planeID latitude longitude altitude\", got %d fields", len(f))
			e.Pop()
			continue
		}

		id, err := strconv.Atoi(f[0])
		if err != nil {
			e.ErrorString("plane id %q: %v", f[0], err)
			e.Pop()
			continue
		}
		var vals [3]float64
		ok := true
		for i, s := range f[1:] {
			if vals[i], err = strconv.ParseFloat(s, 32); err != nil {
				e.ErrorString("field %q: %v", s, err)
				ok = false
			}
		}
		e.Pop()
		if !ok {
			continue
		}

		c, found := byID[PlaneID(id)]
		if !found {
			c = &Course{ID: PlaneID(id)}
			byID[PlaneID(id)] = c
			order = append(order, PlaneID(id))
		}
		c.Waypoints = append(c.Waypoints, Waypoint{
			Pos:      math.Point2LL{float32(vals[1]), float32(vals[0])}, // (longitude, latitude)
			Altitude: float32(vals[2]),
		})
	}
	if err := scanner.Err(); err != nil {
		e.Error(err)
	}

	courses := make([]Course, 0, len(order))
	for _, id := range order {
		courses = append(courses, *byID[id])
	}
	return courses
}

// WriteCourses writes courses in the same format ReadCourses accepts:
// all starting positions first so a linear parser can initialize every
// aircraft, then the remaining waypoints clustered by plane.
func WriteCourses(w io.Writer, courses []Course) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# Data format:")
	fmt.Fprintln(bw, "#     planeID latitude longitude altitude")
	fmt.Fprintln(bw, "# A '#' begins a commented line; blank lines are allowed.")
	fmt.Fprintln(bw, "#")
	fmt.Fprintln(bw, "# Files are parsed linearly, so all starting positions come")
	fmt.Fprintln(bw, "# first; waypoints are then clustered by plane ID.")
	fmt.Fprintln(bw)

	row := func(id PlaneID, wp Waypoint) {
		fmt.Fprintf(bw, "%d\t\t%.9f\t%.9f\t%.0f\n", id, wp.Pos.Latitude(),
			wp.Pos.Longitude(), wp.Altitude)
	}

	fmt.Fprintln(bw, "# Starting positions:")
	fmt.Fprintln(bw, "#ID\t\tLat\t\t\tLong\t\t\tAlt")
	for _, c := range courses {
		if len(c.Waypoints) > 0 {
			row(c.ID, c.Waypoints[0])
		}
	}

	for _, c := range courses {
		fmt.Fprintf(bw, "\n# Plane ID == %d\n", c.ID)
		fmt.Fprintln(bw, "#ID\t\tLat\t\t\tLong\t\t\tAlt")
		for _, wp := range c.Waypoints[1:] {
			row(c.ID, wp)
		}
	}

	fmt.Fprintln(bw)
	return bw.Flush()
}

///////////////////////////////////////////////////////////////////////////
// course generation

// GeneratorConfig carries the knobs for random course generation.
// NumWaypoints counts the waypoints beyond each plane's starting position.
type GeneratorConfig struct {
	Seed         int64
	NumPlanes    int
	NumWaypoints int
	MinAltitude  int
	MaxAltitude  int
	Field        FieldGeometry
}

// DefaultGeneratorConfig mirrors the settings the original test courses
// were produced with.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:         803,
		NumPlanes:    32,
		NumWaypoints: 20,
		MinAltitude:  1400,
		MaxAltitude:  1401,
		Field:        Field500m(),
	}
}

// GenerateCourses produces a reproducible random course per plane, with
// every waypoint uniformly distributed over the field.
func GenerateCourses(cfg GeneratorConfig) []Course {
	r := rand.New()
	r.Seed(cfg.Seed)

	randomWaypoint := func() Waypoint {
		ul := cfg.Field.UpperLeft
		alt := cfg.MinAltitude
		if cfg.MaxAltitude > cfg.MinAltitude {
			alt += r.Intn(cfg.MaxAltitude - cfg.MinAltitude)
		}
		return Waypoint{
			Pos: math.Point2LL{
				ul.Longitude() + r.Float32()*cfg.Field.WidthDeg,
				ul.Latitude() + r.Float32()*cfg.Field.HeightDeg,
			},
			Altitude: float32(alt),
		}
	}

	courses := make([]Course, cfg.NumPlanes)
	for i := range courses {
		courses[i].ID = PlaneID(i)
		for j := 0; j <= cfg.NumWaypoints; j++ {
			courses[i].Waypoints = append(courses[i].Waypoints, randomWaypoint())
		}
	}
	return courses
}
