// math/latlong.go
// Copyright(c) 2022-2025 dangergrid contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
)

// EarthRadiusMeters is the mean radius used by the haversine formula.
const EarthRadiusMeters = 6371000

const MetersToFeet = 3.28083989501312
const FeetToMeters = 1 / MetersToFeet

///////////////////////////////////////////////////////////////////////////
// Point2LL

// Point2LL represents a 2D point on the Earth in latitude-longitude.
// Important: 0 (x) is longitude, 1 (y) is latitude
type Point2LL [2]float32

func (p Point2LL) Longitude() float32 {
	return p[0]
}

func (p Point2LL) Latitude() float32 {
	return p[1]
}

// DDString returns the position in decimal degrees, e.g.:
// (37.244956, -115.808173)
func (p Point2LL) DDString() string {
	return fmt.Sprintf("(%f, %f)", p[1], p[0]) // latitude, longitude
}

// Distance2LL returns the haversine distance between two lat-long points,
// in meters.
func Distance2LL(p0, p1 Point2LL) float32 {
	dLat := Radians(p1.Latitude() - p0.Latitude())
	dLong := Radians(p1.Longitude() - p0.Longitude())
	sinDLat := Sin(dLat / 2)
	sinDLong := Sin(dLong / 2)
	a := sinDLat*sinDLat +
		Cos(Radians(p0.Latitude()))*Cos(Radians(p1.Latitude()))*sinDLong*sinDLong
	c := 2 * Atan2(Sqrt(a), Sqrt(1-a))
	return Abs(EarthRadiusMeters * c)
}

// Heading2LL returns the bearing in degrees from p0 to p1: 0 is due north,
// 90 due east, in the signed range (-180, 180].
func Heading2LL(p0, p1 Point2LL) float32 {
	return Degrees(headingInRadians(p0, p1))
}

func headingInRadians(p0, p1 Point2LL) float32 {
	lat0 := Radians(p0.Latitude())
	lat1 := Radians(p1.Latitude())
	dLong := Radians(p1.Longitude() - p0.Longitude())

	y := Sin(dLong) * Cos(lat1)
	x := Cos(lat0)*Sin(lat1) - Sin(lat0)*Cos(lat1)*Cos(dLong)
	return Atan2(y, x)
}

// Displaced2LL returns the point reached by travelling the given distance
// (meters) from p along the given bearing (degrees).
func Displaced2LL(p Point2LL, distanceMeters, bearingDeg float32) Point2LL {
	angDist := distanceMeters / EarthRadiusMeters
	bearing := Radians(bearingDeg)
	lat := Radians(p.Latitude())
	long := Radians(p.Longitude())

	lat2 := SafeASin(Sin(lat)*Cos(angDist) + Cos(lat)*Sin(angDist)*Cos(bearing))
	long2 := long + Atan2(Sin(bearing)*Sin(angDist)*Cos(lat),
		Cos(angDist)-Sin(lat)*Sin(lat2))

	return Point2LL{Degrees(long2), Degrees(lat2)}
}

// LL2GridXY converts a lat-long position to integer grid cell coordinates
// for a field whose (0, 0) cell has upperLeft as its outer corner, with the
// given resolution in meters per cell. x grows eastward and y grows
// southward; positions outside the field map to negative or out-of-range
// cells, which the caller is expected to check.
func LL2GridXY(p, upperLeft Point2LL, resolution float32) (x, y int) {
	// Project onto the field edges so each axis is measured independently;
	// over the few kilometers a field spans the distortion is negligible.
	east := Distance2LL(upperLeft, Point2LL{p.Longitude(), upperLeft.Latitude()})
	south := Distance2LL(upperLeft, Point2LL{upperLeft.Longitude(), p.Latitude()})
	if p.Longitude() < upperLeft.Longitude() {
		east = -east
	}
	if p.Latitude() > upperLeft.Latitude() {
		south = -south
	}
	return int(Floor(east / resolution)), int(Floor(south / resolution))
}
