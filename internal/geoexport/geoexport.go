// Package geoexport anchors a locator's local (x,y,z) coordinate frame
// to a geodetic position and converts fixes between the two, via
// golang/geo and coordconv UTM plumbing.
package geoexport

import (
	"fmt"
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"

	"github.com/wathne/datbac-2025/internal/aod"
)

// Anchor ties the locator's local meter-scale origin to a UTM
// coordinate, so that Vec3 fixes produced by the core package can be
// exported as latitude/longitude.
type Anchor struct {
	Zone       int
	Hemisphere coordconv.Hemisphere
	EastingM   float64
	NorthingM  float64
}

// NewAnchorFromGeodetic builds an Anchor at the given latitude/longitude
// (decimal degrees), resolving the UTM zone and hemisphere coordconv
// assigns to that point.
func NewAnchorFromGeodetic(latDeg, lonDeg float64) (Anchor, error) {
	latlng := s2.LatLng{
		Lat: s1.Angle(degreesToRadians(latDeg)),
		Lng: s1.Angle(degreesToRadians(lonDeg)),
	}

	utm, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, 0)
	if err != nil {
		return Anchor{}, fmt.Errorf("geoexport: anchor geodetic to UTM: %w", err)
	}

	return Anchor{
		Zone:       utm.Zone,
		Hemisphere: utm.Hemisphere,
		EastingM:   utm.Easting,
		NorthingM:  utm.Northing,
	}, nil
}

// ToGeodetic converts a local fix (east offset, north offset, altitude,
// all in meters) to latitude/longitude in decimal degrees. The local Z
// component passes through unconverted as altitude.
func (a Anchor) ToGeodetic(local aod.Vec3) (latDeg, lonDeg float64, altM float32, err error) {
	utm := coordconv.UTMCoord{
		Zone:       a.Zone,
		Hemisphere: a.Hemisphere,
		Easting:    a.EastingM + float64(local.X),
		Northing:   a.NorthingM + float64(local.Y),
	}

	latlng, convErr := coordconv.DefaultUTMConverter.ConvertToGeodetic(utm)
	if convErr != nil {
		return 0, 0, 0, fmt.Errorf("geoexport: UTM to geodetic: %w", convErr)
	}

	return radiansToDegrees(float64(latlng.Lat)), radiansToDegrees(float64(latlng.Lng)), local.Z, nil
}

// FromGeodetic converts a latitude/longitude/altitude back into the
// anchor's local frame. It is the inverse of ToGeodetic, and round-trips
// to within the anchor zone's UTM projection error.
func (a Anchor) FromGeodetic(latDeg, lonDeg float64, altM float32) (aod.Vec3, error) {
	latlng := s2.LatLng{
		Lat: s1.Angle(degreesToRadians(latDeg)),
		Lng: s1.Angle(degreesToRadians(lonDeg)),
	}

	utm, err := coordconv.DefaultUTMConverter.ConvertFromGeodetic(latlng, 0)
	if err != nil {
		return aod.Vec3{}, fmt.Errorf("geoexport: geodetic to UTM: %w", err)
	}
	if utm.Zone != a.Zone || utm.Hemisphere != a.Hemisphere {
		return aod.Vec3{}, fmt.Errorf("geoexport: point falls outside anchor zone %d%c", a.Zone, hemisphereRune(a.Hemisphere))
	}

	return aod.Vec3{
		X: float32(utm.Easting - a.EastingM),
		Y: float32(utm.Northing - a.NorthingM),
		Z: altM,
	}, nil
}

func degreesToRadians(d float64) float64 { return d * math.Pi / 180 }
func radiansToDegrees(r float64) float64 { return r * 180 / math.Pi }

// hemisphereRune renders h as the conventional 'N'/'S' letter.
func hemisphereRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	default:
		return '!'
	}
}
