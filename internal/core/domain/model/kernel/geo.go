package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const (
	// GeoLatitudeMin is the minimum valid latitude in degrees.
	GeoLatitudeMin float64 = -90
	// GeoLatitudeMax is the maximum valid latitude in degrees.
	GeoLatitudeMax float64 = 90
	// GeoLongitudeMin is the minimum valid longitude in degrees.
	GeoLongitudeMin float64 = -180
	// GeoLongitudeMax is the maximum valid longitude in degrees.
	GeoLongitudeMax float64 = 180
)

// ErrGeoPointIsNotConstructed is returned when validating a GeoPoint that was
// not created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding a GPS position in degrees.
// Coordinates are validated against the WGS84 bounds. (0, 0) is a legal
// position: the tracking view relies on zero-valued coordinates as a literal
// default, not as an absence signal.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(12.9716, 77.5946)
//	if err != nil {
//	    // handle out-of-range coordinates
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint from latitude and longitude in degrees.
// Returns an out-of-range error when either coordinate is outside its bounds.
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := point.setLatitude(latitude); err != nil {
		return GeoPoint{}, err
	}
	if err := point.setLongitude(longitude); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created through NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual reports whether two points hold the same coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// String returns a "GeoPoint(lat,lon)" representation for logging.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.latitude, p.longitude)
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < GeoLatitudeMin || latitude > GeoLatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, GeoLatitudeMin, GeoLatitudeMax)
	}
	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < GeoLongitudeMin || longitude > GeoLongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, GeoLongitudeMin, GeoLongitudeMax)
	}
	p.longitude = longitude
	return nil
}
