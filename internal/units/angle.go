package units

import (
	"fmt"
	"math"
	"strings"
)

// Angular rate unit constants
const (
	RadPerSec = "rad/s"
	DegPerSec = "deg/s"
	RPS       = "rps" // revolutions per second
	RPM       = "rpm" // revolutions per minute
)

// ValidAngularUnits contains all valid angular rate unit values
var ValidAngularUnits = []string{RadPerSec, DegPerSec, RPS, RPM}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// AngularToRadPerSec converts an angular rate in the given units to rad/s.
func AngularToRadPerSec(rate float64, unit string) (float64, error) {
	switch unit {
	case RadPerSec:
		return rate, nil
	case DegPerSec:
		return DegToRad(rate), nil
	case RPS:
		return rate * 2 * math.Pi, nil
	case RPM:
		return rate * 2 * math.Pi / 60, nil
	default:
		return 0, fmt.Errorf("unknown angular unit %q (valid: %s)", unit, strings.Join(ValidAngularUnits, ", "))
	}
}

// WrapAngle maps an angle in radians to (-π, π].
// Non-finite input is returned unchanged.
func WrapAngle(rad float64) float64 {
	if math.IsNaN(rad) || math.IsInf(rad, 0) {
		return rad
	}
	w := math.Remainder(rad, 2*math.Pi)
	if w <= -math.Pi {
		w += 2 * math.Pi
	}
	return w
}
