// Package units provides shared constants and conversions for the linear
// and angular velocities fed into the kinematic model. The model itself
// works in metres, seconds and radians.
package units

import (
	"fmt"
	"strings"
)

// Linear speed unit constants
const (
	MPS  = "mps"
	MPH  = "mph"
	KMPH = "kmph"
	KPH  = "kph"
)

// ValidSpeedUnits contains all valid linear speed unit values
var ValidSpeedUnits = []string{MPS, MPH, KMPH, KPH}

const (
	mpsToMPH = 2.2369362920544
	mpsToKPH = 3.6
)

// IsValidSpeedUnit checks if the given unit is in the list of valid speed units
func IsValidSpeedUnit(unit string) bool {
	for _, validUnit := range ValidSpeedUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidSpeedUnitsString returns a comma-separated string of valid speed
// units for error messages
func GetValidSpeedUnitsString() string {
	return strings.Join(ValidSpeedUnits, ", ")
}

// ConvertSpeed converts a speed from metres per second to the target units.
// Unknown units return the input unchanged.
func ConvertSpeed(speedMPS float64, targetUnits string) float64 {
	switch targetUnits {
	case MPH:
		return speedMPS * mpsToMPH
	case KMPH, KPH:
		return speedMPS * mpsToKPH
	default:
		return speedMPS
	}
}

// SpeedToMPS converts a speed in the given units to metres per second.
func SpeedToMPS(speed float64, unit string) (float64, error) {
	switch unit {
	case MPS:
		return speed, nil
	case MPH:
		return speed / mpsToMPH, nil
	case KMPH, KPH:
		return speed / mpsToKPH, nil
	default:
		return 0, fmt.Errorf("unknown speed unit %q (valid: %s)", unit, GetValidSpeedUnitsString())
	}
}
