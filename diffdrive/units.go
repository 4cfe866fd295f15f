package diffdrive

import (
	"fmt"

	"github.com/banshee-data/diffdrive/internal/units"
)

// Linear speed units accepted by SetLinearVelocityIn.
const (
	SpeedMPS  = units.MPS
	SpeedMPH  = units.MPH
	SpeedKMPH = units.KMPH
	SpeedKPH  = units.KPH
)

// Angular rate units accepted by SetAngularVelocityIn.
const (
	AngularRadPerSec = units.RadPerSec
	AngularDegPerSec = units.DegPerSec
	AngularRPS       = units.RPS
	AngularRPM       = units.RPM
)

// SetLinearVelocityIn converts v from the given speed unit to m/s and
// stores it as SetLinearVelocity does. An unknown unit leaves the state
// unchanged.
func (s *VehicleState) SetLinearVelocityIn(v float64, unit string) error {
	mps, err := units.SpeedToMPS(v, unit)
	if err != nil {
		return fmt.Errorf("linear velocity: %w", err)
	}
	s.SetLinearVelocity(mps)
	return nil
}

// LinearVelocityIn returns the commanded linear velocity in the given speed
// unit.
func (s *VehicleState) LinearVelocityIn(unit string) (float64, error) {
	if !units.IsValidSpeedUnit(unit) {
		return 0, fmt.Errorf("linear velocity: unknown speed unit %q (valid: %s)", unit, units.GetValidSpeedUnitsString())
	}
	return units.ConvertSpeed(s.linearVelocity, unit), nil
}

// SetAngularVelocityIn converts w from the given angular unit to rad/s and
// stores it as SetAngularVelocity does. An unknown unit leaves the state
// unchanged.
func (s *VehicleState) SetAngularVelocityIn(w float64, unit string) error {
	radps, err := units.AngularToRadPerSec(w, unit)
	if err != nil {
		return fmt.Errorf("angular velocity: %w", err)
	}
	s.SetAngularVelocity(radps)
	return nil
}

// Wrapped returns p with Yaw mapped to (-π, π]. The state itself never
// wraps its heading; this is for callers that want a bounded angle.
func (p Pose) Wrapped() Pose {
	p.Yaw = units.WrapAngle(p.Yaw)
	return p
}

// YawDegrees returns the heading in degrees, unwrapped.
func (p Pose) YawDegrees() float64 {
	return units.RadToDeg(p.Yaw)
}
