package diffdrive

import (
	"fmt"
	"math"

	"github.com/banshee-data/diffdrive/internal/config"
	"github.com/banshee-data/diffdrive/internal/monitoring"
)

// ICC is the instantaneous center of curvature. Valid is false when the
// vehicle moves in a straight line and Center is then meaningless.
type ICC struct {
	Center Point
	Valid  bool
}

// DegeneracyPolicy decides when a velocity pair counts as straight-line
// motion.
type DegeneracyPolicy int

const (
	// PolicyExact treats motion as straight only when v/w is not finite.
	// A tiny non-zero angular velocity gives a huge but finite radius and is
	// propagated as an arc, with the cancellation error that implies.
	PolicyExact DegeneracyPolicy = iota
	// PolicyThreshold additionally treats |w| < MinAngularVelocity as
	// straight. Heading does not change on that branch.
	PolicyThreshold
)

func (p DegeneracyPolicy) String() string {
	switch p {
	case PolicyExact:
		return config.PolicyExact
	case PolicyThreshold:
		return config.PolicyThreshold
	default:
		return fmt.Sprintf("DegeneracyPolicy(%d)", int(p))
	}
}

// Config holds the tunable parts of the model.
type Config struct {
	Policy             DegeneracyPolicy
	MinAngularVelocity float64 // rad/s, PolicyThreshold only
}

// DefaultConfig returns the exact policy with the default threshold.
func DefaultConfig() Config {
	return ConfigFromKinematics(config.DefaultKinematicsConfig())
}

// ConfigFromKinematics builds a Config from a loaded KinematicsConfig.
func ConfigFromKinematics(cfg *config.KinematicsConfig) Config {
	out := Config{
		Policy:             PolicyExact,
		MinAngularVelocity: cfg.GetMinAngularVelocity(),
	}
	if cfg.GetDegeneracyPolicy() == config.PolicyThreshold {
		out.Policy = PolicyThreshold
	}
	return out
}

// LoadConfig reads a kinematics JSON file (see
// config/kinematics.defaults.json) and returns the Config it describes.
// Fields missing from the file keep their defaults.
func LoadConfig(path string) (Config, error) {
	kc, err := config.LoadKinematicsConfig(path)
	if err != nil {
		return Config{}, fmt.Errorf("loading kinematics config: %w", err)
	}
	return ConfigFromKinematics(kc), nil
}

// normalised maps unknown policies to PolicyExact and clears a negative or
// NaN threshold.
func (c Config) normalised() Config {
	if c.Policy != PolicyExact && c.Policy != PolicyThreshold {
		c.Policy = PolicyExact
	}
	if !(c.MinAngularVelocity >= 0) {
		c.MinAngularVelocity = 0
	}
	return c
}

// recomputeICC derives the ICC from the current pose and velocities.
func (s *VehicleState) recomputeICC() {
	r := s.linearVelocity / s.angularVelocity
	if s.straight(r) {
		s.icc = ICC{}
		return
	}
	s.icc = ICC{
		Center: Point{
			X: s.x - r*math.Sin(s.yaw),
			Y: s.y + r*math.Cos(s.yaw),
		},
		Valid: true,
	}
}

// straight reports whether radius r means there is no ICC.
func (s *VehicleState) straight(r float64) bool {
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return true
	}
	if s.cfg.Policy == PolicyThreshold && math.Abs(s.angularVelocity) < s.cfg.MinAngularVelocity {
		if monitoring.DebugEnabled() {
			monitoring.Debugf("diffdrive: |w|=%g below threshold %g, treating as straight (r=%g)",
				math.Abs(s.angularVelocity), s.cfg.MinAngularVelocity, r)
		}
		return true
	}
	return false
}
