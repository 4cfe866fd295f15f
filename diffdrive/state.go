package diffdrive

import "fmt"

// Point is a planar position in world coordinates.
type Point struct {
	X float64
	Y float64
}

// Pose is the vehicle placement in the plane. Yaw is in radians and is
// unbounded: repeated turning accumulates past ±π.
type Pose struct {
	X   float64
	Y   float64
	Yaw float64
}

func (p Pose) String() string {
	return fmt.Sprintf("(x=%.6f, y=%.6f, yaw=%.6f)", p.X, p.Y, p.Yaw)
}

// Motion identifies which propagation branch the current state will take.
type Motion int

const (
	// MotionStraight means there is no ICC; the vehicle translates along its heading.
	MotionStraight Motion = iota
	// MotionArc means the vehicle rotates about its ICC.
	MotionArc
)

func (m Motion) String() string {
	switch m {
	case MotionStraight:
		return "straight"
	case MotionArc:
		return "arc"
	default:
		return fmt.Sprintf("Motion(%d)", int(m))
	}
}

// VehicleState holds the pose and commanded velocities of one vehicle.
//
// The zero value is a vehicle at the origin facing +x with no ICC and the
// exact degeneracy policy, which is the same as NewVehicleState(0, 0, 0).
type VehicleState struct {
	x   float64
	y   float64
	yaw float64

	linearVelocity  float64 // along the heading
	angularVelocity float64 // about +z, counter-clockwise positive

	icc ICC
	cfg Config
}

// NewVehicleState returns a state at the given pose with zero velocities and
// no ICC, using DefaultConfig.
func NewVehicleState(x0, y0, yaw0 float64) *VehicleState {
	return NewVehicleStateWithConfig(x0, y0, yaw0, DefaultConfig())
}

// NewVehicleStateWithConfig is NewVehicleState with an explicit degeneracy
// configuration.
func NewVehicleStateWithConfig(x0, y0, yaw0 float64, cfg Config) *VehicleState {
	return &VehicleState{
		x:   x0,
		y:   y0,
		yaw: yaw0,
		cfg: cfg.normalised(),
	}
}

// SetLinearVelocity stores v and recomputes the ICC.
func (s *VehicleState) SetLinearVelocity(v float64) {
	s.linearVelocity = v
	s.recomputeICC()
}

// SetAngularVelocity stores w and recomputes the ICC.
func (s *VehicleState) SetAngularVelocity(w float64) {
	s.angularVelocity = w
	s.recomputeICC()
}

// Pose returns the current pose.
func (s *VehicleState) Pose() Pose {
	return Pose{X: s.x, Y: s.y, Yaw: s.yaw}
}

// LinearVelocity returns the commanded speed along the heading (m/s).
func (s *VehicleState) LinearVelocity() float64 { return s.linearVelocity }

// AngularVelocity returns the commanded turn rate (rad/s, counter-clockwise positive).
func (s *VehicleState) AngularVelocity() float64 { return s.angularVelocity }

// Config returns the degeneracy configuration in effect.
func (s *VehicleState) Config() Config { return s.cfg }

// ICC returns the instantaneous center of curvature and whether it exists.
func (s *VehicleState) ICC() (Point, bool) {
	return s.icc.Center, s.icc.Valid
}

// CurvatureRadius returns the raw ratio linearVelocity / angularVelocity.
// The result is ±Inf when angular velocity is zero and NaN when both are.
func (s *VehicleState) CurvatureRadius() float64 {
	return s.linearVelocity / s.angularVelocity
}

// Motion reports which branch the next Propagate call will take.
func (s *VehicleState) Motion() Motion {
	if s.icc.Valid {
		return MotionArc
	}
	return MotionStraight
}
