// Package diffdrive models the instantaneous kinematic state of a
// differential-drive vehicle and propagates its pose forward in time.
//
// Responsibilities: tracking commanded linear and angular velocity,
// deriving the instantaneous center of curvature (ICC), and advancing
// the pose either as a rigid rotation about the ICC or, when no ICC
// exists, as a straight-line translation along the current heading.
// Key types: VehicleState, Pose, ICC.
//
// The model is kinematic only: no mass, friction, slip or wheel speeds.
// Velocities are piecewise constant and only change between Propagate
// calls, so the closed-form arc update is exact for any dt.
//
// Heading is never normalised. Callers that want a bounded angle wrap
// it themselves.
//
// A VehicleState is not safe for concurrent use. Confine each state to
// one owner or guard it externally.
package diffdrive
