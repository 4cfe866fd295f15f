package diffdrive

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Propagate advances the pose by dt seconds under the current velocities and
// returns the new pose. dt may be zero or negative; a negative dt runs the
// motion backwards.
//
// With an ICC the step is a rigid rotation by w*dt about it, which is exact
// for constant velocities. Without one the vehicle translates along its
// heading and yaw is unchanged.
func (s *VehicleState) Propagate(dt float64) Pose {
	wdt := s.angularVelocity * dt

	if s.icc.Valid {
		next := arcStep(s.x, s.y, s.yaw, s.icc.Center, wdt)
		s.x = next.AtVec(0)
		s.y = next.AtVec(1)
		s.yaw = next.AtVec(2)
		s.recomputeICC()
	} else {
		s.x += (s.linearVelocity * dt) * math.Cos(s.yaw)
		s.y += (s.linearVelocity * dt) * math.Sin(s.yaw)
	}

	return s.Pose()
}

// PropagateDuration is Propagate with the step given as a time.Duration.
func (s *VehicleState) PropagateDuration(d time.Duration) Pose {
	return s.Propagate(d.Seconds())
}

// arcStep rotates (x, y) by theta about c and adds theta to yaw.
//
//	[x']   [cos θ  -sin θ  0] [x - cx]   [cx]
//	[y'] = [sin θ   cos θ  0] [y - cy] + [cy]
//	[ψ']   [  0       0    1] [  ψ   ]   [ θ]
func arcStep(x, y, yaw float64, c Point, theta float64) *mat.VecDense {
	cos, sin := math.Cos(theta), math.Sin(theta)
	rot := mat.NewDense(3, 3, []float64{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	})
	rel := mat.NewVecDense(3, []float64{x - c.X, y - c.Y, yaw})

	out := mat.NewVecDense(3, nil)
	out.MulVec(rot, rel)
	out.AddVec(out, mat.NewVecDense(3, []float64{c.X, c.Y, theta}))
	return out
}
