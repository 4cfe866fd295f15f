package diffdrive_test

import (
	"fmt"
	"math"

	"github.com/banshee-data/diffdrive/diffdrive"
)

func ExampleVehicleState_Propagate() {
	s := diffdrive.NewVehicleState(0, 0, 0)
	s.SetLinearVelocity(1.0)
	s.SetAngularVelocity(2 * math.Pi)

	// a quarter of a circle with radius 1/(2π)
	fmt.Println(s.Propagate(0.25))
	// Output: (x=0.159155, y=0.159155, yaw=1.570796)
}

func ExampleVehicleState_ICC() {
	s := diffdrive.NewVehicleState(0, 0, 0)
	s.SetLinearVelocity(2)

	_, ok := s.ICC()
	fmt.Println(s.Motion(), ok)

	s.SetAngularVelocity(1)
	c, ok := s.ICC()
	fmt.Println(s.Motion(), ok, c.X, c.Y)
	// Output:
	// straight false
	// arc true 0 2
}
