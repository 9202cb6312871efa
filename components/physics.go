package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// PhysicsData links an entity to its rigid body. Its velocity methods let
// the locomotion controller steer the body directly.
type PhysicsData struct {
	Body  *cp.Body
	Shape *cp.Shape
}

func (p *PhysicsData) Velocity() (float64, float64) {
	v := p.Body.Velocity()
	return v.X, v.Y
}

func (p *PhysicsData) SetVelocity(x, y float64) {
	p.Body.SetVelocity(x, y)
}

var Physics = donburi.NewComponentType[PhysicsData]()

type PhysicsSpaceData struct {
	*cp.Space
}

var PhysicsSpace = donburi.NewComponentType[PhysicsSpaceData]()
