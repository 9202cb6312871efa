package character

import (
	"fmt"

	"github.com/yohamta/donburi/features/math"
)

// FollowX moves the camera horizontally onto the tracked character. Y is
// left alone. Anything other than exactly one camera and one target leaves
// the cameras untouched and returns ErrFollowPrecondition.
func FollowX(cameras []*math.Vec2, tracked []math.Vec2) error {
	if len(cameras) != 1 || len(tracked) != 1 || cameras[0] == nil {
		return fmt.Errorf("%w: %d cameras, %d targets", ErrFollowPrecondition, len(cameras), len(tracked))
	}
	cameras[0].X = tracked[0].X
	return nil
}
