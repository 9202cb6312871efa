package systems

import (
	"errors"

	"github.com/automoto/kyra-copper/character"
	"github.com/automoto/kyra-copper/components"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/automoto/kyra-copper/logger"
	"github.com/automoto/kyra-copper/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// lastFollowErr keeps a repeated precondition failure from being logged
// every frame.
var lastFollowErr string

// UpdateCamera keeps the camera horizontally on the hero.
func UpdateCamera(e *ecs.ECS) {
	var cameras []*math.Vec2
	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		cameras = append(cameras, &components.Camera.Get(entry).Position)
	})

	var tracked []math.Vec2
	tags.Hero.Each(e.World, func(entry *donburi.Entry) {
		tracked = append(tracked, *components.Position.Get(entry))
	})

	// The hero has not been created yet.
	if len(tracked) == 0 && heroPending(e.World) {
		return
	}

	err := character.FollowX(cameras, tracked)
	if err == nil {
		lastFollowErr = ""
		return
	}
	if cfg.Debug.Assertions && errors.Is(err, character.ErrFollowPrecondition) {
		panic(err)
	}
	if err.Error() != lastFollowErr {
		logger.Log.Warn("camera follow skipped", zap.Error(err))
		lastFollowErr = err.Error()
	}
}
