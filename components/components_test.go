package components

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/kyra-copper/assets"
	"github.com/automoto/kyra-copper/assets/animations"
	"github.com/automoto/kyra-copper/character"
	cfg "github.com/automoto/kyra-copper/config"
	"github.com/jakecoffman/cp"
)

func TestInputActionsAreEdges(t *testing.T) {
	var in InputData

	in.Current[cfg.ActionRunRight] = true
	if a := in.Actions(); !a[cfg.ActionRunRight] {
		t.Fatal("first frame of a press should be an edge")
	}
	if !in.JustPressed(cfg.ActionRunRight) || !in.Pressed(cfg.ActionRunRight) {
		t.Error("JustPressed/Pressed disagree with Actions")
	}

	// Held for a second frame.
	in.Previous = in.Current
	if a := in.Actions(); a[cfg.ActionRunRight] {
		t.Error("held key fired again")
	}
	if in.JustPressed(cfg.ActionRunRight) || !in.Pressed(cfg.ActionRunRight) {
		t.Error("held key state wrong")
	}

	// Released, then pressed again.
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	in.Previous = in.Current
	in.Current[cfg.ActionRunRight] = true
	if a := in.Actions(); !a[cfg.ActionRunRight] {
		t.Error("re-press should fire")
	}
}

func TestSpriteIsDisplay(t *testing.T) {
	set, err := animations.Build(assets.NewLoader(fstest.MapFS{}), cfg.HeroSheets, int(cfg.HeroStateCount))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	hero, err := character.SpawnHero(set, 0.1, character.Controller{RunSpeed: 500, JumpSpeed: 300})
	if err != nil {
		t.Fatalf("SpawnHero: %v", err)
	}

	sprite := &SpriteData{Scale: 0.3, Facing: 1}
	hero.Animate(0.1, sprite)

	idle, _ := set.Clip(int(cfg.Idle))
	if sprite.Atlas != idle.Atlas {
		t.Error("sprite not showing the idle atlas")
	}
	if sprite.Frame != 1 {
		t.Errorf("Frame = %d, want 1", sprite.Frame)
	}
}

func TestPhysicsDataSteersBody(t *testing.T) {
	space := cp.NewSpace()
	body := space.AddBody(cp.NewBody(1, cp.INFINITY))
	body.SetVelocity(12, -40)
	p := &PhysicsData{Body: body}

	var b character.Body = p
	ctrl := character.Controller{RunSpeed: 500, JumpSpeed: 300}

	ctrl.Steer(cfg.RunLeft, b)
	if vx, vy := p.Velocity(); vx != -500 || vy != 0 {
		t.Errorf("run left velocity = (%v, %v)", vx, vy)
	}

	ctrl.Steer(cfg.Jump, b)
	if vx, vy := p.Velocity(); vx != -500 || vy != 300 {
		t.Errorf("jump velocity = (%v, %v)", vx, vy)
	}
}

func TestShaftSpaceToSpace(t *testing.T) {
	s := &ShaftSpaceData{Left: -400, Top: 512}
	tests := []struct {
		wx, wy, sx, sy float64
	}{
		{-400, 512, 0, 0},
		{0, 0, 400, 512},
		{-400, -512, 0, 1024},
	}
	for _, tt := range tests {
		sx, sy := s.ToSpace(tt.wx, tt.wy)
		if sx != tt.sx || sy != tt.sy {
			t.Errorf("ToSpace(%v, %v) = (%v, %v), want (%v, %v)", tt.wx, tt.wy, sx, sy, tt.sx, tt.sy)
		}
	}
}
