package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func TestLoaderPendingThenLoaded(t *testing.T) {
	fsys := fstest.MapFS{"hero-idle.png": {Data: pngBytes(t, 40, 10)}}
	l := NewLoader(fsys)

	tex := l.Load("hero-idle.png")
	if tex.State() != Pending || tex.Ready() || tex.Image() != nil {
		t.Fatalf("new handle should be pending, got %v", tex.State())
	}
	if again := l.Load("hero-idle.png"); again != tex {
		t.Fatal("Load returned a second handle for the same name")
	}
	if l.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", l.Pending())
	}

	if n := l.Update(); n != 1 {
		t.Fatalf("Update() = %d, want 1", n)
	}
	if !tex.Ready() {
		t.Fatalf("state = %v, want loaded", tex.State())
	}
	if b := tex.Image().Bounds(); b.Dx() != 40 || b.Dy() != 10 {
		t.Errorf("image bounds = %v", b)
	}
	if tex.Version() != 1 {
		t.Errorf("Version() = %d, want 1", tex.Version())
	}
	if n := l.Update(); n != 0 {
		t.Errorf("second Update() = %d, want 0", n)
	}
}

func TestLoaderMissingStaysPending(t *testing.T) {
	fsys := fstest.MapFS{}
	l := NewLoader(fsys)
	tex := l.Load("robber-run.png")

	for i := 0; i < 3; i++ {
		l.Update()
	}
	if tex.State() != Pending {
		t.Fatalf("state = %v, want pending", tex.State())
	}
	if tex.Err() == nil {
		t.Error("missing file should record the read error")
	}

	fsys["robber-run.png"] = &fstest.MapFile{Data: pngBytes(t, 8, 8)}
	if n := l.Update(); n != 1 {
		t.Fatalf("Update() = %d after file appeared, want 1", n)
	}
	if !tex.Ready() || tex.Err() != nil {
		t.Errorf("state = %v err = %v", tex.State(), tex.Err())
	}
}

func TestLoaderDecodeFailure(t *testing.T) {
	l := NewLoader(fstest.MapFS{"broken.png": {Data: []byte("not a png")}})
	tex := l.Load("broken.png")
	l.Update()

	if tex.State() != Failed {
		t.Fatalf("state = %v, want failed", tex.State())
	}
	if tex.Err() == nil {
		t.Error("expected decode error")
	}
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", l.Pending())
	}
}

func TestLoaderReload(t *testing.T) {
	fsys := fstest.MapFS{"tile.png": {Data: pngBytes(t, 32, 32)}}
	l := NewLoader(fsys)
	tex := l.Load("tile.png")
	l.Update()

	fsys["tile.png"] = &fstest.MapFile{Data: pngBytes(t, 64, 32)}
	if !l.Reload("tile.png") {
		t.Fatal("Reload of a known texture returned false")
	}
	if tex.Ready() {
		t.Error("reloading texture should not be ready")
	}
	l.Update()
	if tex.Version() != 2 {
		t.Errorf("Version() = %d, want 2", tex.Version())
	}
	if w := tex.Image().Bounds().Dx(); w != 64 {
		t.Errorf("width = %d, want 64", w)
	}

	if l.Reload("unknown.png") {
		t.Error("Reload of an unknown texture returned true")
	}
}

func TestAtlasRect(t *testing.T) {
	a := NewAtlas(&Texture{name: "sheet.png"}, 262, 409, 10, 1)
	if a.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", a.Len())
	}

	tests := []struct {
		i    int
		want image.Rectangle
		ok   bool
	}{
		{0, image.Rect(0, 0, 262, 409), true},
		{3, image.Rect(786, 0, 1048, 409), true},
		{9, image.Rect(2358, 0, 2620, 409), true},
		{10, image.Rectangle{}, false},
		{-1, image.Rectangle{}, false},
	}
	for _, tt := range tests {
		got, ok := a.Rect(tt.i)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Rect(%d) = %v, %v; want %v, %v", tt.i, got, ok, tt.want, tt.ok)
		}
	}

	grid := NewAtlas(&Texture{name: "grid.png"}, 10, 20, 2, 2)
	if got, _ := grid.Rect(3); got != image.Rect(10, 20, 20, 40) {
		t.Errorf("grid Rect(3) = %v", got)
	}
	if grid.Ready() {
		t.Error("atlas over a pending texture reported ready")
	}
}
