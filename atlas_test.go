package sprig

import (
	"errors"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Test JSON fixtures ---

const singlePageJSON = `{
  "frames": {
    "ship.png":   {"frame": {"x": 0, "y": 0, "w": 64, "h": 64}},
    "rock.png":   {"frame": {"x": 64, "y": 0, "w": 32, "h": 48}},
    "flame1.png": {"frame": {"x": 0, "y": 64, "w": 16, "h": 16}},
    "flame2.png": {"frame": {"x": 16, "y": 64, "w": 16, "h": 16}}
  },
  "meta": {
    "image": "atlas.png",
    "size": {"w": 256, "h": 256}
  }
}`

const multiPageJSON = `{
  "textures": [
    {
      "image": "atlas-0.png",
      "frames": {"page0.png": {"frame": {"x": 0, "y": 0, "w": 64, "h": 64}}}
    },
    {
      "image": "atlas-1.png",
      "frames": {"page1.png": {"frame": {"x": 10, "y": 20, "w": 50, "h": 50}}}
    }
  ]
}`

func mustLoadAtlas(t *testing.T, data string, pages []*ebiten.Image) *Atlas {
	t.Helper()
	atlas, err := LoadAtlas([]byte(data), pages)
	if err != nil {
		t.Fatalf("LoadAtlas: %v", err)
	}
	return atlas
}

func TestLoadAtlas_SinglePage(t *testing.T) {
	atlas := mustLoadAtlas(t, singlePageJSON, nil)
	names := atlas.Names()
	want := []string{"flame1.png", "flame2.png", "rock.png", "ship.png"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Names = %v, want %v", names, want)
	}

	tex, err := atlas.Texture("rock.png")
	if err != nil {
		t.Fatalf("Texture: %v", err)
	}
	if tex.Region.Left() != 64 || tex.Region.Top() != 0 || tex.Width() != 32 || tex.Height() != 48 {
		t.Errorf("rock.png region = %v %vx%v, want (64 , 0) 32x48", *tex.Region.Position, tex.Width(), tex.Height())
	}
}

func TestLoadAtlas_MissingRegion(t *testing.T) {
	atlas := mustLoadAtlas(t, singlePageJSON, nil)
	if atlas.Has("nope.png") {
		t.Error("Has reported a missing region")
	}
	_, err := atlas.Texture("nope.png")
	if !errors.Is(err, ErrResourceNotFound) {
		t.Fatalf("err = %v, want ErrResourceNotFound", err)
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Source != "nope.png" {
		t.Errorf("err = %#v, want *LoadError for nope.png", err)
	}
}

func TestLoadAtlas_MultiPage(t *testing.T) {
	atlas := mustLoadAtlas(t, multiPageJSON, nil)
	if !atlas.Has("page0.png") || !atlas.Has("page1.png") {
		t.Fatalf("Names = %v", atlas.Names())
	}
	if r := atlas.regions["page1.png"]; r.page != 1 || r.x != 10 || r.y != 20 {
		t.Errorf("page1.png = %+v, want page 1 at (10,20)", r)
	}
	tex, err := atlas.Texture("page1.png")
	if err != nil {
		t.Fatal(err)
	}
	if tex.Image != nil {
		t.Error("missing page image should give a nil texture image")
	}
}

func TestLoadAtlas_InvalidJSON(t *testing.T) {
	if _, err := LoadAtlas([]byte("{nope"), nil); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadAtlas_NoFramesOrTextures(t *testing.T) {
	_, err := LoadAtlas([]byte(`{"meta": {}}`), nil)
	if err == nil || !strings.Contains(err.Error(), "neither") {
		t.Errorf("err = %v, want missing-key error", err)
	}
}

func TestNewAnimationFromAtlas(t *testing.T) {
	atlas := mustLoadAtlas(t, singlePageJSON, nil)
	anim, err := NewAnimationFromAtlas(atlas, []string{"flame1.png", "flame2.png"}, 0.1, true)
	if err != nil {
		t.Fatal(err)
	}
	if anim.NumFrames() != 2 || anim.CurrentTexture().Region.Left() != 0 {
		t.Errorf("unexpected frames")
	}
	anim.Advance(0.1)
	if anim.CurrentTexture().Region.Left() != 16 {
		t.Errorf("second frame x = %v, want 16", anim.CurrentTexture().Region.Left())
	}

	if _, err := NewAnimationFromAtlas(atlas, []string{"flame1.png", "flame9.png"}, 0.1, true); !errors.Is(err, ErrResourceNotFound) {
		t.Errorf("err = %v, want ErrResourceNotFound", err)
	}
}

func BenchmarkLoadAtlas_SinglePage(b *testing.B) {
	data := []byte(singlePageJSON)
	for b.Loop() {
		_, _ = LoadAtlas(data, nil)
	}
}

const packedJSON = `{
  "frames": {
    "plain.png": {
      "frame": {"x": 0, "y": 0, "w": 16, "h": 16},
      "rotated": false, "trimmed": false,
      "spriteSourceSize": {"x": 0, "y": 0, "w": 16, "h": 16},
      "sourceSize": {"w": 16, "h": 16}
    },
    "trimmed.png": {
      "frame": {"x": 100, "y": 50, "w": 60, "h": 58},
      "rotated": false, "trimmed": true,
      "spriteSourceSize": {"x": 2, "y": 3, "w": 60, "h": 58},
      "sourceSize": {"w": 64, "h": 64}
    },
    "rotated.png": {
      "frame": {"x": 200, "y": 0, "w": 10, "h": 30},
      "rotated": true, "trimmed": true,
      "sourceSize": {"w": 40, "h": 20}
    }
  }
}`

func TestLoadAtlas_TrimmedRegion(t *testing.T) {
	atlas := mustLoadAtlas(t, packedJSON, nil)
	tex, err := atlas.Texture("trimmed.png")
	if err != nil {
		t.Fatal(err)
	}
	if tex.Region.Width != 60 || tex.Region.Height != 58 {
		t.Errorf("region = %vx%v, want 60x58", tex.Region.Width, tex.Region.Height)
	}
	if tex.Width() != 64 || tex.Height() != 64 {
		t.Errorf("native size = %vx%v, want 64x64", tex.Width(), tex.Height())
	}
	if tex.Offset != (Vec2{2, 3}) || tex.Rotated {
		t.Errorf("offset = %v rotated = %v", tex.Offset, tex.Rotated)
	}

	s := NewSprite(0, 0)
	s.SetTexture(tex)
	if w, h := s.Size(); w != 64 || h != 64 {
		t.Errorf("sprite size = %vx%v, want the untrimmed 64x64", w, h)
	}
}

func TestLoadAtlas_RotatedRegion(t *testing.T) {
	atlas := mustLoadAtlas(t, packedJSON, nil)
	tex, err := atlas.Texture("rotated.png")
	if err != nil {
		t.Fatal(err)
	}
	if !tex.Rotated {
		t.Error("rotation discarded")
	}
	if tex.Region.Width != 10 || tex.Region.Height != 30 {
		t.Errorf("region = %vx%v, want 10x30", tex.Region.Width, tex.Region.Height)
	}
	if tex.Width() != 40 || tex.Height() != 20 {
		t.Errorf("native size = %vx%v, want 40x20", tex.Width(), tex.Height())
	}
}

func TestLoadAtlas_UntrimmedKeepsRegionSize(t *testing.T) {
	atlas := mustLoadAtlas(t, packedJSON, nil)
	tex, err := atlas.Texture("plain.png")
	if err != nil {
		t.Fatal(err)
	}
	if tex.SourceWidth != 0 || tex.SourceHeight != 0 || tex.Width() != 16 {
		t.Errorf("untrimmed texture reports source %vx%v", tex.SourceWidth, tex.SourceHeight)
	}
}
