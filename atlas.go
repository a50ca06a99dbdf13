package sprig

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// atlasRegion describes a named sub-rectangle within an atlas page.
type atlasRegion struct {
	page             int
	x, y             int
	width, height    int // visual size; stored as height×width when rotated
	originalW        int // untrimmed size as authored
	originalH        int
	offsetX, offsetY int // trim offset inside the untrimmed frame
	rotated          bool
}

// Atlas holds one or more atlas page images and a map of named regions.
// Textures returned by an Atlas share the page images.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*ebiten.Image
	regions map[string]atlasRegion
}

// Texture returns a texture for the named region. Unknown names return a
// *LoadError wrapping ErrResourceNotFound; no placeholder is substituted.
func (a *Atlas) Texture(name string) (*Texture, error) {
	r, ok := a.regions[name]
	if !ok {
		return nil, &LoadError{Source: name, Err: ErrResourceNotFound}
	}
	var img *ebiten.Image
	if r.page < len(a.Pages) {
		img = a.Pages[r.page]
	}
	tex := &Texture{
		Image:   img,
		Region:  NewRectangle(float64(r.x), float64(r.y), float64(r.width), float64(r.height)),
		Rotated: r.rotated,
		Offset:  Vec2{X: float64(r.offsetX), Y: float64(r.offsetY)},
	}
	if r.originalW != r.width || r.originalH != r.height || r.offsetX != 0 || r.offsetY != 0 {
		tex.SourceWidth, tex.SourceHeight = float64(r.originalW), float64(r.originalH)
	}
	return tex, nil
}

// Has reports whether the atlas contains a region called name.
func (a *Atlas) Has(name string) bool {
	_, ok := a.regions[name]
	return ok
}

// Names returns the region names in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.regions))
	for name := range a.regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadAtlas parses TexturePacker JSON data and associates the given page images.
// Supports both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists).
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	// Probe top-level keys to detect format.
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("sprig: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]atlasRegion),
	}

	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		if err := parseHashFrames(probe.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("sprig: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame            jsonRect `json:"frame"`
	Rotated          bool     `json:"rotated"`
	Trimmed          bool     `json:"trimmed"`
	SpriteSourceSize jsonRect `json:"spriteSourceSize"`
	SourceSize       jsonSize `json:"sourceSize"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("sprig: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.regions[name] = frameToRegion(f, page)
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("sprig: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		for name, f := range tex.Frames {
			atlas.regions[name] = frameToRegion(f, i)
		}
	}
	return nil
}

// frameToRegion converts one frame entry. Untrimmed frames, and exports
// that omit sourceSize, use the frame size as the original size.
func frameToRegion(f jsonFrame, page int) atlasRegion {
	r := atlasRegion{
		page:      page,
		x:         f.Frame.X,
		y:         f.Frame.Y,
		width:     f.Frame.W,
		height:    f.Frame.H,
		originalW: f.Frame.W,
		originalH: f.Frame.H,
		rotated:   f.Rotated,
	}
	if f.Trimmed && f.SourceSize.W > 0 && f.SourceSize.H > 0 {
		r.originalW, r.originalH = f.SourceSize.W, f.SourceSize.H
		r.offsetX, r.offsetY = f.SpriteSourceSize.X, f.SpriteSourceSize.Y
	}
	return r
}
