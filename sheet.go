package sprig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// SheetSpec describes one animation cut from a sprite sheet image.
type SheetSpec struct {
	Image         string  `yaml:"image"`
	Rows          int     `yaml:"rows"`
	Cols          int     `yaml:"cols"`
	FrameDuration float64 `yaml:"frame_duration"`
	Loop          bool    `yaml:"loop"`
}

// SheetFile is the top-level YAML document: named sheet specs.
//
//	animations:
//	  explosion:
//	    image: explosion.png
//	    rows: 6
//	    cols: 6
//	    frame_duration: 0.03
//	  walk:
//	    image: walk.png
//	    rows: 1
//	    cols: 4
//	    frame_duration: 0.1
//	    loop: true
type SheetFile struct {
	Animations map[string]SheetSpec `yaml:"animations"`
}

// ParseSheets decodes a YAML sheet file and validates every entry.
func ParseSheets(data []byte) (*SheetFile, error) {
	var f SheetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("sprig: unmarshal sheets: %w", err)
	}
	for name, spec := range f.Animations {
		if err := spec.validate(); err != nil {
			return nil, fmt.Errorf("sprig: sheet %q: %w", name, err)
		}
	}
	return &f, nil
}

func (s SheetSpec) validate() error {
	switch {
	case s.Image == "":
		return fmt.Errorf("missing image")
	case s.Rows <= 0 || s.Cols <= 0:
		return fmt.Errorf("rows and cols must be positive, got %dx%d", s.Rows, s.Cols)
	case s.FrameDuration <= 0:
		return fmt.Errorf("frame_duration must be positive, got %v", s.FrameDuration)
	}
	return nil
}

// Build loads the sheet image through loader and slices it into an animation.
func (s SheetSpec) Build(loader ImageLoader) (*Animation, error) {
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("sprig: sheet %q: %w", s.Image, err)
	}
	tex, err := LoadTexture(loader, s.Image)
	if err != nil {
		return nil, err
	}
	return NewAnimationFromSheet(tex, s.Rows, s.Cols, s.FrameDuration, s.Loop), nil
}

// LoadAnimations parses a YAML sheet file and builds every animation in it.
// Wrap loader in a CachedLoader when several sheets share an image.
func LoadAnimations(data []byte, loader ImageLoader) (map[string]*Animation, error) {
	f, err := ParseSheets(data)
	if err != nil {
		return nil, err
	}
	anims := make(map[string]*Animation, len(f.Animations))
	for name, spec := range f.Animations {
		anim, err := spec.Build(loader)
		if err != nil {
			return nil, fmt.Errorf("sprig: sheet %q: %w", name, err)
		}
		anims[name] = anim
	}
	return anims, nil
}
