package rays

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
)

type SettingsCfg struct {
	Width   int   `json:"width,omitempty"`
	Height  int   `json:"height,omitempty"`
	FOV     Real  `json:"fov,omitempty"`     // radians
	Darkest *Real `json:"darkest,omitempty"` // nil means DefaultDark; 0 is a valid floor
}

type LightCfg struct {
	Origin    Vector3 `json:"origin"`
	Intensity Real    `json:"intensity"`
}

// ObjectCfg is one sphere or plane. Center is the sphere center or a point on the plane.
type ObjectCfg struct {
	Type   string  `json:"type"` // "sphere" or "plane"
	Color  RGB     `json:"color"`
	Center Vector3 `json:"center"`
	Radius Real    `json:"radius,omitempty"`
	Normal Vector3 `json:"normal"`
}

// Config is the JSON form of a scene. Objects keep their order.
type Config struct {
	Settings SettingsCfg `json:"settings"`
	Light    *LightCfg   `json:"light"`
	Objects  []ObjectCfg `json:"objects"`
}

// Build validates and constructs the render settings; zero fields take the defaults.
func (c SettingsCfg) Build() (RenderConfig, error) {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.FOV == 0 {
		c.FOV = DefaultFOV
	}
	darkest := Real(DefaultDark)
	if c.Darkest != nil {
		darkest = *c.Darkest
	}
	return NewRenderConfig(c.Width, c.Height, c.FOV, darkest)
}

func (c LightCfg) Build() (*Light, error) {
	return NewLight(c.Origin, c.Intensity)
}

func (c ObjectCfg) Build() (Primitive, error) {
	switch c.Type {
	case "sphere", string(rune(ShapeSphere)):
		s, err := NewSphere(c.Center, c.Radius, c.Color)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "plane", string(rune(ShapePlane)):
		p, err := NewPlane(c.Center, c.Normal, c.Color)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fmt.Errorf("%w '%s'", ErrUnknownShape, c.Type)
}

// DecodeSceneJSON reads a JSON scene. Objects that fail to build are logged and skipped.
func DecodeSceneJSON(r io.Reader) (*Scene, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if cfg.Light == nil {
		return nil, ErrNoLight
	}
	rc, err := cfg.Settings.Build()
	if err != nil {
		return nil, err
	}
	l, err := cfg.Light.Build()
	if err != nil {
		return nil, err
	}
	sc := NewScene()
	sc.Config = rc
	sc.SetLight(l)
	for i, oc := range cfg.Objects {
		obj, err := oc.Build()
		if err != nil {
			log.Printf("Error: object #%d: %v, object skipped", i, err)
			continue
		}
		sc.Add(obj)
	}
	return sc, nil
}

// ConfigOf converts a scene back to its JSON form.
func ConfigOf(sc *Scene) Config {
	darkest := sc.Config.Darkest
	cfg := Config{
		Settings: SettingsCfg{
			Width:   sc.Config.Width,
			Height:  sc.Config.Height,
			FOV:     sc.Config.FOV,
			Darkest: &darkest,
		},
		Light:   &LightCfg{Origin: sc.Light.Origin, Intensity: sc.Light.Intensity},
		Objects: make([]ObjectCfg, 0, len(sc.Objects)),
	}
	for _, o := range sc.Objects {
		switch p := o.(type) {
		case *Sphere:
			cfg.Objects = append(cfg.Objects, ObjectCfg{Type: "sphere", Color: p.Col, Center: p.Center, Radius: p.Radius})
		case *Plane:
			cfg.Objects = append(cfg.Objects, ObjectCfg{Type: "plane", Color: p.Col, Center: p.Point, Normal: p.Normal})
		}
	}
	return cfg
}

// SaveSceneJSON writes a scene as indented JSON.
func SaveSceneJSON(path string, sc *Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ConfigOf(sc)); err != nil {
		f.Close()
		return fmt.Errorf("encode scene: %w", err)
	}
	return f.Close()
}
