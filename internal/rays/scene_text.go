package rays

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadScene reads a scene file. Files ending in .json are decoded as a JSON
// scene config, anything else as the line-oriented text format.
// A missing file yields an error matching both ErrSceneNotFound and os.ErrNotExist.
func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrSceneNotFound, err)
		}
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	var sc *Scene
	if strings.EqualFold(filepath.Ext(path), ".json") {
		sc, err = DecodeSceneJSON(f)
	} else {
		sc, err = ParseScene(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	DebugLog("Loaded scene from %s: %d spheres, %d planes, %dx%d, fov=%.4f, darkest=%.3f",
		path, sc.Count(ShapeSphere), sc.Count(ShapePlane), sc.Config.Width, sc.Config.Height, sc.Config.FOV, sc.Config.Darkest)
	return sc, nil
}

// ParseScene reads the text scene format, one directive per line:
//
//	o s,R,G,B,Cx,Cy,Cz,radius       sphere
//	o p,R,G,B,Px,Py,Pz,Nx,Ny,Nz     plane
//	l Ox,Oy,Oz,intensity            light
//	s width,height,fov,darkest      render settings
//
// Lines not starting with a lowercase letter are ignored, as is anything after '#'.
// Unknown directives and malformed lines are logged and skipped; objects that fail
// to build are logged and left out of the scene. Only read errors are returned.
func ParseScene(r io.Reader) (*Scene, error) {
	sc := NewScene()
	hasLight := false
	sn := bufio.NewScanner(r)
	lineNo := 0
	for sn.Scan() {
		lineNo++
		line := sn.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" || line[0] < 'a' || line[0] > 'z' {
			continue
		}
		token, rest := line[0], line[1:]
		switch token {
		case 'o':
			obj, err := parseObject(rest)
			if err != nil {
				log.Printf("Error: line %d: %v, object skipped", lineNo, err)
				continue
			}
			sc.Add(obj)
		case 'l':
			l, err := parseLight(rest)
			if err != nil {
				log.Printf("Warning: line %d: %v, light skipped", lineNo, err)
				continue
			}
			if hasLight {
				log.Printf("Warning: line %d: only one light is supported, replacing the previous one", lineNo)
			}
			sc.SetLight(l)
			hasLight = true
		case 's':
			cfg, err := parseSettings(rest)
			if err != nil {
				log.Printf("Warning: line %d: %v, settings skipped", lineNo, err)
				continue
			}
			sc.Config = cfg
		default:
			log.Printf("Warning: line %d: token '%c' not recognized", lineNo, token)
		}
	}
	if err := sn.Err(); err != nil {
		return nil, err
	}
	if !hasLight {
		log.Printf("Warning: scene has no light, every surface gets the darkest floor")
	}
	return sc, nil
}

func splitFields(s string) []string {
	fields := strings.Split(strings.TrimSpace(s), ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func parseReals(fields []string) ([]Real, error) {
	out := make([]Real, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseObject(s string) (Primitive, error) {
	fields := splitFields(s)
	tag := fields[0]
	if len(tag) != 1 {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownShape, tag)
	}
	shape := Shape(tag[0])
	var want int
	switch shape {
	case ShapeSphere:
		want = 7
	case ShapePlane:
		want = 9
	default:
		return nil, fmt.Errorf("%w '%s'", ErrUnknownShape, tag)
	}
	if got := len(fields) - 1; got != want {
		return nil, fmt.Errorf("%s needs %d values, got %d", shape, want, got)
	}
	v, err := parseReals(fields[1:])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", shape, err)
	}
	col := RGB{v[0], v[1], v[2]}
	origin := Vector3{v[3], v[4], v[5]}
	if shape == ShapeSphere {
		sp, err := NewSphere(origin, v[6], col)
		if err != nil {
			return nil, err
		}
		return sp, nil
	}
	pl, err := NewPlane(origin, Vector3{v[6], v[7], v[8]}, col)
	if err != nil {
		return nil, err
	}
	return pl, nil
}

func parseLight(s string) (*Light, error) {
	fields := splitFields(s)
	if len(fields) != 4 {
		return nil, fmt.Errorf("light needs 4 values, got %d", len(fields))
	}
	v, err := parseReals(fields)
	if err != nil {
		return nil, fmt.Errorf("light: %w", err)
	}
	return NewLight(Vector3{v[0], v[1], v[2]}, v[3])
}

func parseSettings(s string) (RenderConfig, error) {
	fields := splitFields(s)
	if len(fields) != 4 {
		return RenderConfig{}, fmt.Errorf("settings need 4 values, got %d", len(fields))
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return RenderConfig{}, fmt.Errorf("width: %w", err)
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return RenderConfig{}, fmt.Errorf("height: %w", err)
	}
	v, err := parseReals(fields[2:])
	if err != nil {
		return RenderConfig{}, fmt.Errorf("settings: %w", err)
	}
	return NewRenderConfig(w, h, v[0], v[1])
}
