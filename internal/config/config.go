package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"ray-kernel/internal/canvas"
	"ray-kernel/internal/mathutil"
	"ray-kernel/internal/scene"
	"ray-kernel/internal/shape"
)

// Config holds the scene description and render settings.
type Config struct {
	// Output
	Output string `json:"output"`

	// Render settings
	Width       int `json:"width"`
	Height      int `json:"height"`
	Supersample int `json:"supersample"`
	Workers     int `json:"workers"`

	// Scene
	Eye        *[3]float32    `json:"eye"`
	Wall       WallConfig     `json:"wall"`
	Background [3]float32     `json:"background"`
	Spheres    []SphereConfig `json:"spheres"`
}

// WallConfig is the projection plane behind the scene.
type WallConfig struct {
	Z      float32 `json:"z"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// SphereConfig places a unit sphere with a list of transform steps applied
// in order.
type SphereConfig struct {
	Color      [3]float32 `json:"color"`
	Transforms []Step     `json:"transforms"`
}

// Step is one transform: "translate", "scale", "rotate_x", "rotate_y" or
// "rotate_z". Rotation angles are in degrees.
type Step struct {
	Op    string  `json:"op"`
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	Z     float32 `json:"z"`
	Angle float32 `json:"angle"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output      string
	Width       int
	Height      int
	Supersample int
	Workers     int
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Defaults for render settings
	if c.Output == "" {
		c.Output = "output.ppm"
	}
	if c.Width <= 0 {
		c.Width = 200
	}
	if c.Height <= 0 {
		c.Height = 200
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}

	// Defaults for the scene
	if c.Eye == nil {
		c.Eye = &[3]float32{0, 0, -5}
	}
	if c.Wall.Z == 0 {
		c.Wall.Z = 10
	}
	if c.Wall.Width <= 0 {
		c.Wall.Width = 7
	}
	if c.Wall.Height <= 0 {
		c.Wall.Height = 7
	}
	if len(c.Spheres) == 0 {
		c.Spheres = []SphereConfig{{Color: [3]float32{1, 0, 0}}}
	}
}

// Matrix composes the sphere's transform steps.
func (s SphereConfig) Matrix() (mathutil.Mat4, error) {
	steps := make([]mathutil.Mat4, 0, len(s.Transforms))
	for i, st := range s.Transforms {
		var m mathutil.Mat4
		switch st.Op {
		case "translate":
			m = mathutil.Translation(st.X, st.Y, st.Z)
		case "scale":
			m = mathutil.Scaling(st.X, st.Y, st.Z)
		case "rotate_x":
			m = mathutil.RotationX(mathutil.Deg2Rad(st.Angle))
		case "rotate_y":
			m = mathutil.RotationY(mathutil.Deg2Rad(st.Angle))
		case "rotate_z":
			m = mathutil.RotationZ(mathutil.Deg2Rad(st.Angle))
		default:
			return mathutil.Mat4{}, fmt.Errorf("config: transform %d: unknown op %q", i, st.Op)
		}
		steps = append(steps, m)
	}
	return mathutil.Chain(steps...), nil
}

// EyePoint returns the eye position as a point.
func (c *Config) EyePoint() mathutil.Tuple {
	if c.Eye == nil {
		return mathutil.Point(0, 0, -5)
	}
	return mathutil.Point(c.Eye[0], c.Eye[1], c.Eye[2])
}

// SceneWall converts the wall settings for the renderer.
func (c *Config) SceneWall() scene.Wall {
	return scene.Wall{Z: c.Wall.Z, Width: c.Wall.Width, Height: c.Wall.Height}
}

// Scene builds the configured spheres. Each sphere gets a fresh shape id.
func (c *Config) Scene() (*scene.Scene, error) {
	objects := make([]scene.Object, 0, len(c.Spheres))
	for i, sc := range c.Spheres {
		m, err := sc.Matrix()
		if err != nil {
			return nil, fmt.Errorf("config: sphere %d: %w", i, err)
		}
		s, err := shape.NewSphere(m)
		if err != nil {
			return nil, fmt.Errorf("config: sphere %d: %w", i, err)
		}
		objects = append(objects, scene.Object{Shape: s, Color: toColor(sc.Color)})
	}
	return scene.New(toColor(c.Background), objects...), nil
}

func toColor(c [3]float32) canvas.Color {
	return canvas.Color{R: c[0], G: c[1], B: c[2]}
}
