package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SceneSpec describes the whole fixed scene: window, tick, player, static
// walls and falling blocks.
type SceneSpec struct {
	Name   string      `yaml:"name"`
	Window WindowSpec  `yaml:"window"`
	Tick   TickSpec    `yaml:"tick"`
	Camera CameraSpec  `yaml:"camera"`
	Player PlayerSpec  `yaml:"player"`
	Walls  []WallSpec  `yaml:"walls"`
	Blocks []BlockSpec `yaml:"blocks"`
	Debug  DebugSpec   `yaml:"debug"`
	Rigid  RigidSpec   `yaml:"rigid_body"`
}

type WindowSpec struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// TickSpec configures the clock. FixedStep > 0 pins dt; otherwise measured
// steps are clamped to MaxStep.
type TickSpec struct {
	FixedStep float64 `yaml:"fixed_step"`
	MaxStep   float64 `yaml:"max_step"`
}

type CameraSpec struct {
	Transform TransformSpec `yaml:"transform"`
	Zoom      float64       `yaml:"zoom"`
}

type PlayerSpec struct {
	Name          string        `yaml:"name"`
	Transform     TransformSpec `yaml:"transform"`
	Size          SizeSpec      `yaml:"size"`
	Color         *YAMLColor    `yaml:"color"`
	MovementSpeed float64       `yaml:"movement_speed"`
	JumpVelocity  float64       `yaml:"jump_velocity"`
	Gravity       float64       `yaml:"gravity"`
	FallSpeed     float64       `yaml:"fall_speed"`
	FallBias      float64       `yaml:"fall_bias"`
	JumpNudge     float64       `yaml:"jump_nudge"`
}

type WallSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Size      SizeSpec      `yaml:"size"`
	Color     *YAMLColor    `yaml:"color"`
}

type BlockSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Size      SizeSpec      `yaml:"size"`
	Color     *YAMLColor    `yaml:"color"`
	FallSpeed float64       `yaml:"fall_speed"`
}

type DebugSpec struct {
	LogFallSpeed bool `yaml:"log_fall_speed"`
}

// RigidSpec tunes the Chipmunk backend.
type RigidSpec struct {
	Iterations int     `yaml:"iterations"`
	Friction   float64 `yaml:"friction"`
	BlockMass  float64 `yaml:"block_mass"`
	PlayerMass float64 `yaml:"player_mass"`
}

type TransformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](DefaultScene)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the fields the scene builder cannot default.
func (s *SceneSpec) Validate() error {
	if s == nil {
		return errors.New("prefabs: nil scene spec")
	}
	var errs []error
	if s.Player.Size.Width <= 0 || s.Player.Size.Height <= 0 {
		errs = append(errs, fmt.Errorf("player %q: size must be positive", s.Player.Name))
	}
	if s.Player.JumpNudge <= 0 {
		errs = append(errs, fmt.Errorf("player %q: jump_nudge must be positive", s.Player.Name))
	}
	if s.Player.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("player %q: gravity must be negative, world space is Y up", s.Player.Name))
	}
	seen := map[string]bool{}
	if s.Player.Name != "" {
		seen[s.Player.Name] = true
	}
	check := func(kind, name string, size SizeSpec) {
		if size.Width <= 0 || size.Height <= 0 {
			errs = append(errs, fmt.Errorf("%s %q: size must be positive", kind, name))
		}
		if name == "" {
			return
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("%s %q: duplicate name", kind, name))
		}
		seen[name] = true
	}
	for _, wall := range s.Walls {
		check("wall", wall.Name, wall.Size)
	}
	for _, block := range s.Blocks {
		check("block", block.Name, block.Size)
		if block.FallSpeed < 0 {
			errs = append(errs, fmt.Errorf("block %q: fall_speed is a magnitude and must not be negative", block.Name))
		}
	}
	if s.Tick.FixedStep < 0 || s.Tick.MaxStep < 0 {
		errs = append(errs, errors.New("tick: steps must not be negative"))
	}
	return errors.Join(errs...)
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// ColorOr returns the parsed color, or fallback when c is unset.
func (c *YAMLColor) ColorOr(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
