package rtgizmo

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/gekko3d/rtgizmo/rt/gizmo"
)

// Config holds the viewer and gizmo settings read from the environment.
type Config struct {
	WindowWidth  int    `env:"RTGIZMO_WINDOW_WIDTH"  envDefault:"1280"`
	WindowHeight int    `env:"RTGIZMO_WINDOW_HEIGHT" envDefault:"720"`
	WindowTitle  string `env:"RTGIZMO_WINDOW_TITLE"  envDefault:"rtgizmo"`
	LogLevel     string `env:"RTGIZMO_LOG_LEVEL"     envDefault:"info"`

	Space string `env:"RTGIZMO_SPACE" envDefault:"global"`
	Pivot string `env:"RTGIZMO_PIVOT" envDefault:"pivot"`

	HandleLength             float32 `env:"RTGIZMO_HANDLE_LENGTH"        envDefault:"0.25"`
	CircleRadius             float32 `env:"RTGIZMO_CIRCLE_RADIUS"        envDefault:"0.25"`
	HandleWidth              float32 `env:"RTGIZMO_HANDLE_WIDTH"         envDefault:"0.003"`
	TriangleSize             float32 `env:"RTGIZMO_TRIANGLE_SIZE"        envDefault:"0.03"`
	CircleDetail             int     `env:"RTGIZMO_CIRCLE_DETAIL"        envDefault:"40"`
	MinSelectedDistanceCheck float32 `env:"RTGIZMO_MIN_SELECT_DISTANCE"  envDefault:"0.04"`
	MoveSpeedMultiplier      float32 `env:"RTGIZMO_MOVE_SPEED"           envDefault:"1"`
	RotateSpeedMultiplier    float32 `env:"RTGIZMO_ROTATE_SPEED"         envDefault:"200"`
	HighPrecisionMult        float32 `env:"RTGIZMO_HIGH_PRECISION_MULT"  envDefault:"0.1"`
	MaxUndoStored            int     `env:"RTGIZMO_MAX_UNDO"             envDefault:"100"`
}

func DefaultConfig() Config {
	g := gizmo.DefaultConfig()
	return Config{
		WindowWidth:              1280,
		WindowHeight:             720,
		WindowTitle:              "rtgizmo",
		LogLevel:                 "info",
		Space:                    g.Space.String(),
		Pivot:                    g.Pivot.String(),
		HandleLength:             g.HandleLength,
		CircleRadius:             g.CircleRadius,
		HandleWidth:              g.HandleWidth,
		TriangleSize:             g.TriangleSize,
		CircleDetail:             g.CircleDetail,
		MinSelectedDistanceCheck: g.MinSelectedDistanceCheck,
		MoveSpeedMultiplier:      g.MoveSpeedMultiplier,
		RotateSpeedMultiplier:    g.RotateSpeedMultiplier,
		HighPrecisionMult:        g.HighPrecisionMult,
		MaxUndoStored:            g.MaxUndoStored,
	}
}

// LoadConfigFromEnv reads the environment. Unparseable values fall back to
// the defaults and the parse error is returned alongside them.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Level() (Level, error) {
	return ParseLevel(c.LogLevel)
}

// Gizmo converts the settings into a validated gizmo configuration, keeping
// the default layout and colours.
func (c Config) Gizmo() (gizmo.Config, error) {
	g := gizmo.DefaultConfig()

	var errs []error
	space, err := gizmo.ParseSpace(c.Space)
	if err != nil {
		errs = append(errs, err)
	}
	pivot, err := gizmo.ParsePivot(c.Pivot)
	if err != nil {
		errs = append(errs, err)
	}

	g.Space = space
	g.Pivot = pivot
	g.HandleLength = c.HandleLength
	g.CircleRadius = c.CircleRadius
	g.HandleWidth = c.HandleWidth
	g.TriangleSize = c.TriangleSize
	g.CircleDetail = c.CircleDetail
	g.MinSelectedDistanceCheck = c.MinSelectedDistanceCheck
	g.MoveSpeedMultiplier = c.MoveSpeedMultiplier
	g.RotateSpeedMultiplier = c.RotateSpeedMultiplier
	g.HighPrecisionMult = c.HighPrecisionMult
	g.MaxUndoStored = c.MaxUndoStored

	if err := g.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return gizmo.Config{}, fmt.Errorf("gizmo config: %w", err)
	}
	return g, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Gizmo(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
