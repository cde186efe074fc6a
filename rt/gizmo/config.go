package gizmo

import (
	"errors"
	"fmt"

	"github.com/gekko3d/rtgizmo/rt/draw"
)

// Layout picks which handles the gizmo shows. An axis may carry both a
// translation shaft and a rotation ring.
type Layout struct {
	Translate  [3]bool // X, Y, Z
	Rotate     [3]bool // X, Y, Z
	FreeRotate bool    // camera-facing ring
}

type Colors struct {
	X        draw.Color
	Y        draw.Color
	Z        draw.Color
	All      draw.Color
	Selected draw.Color
	Hover    draw.Color
}

type Config struct {
	Space Space
	Pivot Pivot

	Layout Layout
	Colors Colors

	// Sizes are in screen-relative units; they are scaled by the distance to
	// the camera so handles keep a constant size on screen.
	HandleLength             float32
	CircleRadius             float32
	HandleWidth              float32
	TriangleSize             float32
	CircleDetail             int
	MinSelectedDistanceCheck float32

	MoveSpeedMultiplier   float32
	RotateSpeedMultiplier float32
	HighPrecisionMult     float32

	MaxUndoStored int
}

func DefaultConfig() Config {
	return Config{
		Space: SpaceGlobal,
		Pivot: PivotPoint,
		Layout: Layout{
			Translate:  [3]bool{false, true, false},
			Rotate:     [3]bool{true, false, true},
			FreeRotate: true,
		},
		Colors: Colors{
			X:        draw.Color{1, 0, 0, 0.8},
			Y:        draw.Color{0, 1, 0, 0.8},
			Z:        draw.Color{0, 0, 1, 0.8},
			All:      draw.Color{0.7, 0.7, 0.7, 0.8},
			Selected: draw.Color{1, 1, 0, 0.8},
			Hover:    draw.Color{1, 0.75, 0, 0.8},
		},
		HandleLength:             0.25,
		CircleRadius:             0.25,
		HandleWidth:              0.003,
		TriangleSize:             0.03,
		CircleDetail:             40,
		MinSelectedDistanceCheck: 0.04,
		MoveSpeedMultiplier:      1,
		RotateSpeedMultiplier:    200,
		HighPrecisionMult:        0.1,
		MaxUndoStored:            100,
	}
}

func (c Config) Validate() error {
	var errs []error
	positive := []struct {
		name string
		v    float32
	}{
		{"handle length", c.HandleLength},
		{"circle radius", c.CircleRadius},
		{"handle width", c.HandleWidth},
		{"triangle size", c.TriangleSize},
		{"high precision multiplier", c.HighPrecisionMult},
	}
	for _, p := range positive {
		if p.v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", p.name, p.v))
		}
	}
	if c.MinSelectedDistanceCheck < 0 {
		errs = append(errs, fmt.Errorf("min selected distance must not be negative, got %g", c.MinSelectedDistanceCheck))
	}
	if c.CircleDetail < 3 {
		errs = append(errs, fmt.Errorf("circle detail must be at least 3, got %d", c.CircleDetail))
	}
	if c.MaxUndoStored < 1 {
		errs = append(errs, fmt.Errorf("max undo stored must be at least 1, got %d", c.MaxUndoStored))
	}
	return errors.Join(errs...)
}
