package undo

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/gekko3d/rtgizmo/rt/core"
)

// TransformCommand swaps a transform between two poses.
type TransformCommand struct {
	ID     uuid.UUID
	Target *core.Transform
	Before core.Pose
	After  core.Pose
}

func NewTransformCommand(target *core.Transform, before, after core.Pose) *TransformCommand {
	return &TransformCommand{
		ID:     uuid.New(),
		Target: target,
		Before: before,
		After:  after,
	}
}

func (c *TransformCommand) Execute() {
	if c.Target != nil {
		c.Target.SetPose(c.After)
	}
}

func (c *TransformCommand) Revert() {
	if c.Target != nil {
		c.Target.SetPose(c.Before)
	}
}

// Changed reports whether the command moves, turns or scales anything.
func (c *TransformCommand) Changed() bool {
	return c.Before != c.After
}

func (c *TransformCommand) String() string {
	delta := c.After.Position.Sub(c.Before.Position)
	return fmt.Sprintf("transform %s (move %.3f,%.3f,%.3f)", c.ID, delta.X(), delta.Y(), delta.Z())
}

// Group applies its commands in order and reverts them in reverse order.
type Group struct {
	Commands []Command
}

func NewGroup(cmds ...Command) *Group {
	return &Group{Commands: cmds}
}

func (g *Group) Execute() {
	for _, c := range g.Commands {
		c.Execute()
	}
}

func (g *Group) Revert() {
	for i := len(g.Commands) - 1; i >= 0; i-- {
		g.Commands[i].Revert()
	}
}

func (g *Group) String() string {
	parts := make([]string, len(g.Commands))
	for i, c := range g.Commands {
		parts[i] = fmt.Sprint(c)
	}
	return "group [" + strings.Join(parts, "; ") + "]"
}
