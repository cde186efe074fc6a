package undo

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/rtgizmo/rt/core"
)

// addCommand adds n to a shared counter.
type addCommand struct {
	total *int
	n     int
}

func (c *addCommand) Execute() { *c.total += c.n }
func (c *addCommand) Revert()  { *c.total -= c.n }

func TestStackUndoRedo(t *testing.T) {
	total := 0
	s := NewStack(10)

	assert.False(t, s.Undo(), "empty undo is a no-op")
	assert.False(t, s.Redo(), "empty redo is a no-op")

	s.Execute(&addCommand{&total, 1})
	s.Execute(&addCommand{&total, 10})
	require.Equal(t, 11, total)

	assert.True(t, s.Undo())
	assert.Equal(t, 1, total)
	assert.True(t, s.CanRedo())

	assert.True(t, s.Redo())
	assert.Equal(t, 11, total)
	assert.False(t, s.Redo())
}

func TestStackInsertDropsRedoTail(t *testing.T) {
	total := 0
	s := NewStack(10)
	s.Execute(&addCommand{&total, 1})
	s.Execute(&addCommand{&total, 2})
	s.Undo()

	s.Execute(&addCommand{&total, 100})
	assert.Equal(t, 101, total)
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.CanRedo())
}

func TestStackEvictsOldestFirst(t *testing.T) {
	total := 0
	s := NewStack(3)
	for _, n := range []int{1, 10, 100, 1000, 10000} {
		s.Execute(&addCommand{&total, n})
	}
	require.Equal(t, 11111, total)
	assert.Equal(t, 3, s.Len())

	undone := 0
	for s.Undo() {
		undone++
	}
	assert.Equal(t, 3, undone)
	// 1 and 10 were evicted, so they can no longer be taken back.
	assert.Equal(t, 11, total)
}

func TestStackShrinkCapacity(t *testing.T) {
	total := 0
	s := NewStack(5)
	for _, n := range []int{1, 2, 4, 8} {
		s.Execute(&addCommand{&total, n})
	}

	s.SetMaxStored(2)
	assert.Equal(t, 2, s.MaxStored())
	assert.Equal(t, 2, s.Len())

	for s.Undo() {
	}
	assert.Equal(t, 3, total)

	s.SetMaxStored(0)
	assert.Equal(t, 1, s.MaxStored())
}

func TestStackClear(t *testing.T) {
	total := 0
	s := NewStack(4)
	s.Execute(&addCommand{&total, 1})
	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.CanUndo())
	s.Insert(nil)
	assert.Equal(t, 0, s.Len())
}

func TestTransformCommandRoundTrip(t *testing.T) {
	tr := core.NewTransform()
	before := tr.Pose()
	tr.Translate(mgl32.Vec3{0, 2, 0})
	tr.Rotate(mgl32.Vec3{1, 0, 0}, 30)
	after := tr.Pose()

	cmd := NewTransformCommand(tr, before, after)
	assert.True(t, cmd.Changed())
	assert.NotEqual(t, [16]byte{}, [16]byte(cmd.ID))

	s := NewStack(2)
	s.Insert(cmd)

	require.True(t, s.Undo())
	assert.Equal(t, before, tr.Pose())
	require.True(t, s.Redo())
	assert.Equal(t, after, tr.Pose())
}

func TestStackPeeksNextCommands(t *testing.T) {
	total := 0
	s := NewStack(4)
	assert.Nil(t, s.Undoable())
	assert.Nil(t, s.Redoable())

	first := &addCommand{&total, 1}
	second := &addCommand{&total, 2}
	s.Execute(first)
	s.Execute(second)
	assert.Same(t, second, s.Undoable())
	assert.Nil(t, s.Redoable())

	s.Undo()
	assert.Same(t, first, s.Undoable())
	assert.Same(t, second, s.Redoable())
}

func TestGroupString(t *testing.T) {
	tr := core.NewTransform()
	cmd := NewTransformCommand(tr, tr.Pose(), tr.Pose())
	g := NewGroup(cmd)

	assert.Contains(t, g.String(), cmd.ID.String())
	assert.Contains(t, g.String(), "group [")
}

func TestGroupRevertsInReverse(t *testing.T) {
	var log []string
	g := NewGroup(
		&recordCommand{&log, "a"},
		&recordCommand{&log, "b"},
	)
	g.Execute()
	g.Revert()
	assert.Equal(t, []string{"+a", "+b", "-b", "-a"}, log)
}

type recordCommand struct {
	log  *[]string
	name string
}

func (c *recordCommand) Execute() { *c.log = append(*c.log, "+"+c.name) }
func (c *recordCommand) Revert()  { *c.log = append(*c.log, "-"+c.name) }
