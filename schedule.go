package rtgizmo

import (
	"fmt"
	"slices"
)

type Stage struct {
	Name string
}

var (
	Prelude    = Stage{Name: "Prelude"}
	PreUpdate  = Stage{Name: "PreUpdate"}
	Update     = Stage{Name: "Update"}
	PostUpdate = Stage{Name: "PostUpdate"}
	PreRender  = Stage{Name: "PreRender"}
	Render     = Stage{Name: "Render"}
	PostRender = Stage{Name: "PostRender"}
	Finale     = Stage{Name: "Finale"}
)

var defaultStages = []Stage{Prelude, PreUpdate, Update, PostUpdate, PreRender, Render, PostRender, Finale}

type systemScheduleBuilder struct {
	inStage Stage
	system  systemFn
}

func (sched systemScheduleBuilder) InStage(s Stage) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  sched.system,
		inStage: s,
	}
}

// System schedules fn in the Update stage unless moved with InStage. Every
// argument of fn must be a pointer to a resource or *Commands.
func System(system systemFn) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  system,
		inStage: Update,
	}
}

type stagePosition int

const (
	stageBefore stagePosition = iota
	stageAfter
)

type stagePositionBuilder struct {
	position stagePosition
	target   Stage
}

func BeforeStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageBefore,
		target:   s,
	}
}

func AfterStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageAfter,
		target:   s,
	}
}

func (app *App) UseStage(stage Stage, where stagePositionBuilder) *App {
	stageIdx := slices.IndexFunc(app.stages, func(s Stage) bool { return s.Name == where.target.Name })
	if stageIdx == -1 {
		panic(fmt.Sprintf("Stage %v not found", where.target.Name))
	}

	insertAt := stageIdx
	if where.position == stageAfter {
		insertAt = stageIdx + 1
	}

	app.stages = slices.Insert(app.stages, insertAt, stage)
	app.systems[stage.Name] = make([]systemFn, 0)

	return app
}

func (app *App) UseSystem(system systemScheduleBuilder) *App {
	systems, ok := app.systems[system.inStage.Name]
	if !ok {
		panic(fmt.Sprintf("Stage %v doesn't exist", system.inStage.Name))
	}
	app.systems[system.inStage.Name] = append(systems, system.system)
	return app
}
