package rtgizmo

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

type App struct {
	modules   []Module
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	order     []any // insertion order, for release on shutdown

	exitRequested bool
	frame         uint64
}

// releaser is implemented by resources holding native handles (window, GPU).
type releaser interface {
	Release()
}

func newApp() *App {
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// Run steps the app until a system requests exit, then releases resources in
// reverse order of creation.
func (app *App) Run() {
	log := app.Logger()
	log.Infof("running with %d stages", len(app.stages))

	for !app.exitRequested {
		app.Step()
	}

	log.Infof("exiting after %d frames", app.frame)
	app.release()
}

// Step runs every stage once.
func (app *App) Step() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
	}
	app.frame++
}

func (app *App) Frame() uint64 { return app.frame }

func (app *App) release() {
	for i := len(app.order) - 1; i >= 0; i-- {
		if r, ok := app.order[i].(releaser); ok {
			r.Release()
		}
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
		app.order = append(app.order, resource)
	}
	return app
}

// Resource returns the resource of type *T, if one was added.
func Resource[T any](app *App) (*T, bool) {
	r, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return r.(*T), true
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			app.unresolved(systemValue, systemType, argType)
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			app.unresolved(systemValue, systemType, argType)
		}
	}
	systemValue.Call(args)
}

func (app *App) unresolved(systemValue reflect.Value, systemType, argType reflect.Type) {
	msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
		runtime.FuncForPC(systemValue.Pointer()).Name(),
		fmt.Sprint(systemType),
		fmt.Sprint(argType),
	)
	app.Logger().Errorf("%s", msg)
	panic(msg)
}
