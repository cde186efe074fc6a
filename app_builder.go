package rtgizmo

// Module installs resources and systems into an App.
type Module interface {
	Install(app *App, cmd *Commands)
}

type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	return &AppBuilder{app: newApp()}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

// Build installs modules in the order they were added.
func (b *AppBuilder) Build() *App {
	app := b.app
	commands := &Commands{app: app}

	for _, module := range b.modules {
		module.Install(app, commands)
	}
	app.modules = b.modules

	return app
}
