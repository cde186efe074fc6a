package rtgizmo

import (
	"time"
)

type Time struct {
	Time time.Time
	Dt   time.Duration
}

// Seconds is the last frame's duration in seconds.
func (t *Time) Seconds() float32 {
	return float32(t.Dt.Seconds())
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time: time.Now(),
		Dt:   0,
	})
	cmd.UseSystem(System(timeSystem).InStage(Prelude))
}

func timeSystem(timeResource *Time) {
	advanceTime(timeResource, time.Now())
}

func advanceTime(t *Time, now time.Time) {
	t.Dt = now.Sub(t.Time)
	t.Time = now
}
