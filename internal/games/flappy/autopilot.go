package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Autopilot produces input for headless runs. With FlapEvery or FireEvery
// set it follows a fixed cadence; otherwise it steers toward the next gap.
type Autopilot struct {
	FlapEvery int     // Flap on every Nth tick; 0 steers instead
	FireEvery int     // Fire on every Nth tick; 0 fires at the next pipe when ready
	Margin    float64 // Clearance kept above the bottom pillar when steering
	Climb     float64 // Distance below target at which it flaps even while rising
	FireRange float64 // How far ahead a pipe must be to draw fire
}

// DefaultAutopilot returns a steering autopilot tuned for the default world.
func DefaultAutopilot() Autopilot {
	return Autopilot{Margin: 25, Climb: 40, FireRange: 160}
}

// Decide returns the input for the tick after snap.
func (a Autopilot) Decide(snap *Snapshot) core.InputFrame {
	var in core.InputFrame
	if snap.Phase != PhaseRunning {
		in.Set(core.ActionJump)
		return in
	}

	next, ok := nextObstacle(snap)

	if a.FlapEvery > 0 {
		if snap.Tick%a.FlapEvery == 0 {
			in.Set(core.ActionJump)
		}
	} else {
		target := (snap.World.Height - snap.World.GroundHeight) / 2
		if ok {
			target = next.GapBottom - a.Margin
		}
		f := snap.Flyer
		below := f.Y + f.Height - target
		if below > 0 && (f.Velocity >= 0 || below > a.Climb) {
			in.Set(core.ActionJump)
		}
	}

	if snap.CanFire {
		switch {
		case a.FireEvery > 0:
			if snap.Tick%a.FireEvery == 0 {
				in.Set(core.ActionFire)
			}
		case ok && next.X-(snap.Flyer.X+snap.Flyer.Width) < a.FireRange:
			in.Set(core.ActionFire)
		}
	}

	return in
}

// nextObstacle returns the first obstacle the flyer has not yet cleared.
func nextObstacle(snap *Snapshot) (ObstacleView, bool) {
	for _, o := range snap.Obstacles {
		if o.X+o.Width >= snap.Flyer.X {
			return o, true
		}
	}
	return ObstacleView{}, false
}

// Simulate drives g headlessly with pilot for at most ticks steps, starting
// a run if none is active. It stops at the first game over.
func Simulate(g *Game, pilot Autopilot, ticks int) Snapshot {
	if g.Phase() != PhaseRunning {
		g.Start()
	}
	for i := 0; i < ticks && g.Phase() == PhaseRunning; i++ {
		snap := g.Snapshot()
		g.Step(pilot.Decide(&snap))
	}
	return g.Snapshot()
}
